package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/syed-reza98/Sharothee-Wedding-sub000/config"
	"github.com/syed-reza98/Sharothee-Wedding-sub000/models"
)

// GET /api/hotels returns the active hotels for the travel page.
func ListHotels(c *gin.Context) {
	var hotels []models.Hotel
	if err := config.DB.
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&hotels).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load hotels"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotels": hotels})
}

type hotelReq struct {
	Name        string  `json:"name" binding:"required,min=1"`
	Address     string  `json:"address" binding:"required,min=1"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Website     *string `json:"website"`
	BookingCode *string `json:"booking_code"`
	IsActive    *bool   `json:"is_active"`
}

// POST /api/admin/hotels
func CreateHotel(c *gin.Context) {
	var req hotelReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	hotel := models.Hotel{
		Name:        req.Name,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		Website:     req.Website,
		BookingCode: req.BookingCode,
		IsActive:    true,
	}
	if req.IsActive != nil {
		hotel.IsActive = *req.IsActive
	}
	if err := config.DB.Create(&hotel).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create hotel"})
		return
	}
	c.JSON(http.StatusCreated, hotel)
}

// PUT /api/admin/hotels/:id
func UpdateHotel(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hotel ID"})
		return
	}

	var hotel models.Hotel
	if err := config.DB.First(&hotel, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
		return
	}

	var req hotelReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	hotel.Name = req.Name
	hotel.Address = req.Address
	hotel.Phone = req.Phone
	hotel.Email = req.Email
	hotel.Website = req.Website
	hotel.BookingCode = req.BookingCode
	if req.IsActive != nil {
		hotel.IsActive = *req.IsActive
	}

	if err := config.DB.Save(&hotel).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Update failed"})
		return
	}
	c.JSON(http.StatusOK, hotel)
}

// DELETE /api/admin/hotels/:id
func DeleteHotel(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hotel ID"})
		return
	}

	if err := config.DB.Delete(&models.Hotel{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
