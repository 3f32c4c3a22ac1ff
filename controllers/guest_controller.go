package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/syed-reza98/Sharothee-Wedding-sub000/config"
	"github.com/syed-reza98/Sharothee-Wedding-sub000/models"
	"github.com/syed-reza98/Sharothee-Wedding-sub000/utils"
)

// GET /api/admin/guests?page=1&limit=20&search=
func ListGuests(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := config.DB.Model(&models.Guest{})
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ?", like, like)
	}

	var total int64
	query.Count(&total)

	var guests []models.Guest
	if err := query.
		Order("name ASC").
		Limit(limit).Offset(offset).
		Find(&guests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load guests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":   page,
		"limit":  limit,
		"total":  total,
		"guests": guests,
	})
}

type createGuestReq struct {
	Name    string  `json:"name" binding:"required,min=1"`
	Email   string  `json:"email" binding:"required,email"`
	Country *string `json:"country"`
	Phone   *string `json:"phone"`
}

// POST /api/admin/guests
//
// The invitation token is generated here, never supplied by the client.
func CreateGuest(c *gin.Context) {
	var req createGuestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	token, err := utils.GenerateGuestToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate invitation token"})
		return
	}

	guest := models.Guest{
		Name:    req.Name,
		Email:   req.Email,
		Token:   token,
		Country: req.Country,
		Phone:   req.Phone,
	}
	// The unique constraint is the duplicate check; a pre-read would race
	// with concurrent creates.
	if err := config.DB.Create(&guest).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "A guest with this email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create guest"})
		return
	}

	c.JSON(http.StatusCreated, guest)
}

type updateGuestReq struct {
	Name    *string `json:"name"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Country *string `json:"country"`
	Phone   *string `json:"phone"`
}

// PUT /api/admin/guests/:id
func UpdateGuest(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid guest ID"})
		return
	}

	var guest models.Guest
	if err := config.DB.First(&guest, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Guest not found"})
		return
	}

	var req updateGuestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Country != nil {
		updates["country"] = *req.Country
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	if err := config.DB.Model(&guest).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}

// DELETE /api/admin/guests/:id
//
// A guest with recorded RSVPs cannot be removed; the rows reference it.
func DeleteGuest(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid guest ID"})
		return
	}

	var guest models.Guest
	if err := config.DB.First(&guest, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Guest not found"})
		return
	}

	var rsvpCount int64
	config.DB.Model(&models.RSVP{}).Where("guest_id = ?", guest.ID).Count(&rsvpCount)
	if rsvpCount > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Guest has RSVPs and cannot be deleted"})
		return
	}

	if err := config.DB.Delete(&guest).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// GET /api/admin/guests/:id/rsvps
func ListGuestRSVPs(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid guest ID"})
		return
	}

	var guest models.Guest
	if err := config.DB.First(&guest, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Guest not found"})
		return
	}

	var rsvps []models.RSVP
	if err := config.DB.
		Where("guest_id = ?", guest.ID).
		Preload("Event").
		Preload("Event.Venue").
		Find(&rsvps).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load RSVPs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"guest": guest, "rsvps": rsvps})
}
