package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/syed-reza98/Sharothee-Wedding-sub000/config"
	"github.com/syed-reza98/Sharothee-Wedding-sub000/models"
)

// GET /api/streams/live returns the streams shown on the live page.
func ListLiveStreams(c *gin.Context) {
	var streams []models.Stream
	if err := config.DB.
		Where("is_active = ? AND is_live = ?", true, true).
		Order("scheduled_at ASC").
		Find(&streams).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load streams"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"streams": streams})
}

// GET /api/admin/streams
func ListStreams(c *gin.Context) {
	var streams []models.Stream
	if err := config.DB.Order("scheduled_at ASC").Find(&streams).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load streams"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"streams": streams})
}

type streamReq struct {
	Title       string  `json:"title" binding:"required,min=1"`
	Description *string `json:"description"`
	URL         string  `json:"url" binding:"required,url"`
	ScheduledAt *string `json:"scheduled_at"` // RFC3339
	IsLive      *bool   `json:"is_live"`
	IsActive    *bool   `json:"is_active"`
}

// POST /api/admin/streams
func CreateStream(c *gin.Context) {
	var req streamReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	stream := models.Stream{
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		IsActive:    true,
	}
	if req.ScheduledAt != nil {
		t, err := time.Parse(time.RFC3339, *req.ScheduledAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "scheduled_at must be RFC3339"})
			return
		}
		stream.ScheduledAt = &t
	}
	if req.IsLive != nil {
		stream.IsLive = *req.IsLive
	}
	if req.IsActive != nil {
		stream.IsActive = *req.IsActive
	}

	if err := config.DB.Create(&stream).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create stream"})
		return
	}
	c.JSON(http.StatusCreated, stream)
}

// PUT /api/admin/streams/:id
func UpdateStream(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stream ID"})
		return
	}

	var stream models.Stream
	if err := config.DB.First(&stream, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Stream not found"})
		return
	}

	var req streamReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	stream.Title = req.Title
	stream.Description = req.Description
	stream.URL = req.URL
	if req.ScheduledAt != nil {
		t, err := time.Parse(time.RFC3339, *req.ScheduledAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "scheduled_at must be RFC3339"})
			return
		}
		stream.ScheduledAt = &t
	}
	if req.IsLive != nil {
		stream.IsLive = *req.IsLive
	}
	if req.IsActive != nil {
		stream.IsActive = *req.IsActive
	}

	if err := config.DB.Save(&stream).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Update failed"})
		return
	}
	c.JSON(http.StatusOK, stream)
}

// DELETE /api/admin/streams/:id
func DeleteStream(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stream ID"})
		return
	}

	if err := config.DB.Delete(&models.Stream{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
