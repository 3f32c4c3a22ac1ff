package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/syed-reza98/Sharothee-Wedding-sub000/config"
	"github.com/syed-reza98/Sharothee-Wedding-sub000/models"
)

// GET /api/events returns the active events in display order.
func ListEvents(c *gin.Context) {
	var events []models.Event
	if err := config.DB.
		Where("is_active = ?", true).
		Preload("Venue").
		Order("display_order ASC, id ASC").
		Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load events"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

type eventReq struct {
	Title        string `json:"title" binding:"required,min=1"`
	Description  string `json:"description"`
	Date         string `json:"date" binding:"required"` // YYYY-MM-DD
	Time         string `json:"time"`
	VenueID      uint   `json:"venue_id" binding:"required"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

// POST /api/admin/events
func CreateEvent(c *gin.Context) {
	var req eventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	var venue models.Venue
	if err := config.DB.First(&venue, req.VenueID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "venue not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up venue"})
		return
	}

	event := models.Event{
		Title:        req.Title,
		Description:  req.Description,
		Date:         date,
		Time:         req.Time,
		VenueID:      venue.ID,
		DisplayOrder: req.DisplayOrder,
		IsActive:     true,
	}
	if req.IsActive != nil {
		event.IsActive = *req.IsActive
	}
	if err := config.DB.Create(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}
	c.JSON(http.StatusCreated, event)
}

type updateEventReq struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Date         *string `json:"date"`
	Time         *string `json:"time"`
	VenueID      *uint   `json:"venue_id"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

// PUT /api/admin/events/:id
func UpdateEvent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	var event models.Event
	if err := config.DB.First(&event, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	var req updateEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		updates["date"] = date
	}
	if req.Time != nil {
		updates["time"] = *req.Time
	}
	if req.VenueID != nil {
		var venue models.Venue
		if err := config.DB.First(&venue, *req.VenueID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "venue not found"})
			return
		}
		updates["venue_id"] = *req.VenueID
	}
	if req.DisplayOrder != nil {
		updates["display_order"] = *req.DisplayOrder
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	if err := config.DB.Model(&event).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}

// DELETE /api/admin/events/:id
func DeleteEvent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	var event models.Event
	if err := config.DB.First(&event, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	var rsvpCount int64
	config.DB.Model(&models.RSVP{}).Where("event_id = ?", event.ID).Count(&rsvpCount)
	if rsvpCount > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Event has RSVPs and cannot be deleted"})
		return
	}

	if err := config.DB.Delete(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// GET /api/admin/events/:id/rsvps
func ListEventRSVPs(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	var event models.Event
	if err := config.DB.First(&event, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	var rsvps []models.RSVP
	if err := config.DB.
		Where("event_id = ?", event.ID).
		Preload("Guest").
		Order("updated_at DESC").
		Find(&rsvps).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load RSVPs"})
		return
	}

	// Summaries first, rows after; the dashboard shows both.
	var attending, headcount int64
	for _, r := range rsvps {
		if r.Response == models.ResponseAttending {
			attending++
			headcount += int64(r.Attendees)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"event":     event,
		"attending": attending,
		"headcount": headcount,
		"rsvps":     rsvps,
	})
}

type venueReq struct {
	Name    string  `json:"name" binding:"required,min=1"`
	Address string  `json:"address" binding:"required,min=1"`
	City    string  `json:"city" binding:"required,min=1"`
	Country string  `json:"country" binding:"required,min=1"`
	MapURL  *string `json:"map_url"`
}

// POST /api/admin/venues
func CreateVenue(c *gin.Context) {
	var req venueReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	venue := models.Venue{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Country: req.Country,
		MapURL:  req.MapURL,
	}
	if err := config.DB.Create(&venue).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create venue"})
		return
	}
	c.JSON(http.StatusCreated, venue)
}

// GET /api/admin/venues
func ListVenues(c *gin.Context) {
	var venues []models.Venue
	if err := config.DB.Order("name ASC").Find(&venues).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load venues"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"venues": venues})
}
