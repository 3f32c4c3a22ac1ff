package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/syed-reza98/Sharothee-Wedding-sub000/config"
	"github.com/syed-reza98/Sharothee-Wedding-sub000/models"
	"github.com/syed-reza98/Sharothee-Wedding-sub000/utils"
)

type tokenLookupReq struct {
	Token string `json:"token" binding:"required"`
}

// POST /api/rsvp/token
//
// Resolves an invitation token to the guest, the events open for response
// and any RSVPs already recorded. Malformed and unassigned tokens get the
// same answer so the response shape leaks nothing about why a lookup
// failed.
func LookupGuestByToken(c *gin.Context) {
	var req tokenLookupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "invalid RSVP token"})
		return
	}

	token := utils.NormalizeGuestToken(req.Token)

	var guest models.Guest
	if err := config.DB.Where("token = ?", token).First(&guest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "invalid RSVP token"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up guest"})
		return
	}

	var events []models.Event
	if err := config.DB.
		Where("is_active = ?", true).
		Preload("Venue").
		Order("display_order ASC, id ASC").
		Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load events"})
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

	c.JSON(http.StatusOK, gin.H{
		"guest": gin.H{
			"id":      guest.ID,
			"name":    guest.Name,
			"email":   guest.Email,
			"country": guest.Country,
		},
		"events":        events,
		"existingRsvps": rsvps,
	})
}

type submitRSVPReq struct {
	GuestID            uint                `json:"guestId" binding:"required"`
	EventID            uint                `json:"eventId" binding:"required"`
	Response           models.RSVPResponse `json:"response" binding:"required,oneof=ATTENDING NOT_ATTENDING MAYBE"`
	Attendees          int                 `json:"attendees" binding:"required,min=1,max=10"`
	DietaryPreferences *string             `json:"dietaryPreferences"`
	Comments           *string             `json:"comments"`
}

// POST /api/rsvp
//
// Records or updates a guest's response to one event. The write is an
// atomic upsert on (guest_id, event_id): resubmitting never creates a
// second row, and concurrent duplicates converge on one.
func SubmitRSVP(c *gin.Context) {
	var req submitRSVPReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid RSVP payload: " + err.Error()})
		return
	}

	var guest models.Guest
	if err := config.DB.First(&guest, req.GuestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "guest not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up guest"})
		return
	}

	var event models.Event
	if err := config.DB.First(&event, req.EventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up event"})
		return
	}

	rsvp := models.RSVP{
		GuestID:            guest.ID,
		EventID:            event.ID,
		Response:           req.Response,
		Attendees:          req.Attendees,
		DietaryPreferences: req.DietaryPreferences,
		Comments:           req.Comments,
	}
	if err := config.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "guest_id"}, {Name: "event_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"response", "attendees", "dietary_preferences", "comments", "updated_at",
		}),
	}).Create(&rsvp).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save RSVP"})
		return
	}

	var saved models.RSVP
	if err := config.DB.
		Where("guest_id = ? AND event_id = ?", guest.ID, event.ID).
		Preload("Event").
		Preload("Event.Venue").
		First(&saved).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load saved RSVP"})
		return
	}

	// Only a (possibly updated-to) ATTENDING response triggers the
	// confirmation. The row is already durable; delivery is best-effort.
	if saved.Response == models.ResponseAttending {
		subject := "Your RSVP is confirmed: " + event.Title
		html := fmt.Sprintf(
			"<p>Dear %s,</p><p>We have received your RSVP for <strong>%s</strong> with %d guest(s). We can't wait to celebrate with you!</p>",
			guest.Name, event.Title, saved.Attendees,
		)
		sendMail([]string{guest.Email}, subject, html, "rsvp_confirmation")
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "rsvp": saved})
}
