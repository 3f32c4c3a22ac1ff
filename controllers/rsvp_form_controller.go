package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/syed-reza98/Sharothee-Wedding-sub000/config"
	"github.com/syed-reza98/Sharothee-Wedding-sub000/models"
	"github.com/syed-reza98/Sharothee-Wedding-sub000/utils"
)

// POST /api/rsvp/form
//
// Free-form RSVP intake. The nested wire payload is flattened, validated,
// persisted, and then the notification fan-out runs. Every fan-out leg is
// best-effort: once the row is durable the caller sees success regardless
// of email outcomes.
func SubmitRSVPForm(c *gin.Context) {
	var payload utils.RSVPFormPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	rec := utils.FlattenRSVPForm(&payload)
	if details := utils.ValidateRSVPForm(&rec); details != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": details})
		return
	}

	sub := models.RSVPFormSubmission{
		GuestName:       rec.GuestName,
		Email:           rec.Email,
		WillAttendDhaka: rec.WillAttendDhaka,
		FamilySide:      rec.FamilySide,
		GuestCount:      rec.GuestCount,
		GuestCountOther: nilIfEmpty(rec.GuestCountOther),
		PreferredNumber: nilIfEmpty(rec.PreferredNumber),
		PreferredWAPP:   boolPtrIf(rec.PreferredNumber != "", rec.PreferredWAPP),
		PreferredBotim:  boolPtrIf(rec.PreferredNumber != "", rec.PreferredBotim),
		SecondaryNumber: nilIfEmpty(rec.SecondaryNumber),
		SecondaryWAPP:   boolPtrIf(rec.SecondaryNumber != "", rec.SecondaryWAPP),
		SecondaryBotim:  boolPtrIf(rec.SecondaryNumber != "", rec.SecondaryBotim),
		EmergencyName:   nilIfEmpty(rec.EmergencyName),
		EmergencyPhone:  nilIfEmpty(rec.EmergencyPhone),
		EmergencyEmail:  nilIfEmpty(rec.EmergencyEmail),
		Status:          models.SubmissionNew,
	}
	if err := config.DB.Create(&sub).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save RSVP"})
		return
	}

	mail := config.Mail()

	// 1. Confirmation to the guest.
	sendMail([]string{rec.Email},
		"We received your RSVP",
		fmt.Sprintf("<p>Dear %s,</p><p>Thank you! Your RSVP has been received. We will be in touch with the details.</p>", rec.GuestName),
		"form_guest_confirmation")

	// 2. Primary operational address.
	adminHTML := fmt.Sprintf(
		"<p>New RSVP form submission #%d</p><ul><li>Name: %s</li><li>Email: %s</li><li>Attending Dhaka: %s</li><li>Family side: %s</li><li>Guest count: %s %s</li></ul>",
		sub.ID, rec.GuestName, rec.Email, rec.WillAttendDhaka, rec.FamilySide, rec.GuestCount, rec.GuestCountOther,
	)
	sendMail([]string{mail.AdminEmail},
		fmt.Sprintf("New RSVP submission from %s", rec.GuestName),
		adminHTML,
		"form_admin_primary")

	// 3. Secondary administrative list, deduplicated.
	if cc := utils.DedupeAddresses(mail.CCEmails); len(cc) > 0 {
		sendMail(cc,
			fmt.Sprintf("New RSVP submission from %s", rec.GuestName),
			adminHTML,
			"form_admin_cc")
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"id":      sub.ID,
		"message": "RSVP submitted successfully",
	})
}

// GET /api/admin/rsvp/forms?page=1&limit=20&status=NEW
func ListRSVPFormSubmissions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := config.DB.Model(&models.RSVPFormSubmission{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var subs []models.RSVPFormSubmission
	if err := query.
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&subs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load submissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":        page,
		"limit":       limit,
		"total":       total,
		"submissions": subs,
	})
}

type updateSubmissionReq struct {
	Status     *models.SubmissionStatus `json:"status" binding:"omitempty,oneof=NEW REVIEWED"`
	AdminNotes *string                  `json:"admin_notes"`
}

// PATCH /api/admin/rsvp/forms/:id
func UpdateRSVPFormSubmission(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return
	}

	var sub models.RSVPFormSubmission
	if err := config.DB.First(&sub, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}

	var req updateSubmissionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload: " + err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.AdminNotes != nil {
		updates["admin_notes"] = *req.AdminNotes
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	if err := config.DB.Model(&sub).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func boolPtrIf(cond bool, v bool) *bool {
	if !cond {
		return nil
	}
	return &v
}
