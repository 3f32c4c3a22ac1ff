package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/syed-reza98/Sharothee-Wedding-sub000/config"
	"github.com/syed-reza98/Sharothee-Wedding-sub000/models"
)

type contactReq struct {
	Name    string                `json:"name" binding:"required,min=1"`
	Email   string                `json:"email" binding:"required,email"`
	Phone   *string               `json:"phone"`
	Subject models.ContactSubject `json:"subject" binding:"required,oneof=GENERAL RSVP TRAVEL MEDIA OTHER"`
	Message string                `json:"message" binding:"required,min=1"`
}

// POST /api/contact
//
// Same policy as the RSVP intake: persist first, then best-effort
// notifications that never affect the caller-visible result.
func CreateContactRequest(c *gin.Context) {
	var req contactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact payload: " + err.Error()})
		return
	}

	cr := models.ContactRequest{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Status:  models.ContactPending,
	}
	if err := config.DB.Create(&cr).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save contact request"})
		return
	}

	mail := config.Mail()

	sendMail([]string{req.Email},
		"We received your message",
		fmt.Sprintf("<p>Dear %s,</p><p>Thanks for reaching out! We will get back to you shortly.</p>", req.Name),
		"contact_ack")

	sendMail([]string{mail.AdminEmail},
		fmt.Sprintf("New contact request: %s", req.Subject),
		fmt.Sprintf("<p>From: %s (%s)</p><p>%s</p>", req.Name, req.Email, req.Message),
		"contact_admin")

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": cr.ID})
}

// GET /api/admin/contact?page=1&limit=20&status=PENDING
func ListContactRequests(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := config.DB.Model(&models.ContactRequest{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var requests []models.ContactRequest
	if err := query.
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load contact requests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":     page,
		"limit":    limit,
		"total":    total,
		"requests": requests,
	})
}

type updateContactReq struct {
	Status     *models.ContactStatus `json:"status" binding:"omitempty,oneof=PENDING RESPONDED CLOSED"`
	AdminNotes *string               `json:"admin_notes"`
}

// PATCH /api/admin/contact/:id
func UpdateContactRequest(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact request ID"})
		return
	}

	var cr models.ContactRequest
	if err := config.DB.First(&cr, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact request not found"})
		return
	}

	var req updateContactReq
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

	if err := config.DB.Model(&cr).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}
