package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/syed-reza98/Sharothee-Wedding-sub000/config"
	"github.com/syed-reza98/Sharothee-Wedding-sub000/models"
)

// GET /api/admin/stats returns the dashboard counters.
func GetStats(c *gin.Context) {
	var guests, attending, pendingContacts, newSubmissions int64

	config.DB.Model(&models.Guest{}).Count(&guests)
	config.DB.Model(&models.RSVP{}).
		Where("response = ?", models.ResponseAttending).
		Count(&attending)
	config.DB.Model(&models.ContactRequest{}).
		Where("status = ?", models.ContactPending).
		Count(&pendingContacts)
	config.DB.Model(&models.RSVPFormSubmission{}).
		Where("status = ?", models.SubmissionNew).
		Count(&newSubmissions)

	var headcount int64
	config.DB.Model(&models.RSVP{}).
		Where("response = ?", models.ResponseAttending).
		Select("COALESCE(SUM(attendees), 0)").
		Scan(&headcount)

	c.JSON(http.StatusOK, gin.H{
		"guests":           guests,
		"attending_rsvps":  attending,
		"expected_guests":  headcount,
		"pending_contacts": pendingContacts,
		"new_submissions":  newSubmissions,
	})
}
