package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/syed-reza98/Sharothee-Wedding-sub000/config"
	"github.com/syed-reza98/Sharothee-Wedding-sub000/models"
)

func TestCreateGuestDuplicateEmailConflicts(t *testing.T) {
	r := setupTestApp(t)
	auth := loginAdmin(t, r)

	payload := map[string]interface{}{"name": "Arshia", "email": "arshia@example.com"}
	first := doJSON(r, http.MethodPost, "/api/admin/guests", payload, auth)
	if first.Code != http.StatusCreated {
		t.Fatalf("first create: status %d, body %s", first.Code, first.Body.String())
	}

	// The second create hits the unique constraint on email; the handler
	// reports it as a conflict, not a server error.
	second := doJSON(r, http.MethodPost, "/api/admin/guests", map[string]interface{}{
		"name": "Someone Else", "email": "arshia@example.com",
	}, auth)
	if second.Code != http.StatusConflict {
		t.Fatalf("duplicate create: status %d, want 409 (body %s)", second.Code, second.Body.String())
	}
	if n := mustCount(t, &models.Guest{}); n != 1 {
		t.Errorf("guest rows = %d, want 1", n)
	}
}

func TestDeleteGuestBlockedWhileRSVPsExist(t *testing.T) {
	r := setupTestApp(t)
	seedAdmin(t, "admin@sharothee.wedding", "correct-horse")
	guest := seedGuest(t, "Arshia", "arshia@example.com", "ABC234DE")
	event := seedEvent(t, "Reception", 1)

	rsvp := models.RSVP{GuestID: guest.ID, EventID: event.ID, Response: models.ResponseAttending, Attendees: 2}
	if err := config.DB.Create(&rsvp).Error; err != nil {
		t.Fatalf("seed rsvp: %v", err)
	}

	w := doJSON(r, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "admin@sharothee.wedding", "password": "correct-horse",
	}, nil)
	token := decodeBody(t, w)["token"].(string)
	auth := map[string]string{"Authorization": "Bearer " + token}

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/admin/guests/%d", guest.ID), nil, auth)
	if w.Code != http.StatusConflict {
		t.Fatalf("delete referenced guest: status %d, want 409 (body %s)", w.Code, w.Body.String())
	}
	if n := mustCount(t, &models.Guest{}); n != 1 {
		t.Errorf("guest rows = %d, want 1 (delete must not apply)", n)
	}

	// Once the RSVP is gone the guest can be removed.
	if err := config.DB.Delete(&rsvp).Error; err != nil {
		t.Fatalf("remove rsvp: %v", err)
	}
	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/admin/guests/%d", guest.ID), nil, auth)
	if w.Code != http.StatusOK {
		t.Fatalf("delete unreferenced guest: status %d (body %s)", w.Code, w.Body.String())
	}
	if n := mustCount(t, &models.Guest{}); n != 0 {
		t.Errorf("guest rows = %d, want 0", n)
	}
}
