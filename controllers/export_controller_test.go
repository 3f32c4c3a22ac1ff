package controllers_test

import (
	"encoding/csv"
	"net/http"
	"testing"

	"github.com/syed-reza98/Sharothee-Wedding-sub000/config"
	"github.com/syed-reza98/Sharothee-Wedding-sub000/models"
)

func TestExportGuestsCSVOneRowPerRSVP(t *testing.T) {
	r := setupTestApp(t)
	auth := loginAdmin(t, r)

	invited := seedGuest(t, "Noor", "noor@example.com", "NOOR2345")
	responded := seedGuest(t, "Arshia", "arshia@example.com", "ABC234DE")
	mehndi := seedEvent(t, "Mehndi", 1)
	reception := seedEvent(t, "Reception", 2)
	for _, ev := range []models.Event{mehndi, reception} {
		rsvp := models.RSVP{GuestID: responded.ID, EventID: ev.ID, Response: models.ResponseAttending, Attendees: 2}
		if err := config.DB.Create(&rsvp).Error; err != nil {
			t.Fatalf("seed rsvp: %v", err)
		}
	}

	w := doJSON(r, http.MethodGet, "/api/admin/export/guests?format=csv", nil, auth)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}

	records, err := csv.NewReader(w.Body).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("got %d records, want header + 3 rows", len(records))
	}

	// Guests sort by name, so Arshia's two RSVP rows come first.
	for i, wantEvent := range []string{"Mehndi", "Reception"} {
		row := records[i+1]
		if row[0] != "Arshia" || row[5] != wantEvent || row[6] != string(models.ResponseAttending) {
			t.Errorf("row %d = %v, want Arshia / %s / ATTENDING", i+1, row, wantEvent)
		}
	}

	// A guest who never responded still exports, with the RSVP columns empty.
	last := records[3]
	if last[0] != "Noor" || last[2] != invited.Token {
		t.Fatalf("last row = %v, want Noor with token %s", last, invited.Token)
	}
	if last[5] != "" || last[6] != "" {
		t.Errorf("last row = %v, want empty event and response columns", last)
	}
}

func TestExportGuestsRejectsUnknownFormat(t *testing.T) {
	r := setupTestApp(t)
	auth := loginAdmin(t, r)

	w := doJSON(r, http.MethodGet, "/api/admin/export/guests?format=pdf", nil, auth)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400 (body %s)", w.Code, w.Body.String())
	}
}
