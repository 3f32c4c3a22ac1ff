package controllers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/syed-reza98/Sharothee-Wedding-sub000/config"
	"github.com/syed-reza98/Sharothee-Wedding-sub000/models"
)

func TestTokenLookupResolvesAnyCasing(t *testing.T) {
	r := setupTestApp(t)
	guest := seedGuest(t, "Arshia Rahman", "arshia@example.com", "ABC234DE")
	seedEvent(t, "Holud Night", 1)

	for _, token := range []string{"ABC234DE", "abc234de", " AbC234dE "} {
		w := doJSON(r, http.MethodPost, "/api/rsvp/token", map[string]string{"token": token}, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("token %q: status %d, body %s", token, w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		g := body["guest"].(map[string]interface{})
		if uint(g["id"].(float64)) != guest.ID {
			t.Errorf("token %q resolved to guest %v, want %d", token, g["id"], guest.ID)
		}
	}
}

func TestTokenLookupFailuresAreIndistinguishable(t *testing.T) {
	r := setupTestApp(t)
	seedGuest(t, "Arshia", "arshia@example.com", "ABC234DE")

	unknown := doJSON(r, http.MethodPost, "/api/rsvp/token", map[string]string{"token": "ZZZZ9999"}, nil)
	malformed := doJSON(r, http.MethodPost, "/api/rsvp/token", map[string]string{"token": ""}, nil)

	if unknown.Code != http.StatusNotFound || malformed.Code != http.StatusNotFound {
		t.Fatalf("statuses = %d, %d; want both 404", unknown.Code, malformed.Code)
	}
	if unknown.Body.String() != malformed.Body.String() {
		t.Errorf("failure bodies differ: %q vs %q", unknown.Body.String(), malformed.Body.String())
	}
}

func TestTokenLookupOrdersActiveEvents(t *testing.T) {
	r := setupTestApp(t)
	seedGuest(t, "Arshia", "arshia@example.com", "ABC234DE")
	seedEvent(t, "Reception", 2)
	seedEvent(t, "Holud Night", 1)
	inactive := seedEvent(t, "Cancelled Brunch", 0)
	config.DB.Model(&inactive).Update("is_active", false)

	w := doJSON(r, http.MethodPost, "/api/rsvp/token", map[string]string{"token": "abc234de"}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	body := decodeBody(t, w)
	events := body["events"].([]interface{})
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2 (inactive excluded)", len(events))
	}
	first := events[0].(map[string]interface{})
	if first["title"] != "Holud Night" {
		t.Errorf("first event = %v, want display order to lead with Holud Night", first["title"])
	}
}

func TestTokenLookupStoreFailureIsNotInvalidToken(t *testing.T) {
	r := setupTestApp(t)
	seedGuest(t, "Arshia", "arshia@example.com", "ABC234DE")

	sqlDB, err := config.DB.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("close db: %v", err)
	}

	// A store outage must not masquerade as a bad token.
	w := doJSON(r, http.MethodPost, "/api/rsvp/token", map[string]string{"token": "ABC234DE"}, nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status %d, want 500 (body %s)", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "invalid RSVP token") {
		t.Errorf("store failure reported as invalid token: %s", w.Body.String())
	}
}

func TestSubmitRSVPFirstTimeAttendingSendsConfirmation(t *testing.T) {
	r := setupTestApp(t)
	stub := useStubMailer(t, false)
	guest := seedGuest(t, "Arshia", "arshia@example.com", "ABC234DE")
	event := seedEvent(t, "Holud Night", 1)

	w := doJSON(r, http.MethodPost, "/api/rsvp", map[string]interface{}{
		"guestId":   guest.ID,
		"eventId":   event.ID,
		"response":  "ATTENDING",
		"attendees": 2,
	}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}

	if n := mustCount(t, &models.RSVP{}); n != 1 {
		t.Errorf("rsvp rows = %d, want 1", n)
	}

	calls := stub.sent()
	if len(calls) != 1 {
		t.Fatalf("emails sent = %d, want 1", len(calls))
	}
	if calls[0].To[0] != guest.Email {
		t.Errorf("confirmation sent to %v, want %s", calls[0].To, guest.Email)
	}
	if !strings.Contains(calls[0].Subject, event.Title) && !strings.Contains(calls[0].HTML, event.Title) {
		t.Errorf("confirmation does not name the event title %q", event.Title)
	}
}

func TestSubmitRSVPUpsertIsIdempotent(t *testing.T) {
	r := setupTestApp(t)
	stub := useStubMailer(t, false)
	guest := seedGuest(t, "Arshia", "arshia@example.com", "ABC234DE")
	event := seedEvent(t, "Reception", 1)

	first := doJSON(r, http.MethodPost, "/api/rsvp", map[string]interface{}{
		"guestId":   guest.ID,
		"eventId":   event.ID,
		"response":  "ATTENDING",
		"attendees": 2,
	}, nil)
	if first.Code != http.StatusOK {
		t.Fatalf("first submit: status %d, body %s", first.Code, first.Body.String())
	}
	sentAfterFirst := len(stub.sent())

	second := doJSON(r, http.MethodPost, "/api/rsvp", map[string]interface{}{
		"guestId":   guest.ID,
		"eventId":   event.ID,
		"response":  "NOT_ATTENDING",
		"attendees": 1,
	}, nil)
	if second.Code != http.StatusOK {
		t.Fatalf("second submit: status %d, body %s", second.Code, second.Body.String())
	}

	if n := mustCount(t, &models.RSVP{}); n != 1 {
		t.Fatalf("rsvp rows = %d, want exactly 1 after resubmission", n)
	}

	var row models.RSVP
	if err := config.DB.Where("guest_id = ? AND event_id = ?", guest.ID, event.ID).First(&row).Error; err != nil {
		t.Fatalf("load row: %v", err)
	}
	if row.Response != models.ResponseNotAttending || row.Attendees != 1 {
		t.Errorf("row = %s/%d, want NOT_ATTENDING/1 (second payload wins)", row.Response, row.Attendees)
	}

	// Changing to NOT_ATTENDING must not send another confirmation.
	if got := len(stub.sent()); got != sentAfterFirst {
		t.Errorf("emails after response change = %d, want %d", got, sentAfterFirst)
	}
}

func TestSubmitRSVPValidation(t *testing.T) {
	r := setupTestApp(t)
	useStubMailer(t, false)
	guest := seedGuest(t, "Arshia", "arshia@example.com", "ABC234DE")
	event := seedEvent(t, "Reception", 1)

	tests := []struct {
		name     string
		body     map[string]interface{}
		wantCode int
		wantErr  string
	}{
		{"zero attendees", map[string]interface{}{
			"guestId": guest.ID, "eventId": event.ID, "response": "ATTENDING", "attendees": 0,
		}, http.StatusBadRequest, ""},
		{"too many attendees", map[string]interface{}{
			"guestId": guest.ID, "eventId": event.ID, "response": "ATTENDING", "attendees": 11,
		}, http.StatusBadRequest, ""},
		{"bad response enum", map[string]interface{}{
			"guestId": guest.ID, "eventId": event.ID, "response": "PROBABLY", "attendees": 1,
		}, http.StatusBadRequest, ""},
		{"unknown guest", map[string]interface{}{
			"guestId": 9999, "eventId": event.ID, "response": "ATTENDING", "attendees": 1,
		}, http.StatusNotFound, "guest not found"},
		{"unknown event", map[string]interface{}{
			"guestId": guest.ID, "eventId": 9999, "response": "ATTENDING", "attendees": 1,
		}, http.StatusNotFound, "event not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/api/rsvp", tt.body, nil)
			if w.Code != tt.wantCode {
				t.Fatalf("status %d, want %d (body %s)", w.Code, tt.wantCode, w.Body.String())
			}
			if tt.wantErr != "" && !strings.Contains(w.Body.String(), tt.wantErr) {
				t.Errorf("body %q missing %q", w.Body.String(), tt.wantErr)
			}
		})
	}

	if n := mustCount(t, &models.RSVP{}); n != 0 {
		t.Errorf("rsvp rows = %d, want 0 after rejected submissions", n)
	}
}
