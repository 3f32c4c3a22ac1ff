package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/syed-reza98/Sharothee-Wedding-sub000/config"
	"github.com/syed-reza98/Sharothee-Wedding-sub000/controllers"
	"github.com/syed-reza98/Sharothee-Wedding-sub000/models"
	"github.com/syed-reza98/Sharothee-Wedding-sub000/routes"
	"github.com/syed-reza98/Sharothee-Wedding-sub000/utils"
)

// setupTestApp wires the full router against a fresh in-memory database.
func setupTestApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "testsecret")

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

type mailCall struct {
	To      []string
	Subject string
	HTML    string
}

// stubMailer records sends; with fail set, every send errors.
type stubMailer struct {
	mu    sync.Mutex
	calls []mailCall
	fail  bool
}

func (s *stubMailer) Send(to []string, subject, html string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, mailCall{To: to, Subject: subject, HTML: html})
	if s.fail {
		return errEmailDown
	}
	return nil
}

func (s *stubMailer) sent() []mailCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]mailCall, len(s.calls))
	copy(out, s.calls)
	return out
}

var errEmailDown = &emailDownError{}

type emailDownError struct{}

func (*emailDownError) Error() string { return "email provider unavailable" }

func useStubMailer(t *testing.T, fail bool) *stubMailer {
	t.Helper()
	stub := &stubMailer{fail: fail}
	controllers.Mailer = stub
	t.Cleanup(func() { controllers.Mailer = nil })
	return stub
}

func seedGuest(t *testing.T, name, email, token string) models.Guest {
	t.Helper()
	guest := models.Guest{Name: name, Email: email, Token: token}
	if err := config.DB.Create(&guest).Error; err != nil {
		t.Fatalf("seed guest: %v", err)
	}
	return guest
}

func seedEvent(t *testing.T, title string, order int) models.Event {
	t.Helper()
	venue := models.Venue{Name: "Radisson Blu", Address: "Airport Road", City: "Dhaka", Country: "Bangladesh"}
	if err := config.DB.Create(&venue).Error; err != nil {
		t.Fatalf("seed venue: %v", err)
	}
	event := models.Event{Title: title, VenueID: venue.ID, DisplayOrder: order, IsActive: true}
	if err := config.DB.Create(&event).Error; err != nil {
		t.Fatalf("seed event: %v", err)
	}
	return event
}

func seedAdmin(t *testing.T, email, password string) models.AdminUser {
	t.Helper()
	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	admin := models.AdminUser{Name: "Admin", Email: email, PasswordHash: hash}
	if err := config.DB.Create(&admin).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	return admin
}

// loginAdmin seeds an admin user, logs in and returns the auth header.
func loginAdmin(t *testing.T, r *gin.Engine) map[string]string {
	t.Helper()
	seedAdmin(t, "admin@sharothee.wedding", "correct-horse")
	w := doJSON(r, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "admin@sharothee.wedding", "password": "correct-horse",
	}, nil)
	token, ok := decodeBody(t, w)["token"].(string)
	if !ok {
		t.Fatalf("login failed: status %d, body %s", w.Code, w.Body.String())
	}
	return map[string]string{"Authorization": "Bearer " + token}
}

// Each request gets its own client IP so the public intake rate limiter
// never couples unrelated tests.
var ipCounter uint64

func doJSON(r *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	n := atomic.AddUint64(&ipCounter, 1)
	req.RemoteAddr = fmt.Sprintf("10.%d.%d.%d:1234", (n>>16)&0xff, (n>>8)&0xff, n&0xff)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func mustCount(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := config.DB.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}
