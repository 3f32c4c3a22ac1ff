package controllers_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/syed-reza98/Sharothee-Wedding-sub000/models"
)

// doUpload posts a single-file multipart form. partType goes into the part
// header, which clients control freely; the handler must not trust it.
func doUpload(t *testing.T, r *gin.Engine, headers map[string]string, filename, partType string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	hdr.Set("Content-Type", partType)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/admin/media", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUploadMediaRejectsOversizeFile(t *testing.T) {
	r := setupTestApp(t)
	auth := loginAdmin(t, r)

	oversize := bytes.Repeat([]byte("a"), (10<<20)+1)
	w := doUpload(t, r, auth, "huge.png", "image/png", oversize)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400 (body %s)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "10MB") {
		t.Errorf("body %q does not name the size limit", w.Body.String())
	}
	if n := mustCount(t, &models.MediaItem{}); n != 0 {
		t.Errorf("media rows = %d, want 0", n)
	}
}

func TestUploadMediaRejectsNonMediaContent(t *testing.T) {
	r := setupTestApp(t)
	auth := loginAdmin(t, r)

	tests := []struct {
		name     string
		filename string
		partType string
		content  []byte
	}{
		{"plain text", "notes.txt", "text/plain", []byte("just some notes")},
		// The part header claims image/png but the bytes are text; the
		// sniffed type decides.
		{"text disguised as image", "fake.png", "image/png", []byte("<html><body>not a picture</body></html>")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doUpload(t, r, auth, tt.filename, tt.partType, tt.content)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status %d, want 400 (body %s)", w.Code, w.Body.String())
			}
			if !strings.Contains(w.Body.String(), "image and video") {
				t.Errorf("body %q does not explain the allowed types", w.Body.String())
			}
		})
	}

	if n := mustCount(t, &models.MediaItem{}); n != 0 {
		t.Errorf("media rows = %d, want 0 after rejected uploads", n)
	}
}
