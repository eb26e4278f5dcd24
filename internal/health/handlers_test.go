package health_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/noah-isme/cielo-link-api/internal/health"
)

func TestStatus(t *testing.T) {
	fixed := time.Date(2025, 8, 28, 14, 30, 0, 0, time.UTC)
	handler := health.Handler{Now: func() time.Time { return fixed }}

	rr := httptest.NewRecorder()
	handler.Status(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("unexpected status %q", body["status"])
	}
	if body["timestamp"] != "2025-08-28T14:30:00Z" {
		t.Fatalf("unexpected timestamp %q", body["timestamp"])
	}
}
