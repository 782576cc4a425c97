package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHealthHandlerReportsBoundState(t *testing.T) {
	h := NewHealthHandler()

	BindServiceHealth(func() bool { return false })
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	h.CheckHealth(w, req)
	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code: %d", w.Result().StatusCode)
	}
	if !strings.Contains(w.Body.String(), "unhealthy") {
		t.Fatalf("expected unhealthy body, got %s", w.Body.String())
	}

	BindServiceHealth(func() bool { return true })
	w = httptest.NewRecorder()
	h.CheckHealth(w, req)
	if !strings.Contains(w.Body.String(), `"healthy"`) {
		t.Fatalf("expected healthy body, got %s", w.Body.String())
	}
}
