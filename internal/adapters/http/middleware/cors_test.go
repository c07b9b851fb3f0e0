package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/buildsight/timeline-service/internal/adapters/http/middleware"
)

func TestCORS_AllowedOrigin(t *testing.T) {
	t.Parallel()

	handler := middleware.CORS([]string{"http://localhost:5173"})(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/p-1/log", http.NoBody)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Access-Control-Allow-Origin = %q, want allowed origin echoed", got)
	}
}

func TestCORS_PreflightMethodAllowList(t *testing.T) {
	t.Parallel()

	handler := middleware.CORS([]string{"http://localhost:5173"})(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/projects/p-1/log", http.NoBody)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "" {
		t.Errorf("Access-Control-Allow-Methods = %q, want empty for disallowed POST preflight", got)
	}
}

func TestCORS_EmptyOriginsIsPassThrough(t *testing.T) {
	t.Parallel()

	called := false
	handler := middleware.CORS(nil)(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			called = true
			w.WriteHeader(http.StatusOK)
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/portfolio/log", http.NoBody)
	req.Header.Set("Origin", "http://anywhere.example")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if !called {
		t.Error("next handler not called with CORS disabled")
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Access-Control-Allow-Origin = %q, want empty when disabled", got)
	}
}
