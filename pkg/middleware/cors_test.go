package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Rad0130/event-planner-server/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:   "error",
		Format:  logger.JSON,
		Service: "test",
	})
}

func TestOriginAllowed(t *testing.T) {
	tests := []struct {
		name       string
		production bool
		allowlist  []string
		origin     string
		want       bool
	}{
		{
			name:   "no origin header always allowed",
			origin: "",
			want:   true,
		},
		{
			name:       "vercel subdomain allowed in production",
			production: true,
			origin:     "https://my-app.vercel.app",
			want:       true,
		},
		{
			name:       "vercel subdomain rejected in development",
			production: false,
			origin:     "https://my-app.vercel.app",
			want:       false,
		},
		{
			name:       "localhost allowed in development",
			production: false,
			origin:     "http://localhost:3000",
			want:       true,
		},
		{
			name:       "localhost with other port allowed in development",
			production: false,
			origin:     "http://localhost:5173",
			want:       true,
		},
		{
			name:       "localhost rejected in production unless listed",
			production: true,
			origin:     "http://localhost:3000",
			want:       false,
		},
		{
			name:       "allowlisted origin allowed in production",
			production: true,
			allowlist:  []string{"https://planner.example.com"},
			origin:     "https://planner.example.com",
			want:       true,
		},
		{
			name:       "unknown origin rejected",
			production: true,
			origin:     "https://evil.example.com",
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := NewCORSPolicy(tt.production, tt.allowlist, testLogger())
			if got := policy.OriginAllowed(tt.origin); got != tt.want {
				t.Errorf("OriginAllowed(%q) = %v, want %v", tt.origin, got, tt.want)
			}
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	policy := NewCORSPolicy(false, nil, testLogger())
	handler := CORS(policy)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("allowed origin gets CORS headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/events", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
			t.Errorf("expected origin echoed, got %q", got)
		}
		if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
			t.Errorf("expected credentials header, got %q", got)
		}
	})

	t.Run("preflight short-circuits with 204", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/events", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if got := w.Header().Get("Access-Control-Allow-Methods"); got == "" {
			t.Errorf("expected Allow-Methods on preflight response")
		}
	})

	t.Run("disallowed origin rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/events", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("expected no CORS headers on rejection, got %q", got)
		}
	})

	t.Run("request without origin passes through untouched", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/events", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("expected no CORS headers without an Origin, got %q", got)
		}
	})
}
