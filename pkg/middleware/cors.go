package middleware

import (
	"net/http"
	"strings"

	"github.com/Rad0130/event-planner-server/pkg/logger"
)

const (
	vercelSuffix    = ".vercel.app"
	localhostPrefix = "http://localhost:"
)

// CORSPolicy decides which caller origins may invoke the API. Requests
// without an Origin header (curl, mobile clients, server-to-server) are
// always allowed. Browsers get the configured allowlist, plus any
// *.vercel.app origin in production and any localhost origin otherwise.
type CORSPolicy struct {
	production bool
	allowed    map[string]struct{}
	log        *logger.Logger
}

func NewCORSPolicy(production bool, allowedOrigins []string, log *logger.Logger) *CORSPolicy {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}
	return &CORSPolicy{
		production: production,
		allowed:    allowed,
		log:        log,
	}
}

func (p *CORSPolicy) OriginAllowed(origin string) bool {
	if origin == "" {
		return true
	}
	if p.production && strings.HasSuffix(origin, vercelSuffix) {
		return true
	}
	if !p.production && strings.HasPrefix(origin, localhostPrefix) {
		return true
	}
	_, ok := p.allowed[origin]
	return ok
}

func CORS(policy *CORSPolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if !policy.OriginAllowed(origin) {
				policy.log.Warn("Origin rejected by CORS policy",
					"origin", origin,
					"path", r.URL.Path,
					"method", r.Method,
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"error":"Origin not allowed"}`))
				return
			}

			if origin != "" {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Credentials", "true")
				h.Add("Vary", "Origin")
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				h := w.Header()
				h.Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
				if reqHeaders := r.Header.Get("Access-Control-Request-Headers"); reqHeaders != "" {
					h.Set("Access-Control-Allow-Headers", reqHeaders)
				} else {
					h.Set("Access-Control-Allow-Headers", "Content-Type")
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
