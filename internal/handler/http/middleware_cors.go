package http

import (
	"net/http"
	"slices"

	"github.com/rs/cors"
)

// withCORS builds the CORS middleware for the configured origins.
// Preflight requests are answered here and never reach the router.
//
// Credentials are allowed, and browsers refuse "Access-Control-Allow-Origin: *"
// on credentialed requests, so a "*" entry echoes the caller's origin back.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	opts := cors.Options{
		AllowedOrigins:   h.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
	}

	if slices.Contains(h.allowedOrigins, "*") {
		opts.AllowedOrigins = nil
		opts.AllowOriginFunc = func(string) bool { return true }
	}

	return cors.New(opts).Handler
}
