package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"irentstuff-transactions/internal/logger"
)

// RequestLogger tags every request with an id and logs entry and duration.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)
		start := time.Now()
		logger.Info("request received", "request_id", requestID, "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
		logger.Info("request finished", "request_id", requestID, "method", r.Method, "path", r.URL.Path, "duration_ms", time.Since(start).Milliseconds())
	})
}

// bearerToken extracts the bearer credential from the Authorization header.
// An absent header yields an empty token, which the verifier will reject.
func bearerToken(r *http.Request) string {
	return strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
}
