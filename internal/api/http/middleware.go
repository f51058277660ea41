package http

import (
	"context"
	"net/http"
	"strings"

	"libtrack-backend/internal/logger"
	"libtrack-backend/internal/security"

	"github.com/google/uuid"
)

type contextKey string

const (
	requestIDKey   contextKey = "request_id"
	staffClaimsKey contextKey = "staff_claims"
)

// RequestIDMiddleware tags every request with an ID for log correlation.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext returns the request ID, or "" outside a request.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// StaffAuthMiddleware gates the admin routes on a valid staff token from
// the identity provider.
type StaffAuthMiddleware struct {
	tokens security.TokenManager
}

func NewStaffAuthMiddleware(tokens security.TokenManager) *StaffAuthMiddleware {
	return &StaffAuthMiddleware{tokens: tokens}
}

func (m *StaffAuthMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Kind: "UNAUTHENTICATED", Message: "staff token required"})
			return
		}

		claims, err := m.tokens.ValidateStaffToken(strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			logger.Warn("staff token rejected", "request_id", RequestIDFromContext(r.Context()), "error", err)
			writeJSON(w, http.StatusUnauthorized, errorResponse{Kind: "UNAUTHENTICATED", Message: "invalid staff token"})
			return
		}

		ctx := context.WithValue(r.Context(), staffClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// StaffFromContext returns the authenticated staff claims, if any.
func StaffFromContext(ctx context.Context) *security.StaffClaims {
	claims, _ := ctx.Value(staffClaimsKey).(*security.StaffClaims)
	return claims
}
