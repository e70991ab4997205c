// Package middleware provides HTTP middleware for the API: bearer-token
// authentication via the request guard and trace-ID propagation.
package middleware

import (
	"errors"
	"net/http"

	"github.com/maitafernandez/armario-api/internal/api/shared"
	"github.com/maitafernandez/armario-api/internal/domain"
	"github.com/maitafernandez/armario-api/internal/service/auth"
)

// Fixed user-facing 401 messages. These are the only two bodies an
// authentication failure can produce.
const (
	msgTokenMissing = "Token no proporcionado"
	msgTokenInvalid = "Token inválido"
)

// AuthMiddleware guards protected routes. It hands the raw Authorization
// header to the principal resolver and stashes the resulting principal in
// the request context.
type AuthMiddleware struct {
	resolver auth.PrincipalResolver
}

// NewAuthMiddleware creates a new AuthMiddleware with the given resolver.
func NewAuthMiddleware(resolver auth.PrincipalResolver) *AuthMiddleware {
	return &AuthMiddleware{resolver: resolver}
}

// Authenticate resolves the request's bearer credential into a principal and
// adds it to the request context. Every failure short-circuits with 401 and
// one of the two fixed messages; internal detail never reaches the body.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := m.resolver.ResolvePrincipal(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			w.Header().Set("WWW-Authenticate", "Bearer")
			if errors.Is(err, auth.ErrMissingToken) {
				shared.RespondWithError(w, r, http.StatusUnauthorized, msgTokenMissing)
			} else {
				shared.RespondWithError(w, r, http.StatusUnauthorized, msgTokenInvalid)
			}
			return
		}

		ctx := shared.WithPrincipal(r.Context(), principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetPrincipal extracts the resolved principal from the request context.
// Returns the principal and a boolean indicating if it was found.
func GetPrincipal(r *http.Request) (*domain.Principal, bool) {
	return shared.PrincipalFrom(r.Context())
}
