package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maitafernandez/armario-api/internal/api/shared"
	"github.com/maitafernandez/armario-api/internal/domain"
	"github.com/maitafernandez/armario-api/internal/mocks"
	"github.com/maitafernandez/armario-api/internal/service/auth"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	principal := &domain.Principal{
		ProviderID:  "u1",
		Email:       "a@b.com",
		DisplayName: "alice",
	}

	tests := []struct {
		name           string
		authHeader     string
		resolveErr     error
		principal      *domain.Principal
		expectedStatus int
		expectedDetail string
	}{
		{
			name:           "valid token",
			authHeader:     "Bearer abc123",
			principal:      principal,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing auth header",
			authHeader:     "",
			resolveErr:     auth.ErrMissingToken,
			expectedStatus: http.StatusUnauthorized,
			expectedDetail: "Token no proporcionado",
		},
		{
			name:           "invalid token",
			authHeader:     "Bearer expired",
			resolveErr:     auth.ErrInvalidToken,
			expectedStatus: http.StatusUnauthorized,
			expectedDetail: "Token inválido",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resolver := &mocks.PrincipalResolver{
				Principal: tt.principal,
				Err:       tt.resolveErr,
			}
			middleware := NewAuthMiddleware(resolver)

			var captured *domain.Principal
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if p, ok := GetPrincipal(r); ok {
					captured = p
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("GET", "/users/me", nil)
			if tt.authHeader != "" {
				req.Header.Add("Authorization", tt.authHeader)
			}
			recorder := httptest.NewRecorder()

			middleware.Authenticate(nextHandler).ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)

			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.principal, captured)
				return
			}

			assert.Equal(t, "Bearer", recorder.Header().Get("WWW-Authenticate"))

			var body shared.ErrorResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedDetail, body.Detail)
		})
	}
}

func TestAuthMiddleware_PassesRawHeader(t *testing.T) {
	t.Parallel()

	var seen string
	resolver := &mocks.PrincipalResolver{
		ResolvePrincipalFunc: func(ctx context.Context, rawHeader string) (*domain.Principal, error) {
			seen = rawHeader
			return &domain.Principal{ProviderID: "u1", Email: "a@b.com"}, nil
		},
	}
	middleware := NewAuthMiddleware(resolver)

	req := httptest.NewRequest("GET", "/ropa", nil)
	req.Header.Set("Authorization", "Bearer abc123")
	recorder := httptest.NewRecorder()

	middleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Bearer abc123", seen,
		"the verbatim header must reach the resolver untouched")
}
