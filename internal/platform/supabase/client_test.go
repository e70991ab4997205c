package supabase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maitafernandez/armario-api/internal/identity"
)

func TestClient_ResolveToken(t *testing.T) {
	t.Parallel()

	t.Run("valid token", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/auth/v1/user", r.URL.Path)
			assert.Equal(t, "test-key", r.Header.Get("apikey"))
			assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))

			w.Header().Set("Content-Type", "application/json")
			require.NoError(t, json.NewEncoder(w).Encode(map[string]string{
				"id":    "u1",
				"email": "a@b.com",
			}))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "test-key", nil)
		account, err := client.ResolveToken(context.Background(), "tok-abc")

		require.NoError(t, err)
		assert.Equal(t, "u1", account.ID)
		assert.Equal(t, "a@b.com", account.Email)
	})

	t.Run("rejected token", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "test-key", nil)
		account, err := client.ResolveToken(context.Background(), "expired")

		require.ErrorIs(t, err, identity.ErrTokenRejected)
		assert.Nil(t, account)
	})

	t.Run("account gone", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "test-key", nil)
		_, err := client.ResolveToken(context.Background(), "tok-abc")

		require.ErrorIs(t, err, identity.ErrAccountNotFound)
	})

	t.Run("5xx retried once then surfaces transport error", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "test-key", nil)
		_, err := client.ResolveToken(context.Background(), "tok-abc")

		require.ErrorIs(t, err, identity.ErrTransport)
		assert.Equal(t, int64(2), calls.Load(), "transport failures retry exactly once")
	})

	t.Run("5xx then success on retry", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			require.NoError(t, json.NewEncoder(w).Encode(map[string]string{
				"id":    "u1",
				"email": "a@b.com",
			}))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "test-key", nil)
		account, err := client.ResolveToken(context.Background(), "tok-abc")

		require.NoError(t, err)
		assert.Equal(t, "u1", account.ID)
	})

	t.Run("rejected token is not retried", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "test-key", nil)
		_, err := client.ResolveToken(context.Background(), "expired")

		require.ErrorIs(t, err, identity.ErrTokenRejected)
		assert.Equal(t, int64(1), calls.Load())
	})
}

func TestClient_SignUp(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/v1/signup", r.URL.Path)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "a@b.com", body["email"])

			require.NoError(t, json.NewEncoder(w).Encode(map[string]string{
				"id":    "u1",
				"email": "a@b.com",
			}))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "test-key", nil)
		account, err := client.SignUp(context.Background(), "a@b.com", "secreto123")

		require.NoError(t, err)
		assert.Equal(t, "u1", account.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			require.NoError(t, json.NewEncoder(w).Encode(map[string]string{
				"msg": "User already registered",
			}))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "test-key", nil)
		_, err := client.SignUp(context.Background(), "a@b.com", "secreto123")

		require.ErrorIs(t, err, identity.ErrEmailTaken)
	})
}

func TestClient_SignIn(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/v1/token", r.URL.Path)
			assert.Equal(t, "password", r.URL.Query().Get("grant_type"))

			require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
				"access_token": "tok-abc",
				"token_type":   "bearer",
				"expires_in":   3600,
			}))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "test-key", nil)
		session, err := client.SignIn(context.Background(), "a@b.com", "secreto123")

		require.NoError(t, err)
		assert.Equal(t, "tok-abc", session.AccessToken)
		assert.Equal(t, 3600, session.ExpiresIn)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			require.NoError(t, json.NewEncoder(w).Encode(map[string]string{
				"error_description": "Invalid login credentials",
			}))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "test-key", nil)
		_, err := client.SignIn(context.Background(), "a@b.com", "wrong")

		require.ErrorIs(t, err, identity.ErrInvalidCredentials)
	})

	t.Run("unreachable provider", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // closed on purpose

		client := NewClient(srv.URL, "test-key", nil)
		_, err := client.SignIn(context.Background(), "a@b.com", "secreto123")

		require.ErrorIs(t, err, identity.ErrTransport)
	})
}
