package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maitafernandez/armario-api/internal/identity"
	"github.com/maitafernandez/armario-api/internal/mocks"
	"github.com/maitafernandez/armario-api/internal/service/auth"
	"github.com/maitafernandez/armario-api/internal/store"
)

func TestGuard_ResolvePrincipal_MissingToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		rawHeader string
	}{
		{name: "absent header", rawHeader: ""},
		{name: "no bearer prefix", rawHeader: "abc123"},
		{name: "wrong scheme", rawHeader: "Basic abc123"},
		{name: "lowercase scheme", rawHeader: "bearer abc123"},
		{name: "prefix without token", rawHeader: "Bearer "},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			provider := &mocks.IdentityProvider{}
			guard := auth.NewGuard(provider, &mocks.ProfileStore{}, nil)

			principal, err := guard.ResolvePrincipal(context.Background(), tt.rawHeader)

			require.ErrorIs(t, err, auth.ErrMissingToken)
			assert.Nil(t, principal)
			assert.Zero(t, provider.ResolveCalls.Load(),
				"no provider call may be made for a missing credential")
		})
	}
}

func TestGuard_ResolvePrincipal_InvalidToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		providerErr error
	}{
		{name: "token rejected", providerErr: identity.ErrTokenRejected},
		{name: "account gone", providerErr: identity.ErrAccountNotFound},
		{name: "provider unreachable", providerErr: identity.ErrTransport},
		{name: "unexpected provider error", providerErr: errors.New("boom")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			provider := &mocks.IdentityProvider{Err: tt.providerErr}
			guard := auth.NewGuard(provider, &mocks.ProfileStore{DisplayName: "alice"}, nil)

			principal, err := guard.ResolvePrincipal(context.Background(), "Bearer expired")

			require.ErrorIs(t, err, auth.ErrInvalidToken)
			assert.Nil(t, principal)
		})
	}
}

func TestGuard_ResolvePrincipal_EmptyAccount(t *testing.T) {
	t.Parallel()

	// A falsy principal from the provider is as invalid as an error.
	for _, account := range []*identity.Account{nil, {ID: "", Email: "a@b.com"}} {
		provider := &mocks.IdentityProvider{Account: account}
		guard := auth.NewGuard(provider, nil, nil)

		principal, err := guard.ResolvePrincipal(context.Background(), "Bearer abc123")

		require.ErrorIs(t, err, auth.ErrInvalidToken)
		assert.Nil(t, principal)
	}
}

func TestGuard_ResolvePrincipal_Success(t *testing.T) {
	t.Parallel()

	provider := &mocks.IdentityProvider{
		Account: &identity.Account{ID: "u1", Email: "a@b.com"},
	}
	profiles := &mocks.ProfileStore{DisplayName: "alice"}
	guard := auth.NewGuard(provider, profiles, nil)

	principal, err := guard.ResolvePrincipal(context.Background(), "Bearer abc123")

	require.NoError(t, err)
	assert.Equal(t, "u1", principal.ProviderID)
	assert.Equal(t, "a@b.com", principal.Email)
	assert.Equal(t, "alice", principal.DisplayName)
}

func TestGuard_ResolvePrincipal_DisplayNameFallback(t *testing.T) {
	t.Parallel()

	account := &identity.Account{ID: "u1", Email: "a@b.com"}

	tests := []struct {
		name     string
		profiles *mocks.ProfileStore
		expected string
	}{
		{
			name:     "no profile row",
			profiles: &mocks.ProfileStore{Err: store.ErrProfileNotFound},
			expected: "Usuario",
		},
		{
			name:     "profile store infrastructure failure",
			profiles: &mocks.ProfileStore{Err: errors.New("connection refused")},
			expected: "Usuario",
		},
		{
			name:     "empty username column",
			profiles: &mocks.ProfileStore{DisplayName: ""},
			expected: "Usuario",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			guard := auth.NewGuard(&mocks.IdentityProvider{Account: account}, tt.profiles, nil)

			principal, err := guard.ResolvePrincipal(context.Background(), "Bearer abc123")

			require.NoError(t, err, "an empty secondary lookup must not fail the request")
			assert.Equal(t, tt.expected, principal.DisplayName)
		})
	}
}

func TestGuard_ResolvePrincipal_CustomDefaultDisplayName(t *testing.T) {
	t.Parallel()

	guard := auth.NewGuard(
		&mocks.IdentityProvider{Account: &identity.Account{ID: "u1", Email: "a@b.com"}},
		&mocks.ProfileStore{Err: store.ErrProfileNotFound},
		nil,
		auth.WithDefaultDisplayName("Invitado"),
	)

	principal, err := guard.ResolvePrincipal(context.Background(), "Bearer abc123")

	require.NoError(t, err)
	assert.Equal(t, "Invitado", principal.DisplayName)
}

func TestGuard_ResolvePrincipal_NilProfileStore(t *testing.T) {
	t.Parallel()

	guard := auth.NewGuard(
		&mocks.IdentityProvider{Account: &identity.Account{ID: "u1", Email: "a@b.com"}},
		nil,
		nil,
	)

	principal, err := guard.ResolvePrincipal(context.Background(), "Bearer abc123")

	require.NoError(t, err)
	assert.Equal(t, "Usuario", principal.DisplayName)
}

func TestGuard_ResolvePrincipal_Timeout(t *testing.T) {
	t.Parallel()

	provider := &mocks.IdentityProvider{
		ResolveTokenFunc: func(ctx context.Context, token string) (*identity.Account, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	guard := auth.NewGuard(provider, nil, nil, auth.WithTimeout(10*time.Millisecond))

	principal, err := guard.ResolvePrincipal(context.Background(), "Bearer abc123")

	// Fail closed: a timeout is never treated as authenticated.
	require.ErrorIs(t, err, auth.ErrInvalidToken)
	assert.Nil(t, principal)
}

func TestGuard_ResolvePrincipal_Idempotent(t *testing.T) {
	t.Parallel()

	provider := &mocks.IdentityProvider{
		Account: &identity.Account{ID: "u1", Email: "a@b.com"},
	}
	guard := auth.NewGuard(provider, &mocks.ProfileStore{DisplayName: "alice"}, nil)

	first, err := guard.ResolvePrincipal(context.Background(), "Bearer abc123")
	require.NoError(t, err)
	second, err := guard.ResolvePrincipal(context.Background(), "Bearer abc123")
	require.NoError(t, err)

	assert.Equal(t, first, second,
		"unchanged provider and profile state must yield an identical principal")
}

func TestGuard_ResolvePrincipal_ProfileLookupUsesProviderID(t *testing.T) {
	t.Parallel()

	var lookedUp string
	profiles := &mocks.ProfileStore{
		FindDisplayNameFunc: func(ctx context.Context, authID string) (string, error) {
			lookedUp = authID
			return "alice", nil
		},
	}
	guard := auth.NewGuard(
		&mocks.IdentityProvider{Account: &identity.Account{ID: "u1", Email: "a@b.com"}},
		profiles,
		nil,
	)

	_, err := guard.ResolvePrincipal(context.Background(), "Bearer abc123")

	require.NoError(t, err)
	assert.Equal(t, "u1", lookedUp)
}
