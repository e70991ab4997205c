// Package mocks provides hand-rolled test doubles for the application's
// interfaces. Each mock exposes Func fields for custom behavior and simple
// value fields for fixed responses.
package mocks

import (
	"context"
	"sync/atomic"

	"github.com/maitafernandez/armario-api/internal/identity"
)

// IdentityProvider is a mock implementation of identity.Provider.
type IdentityProvider struct {
	SignUpFunc       func(ctx context.Context, email, password string) (*identity.Account, error)
	SignInFunc       func(ctx context.Context, email, password string) (*identity.Session, error)
	ResolveTokenFunc func(ctx context.Context, token string) (*identity.Account, error)

	// Fixed fields for simple cases
	Account *identity.Account
	Session *identity.Session
	Err     error

	// ResolveCalls counts ResolveToken invocations, letting tests assert
	// that no provider call happens for missing headers.
	ResolveCalls atomic.Int64
}

var _ identity.Provider = (*IdentityProvider)(nil)

// SignUp implements identity.Provider.SignUp.
func (m *IdentityProvider) SignUp(ctx context.Context, email, password string) (*identity.Account, error) {
	if m.SignUpFunc != nil {
		return m.SignUpFunc(ctx, email, password)
	}
	return m.Account, m.Err
}

// SignIn implements identity.Provider.SignIn.
func (m *IdentityProvider) SignIn(ctx context.Context, email, password string) (*identity.Session, error) {
	if m.SignInFunc != nil {
		return m.SignInFunc(ctx, email, password)
	}
	return m.Session, m.Err
}

// ResolveToken implements identity.Provider.ResolveToken.
func (m *IdentityProvider) ResolveToken(ctx context.Context, token string) (*identity.Account, error) {
	m.ResolveCalls.Add(1)
	if m.ResolveTokenFunc != nil {
		return m.ResolveTokenFunc(ctx, token)
	}
	return m.Account, m.Err
}
