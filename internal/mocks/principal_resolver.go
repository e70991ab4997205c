package mocks

import (
	"context"

	"github.com/maitafernandez/armario-api/internal/domain"
	"github.com/maitafernandez/armario-api/internal/service/auth"
)

// PrincipalResolver is a mock implementation of auth.PrincipalResolver.
type PrincipalResolver struct {
	ResolvePrincipalFunc func(ctx context.Context, rawHeader string) (*domain.Principal, error)

	// Fixed fields for simple cases
	Principal *domain.Principal
	Err       error
}

var _ auth.PrincipalResolver = (*PrincipalResolver)(nil)

// ResolvePrincipal implements auth.PrincipalResolver.ResolvePrincipal.
func (m *PrincipalResolver) ResolvePrincipal(ctx context.Context, rawHeader string) (*domain.Principal, error) {
	if m.ResolvePrincipalFunc != nil {
		return m.ResolvePrincipalFunc(ctx, rawHeader)
	}
	return m.Principal, m.Err
}
