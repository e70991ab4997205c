// Package auth implements the authenticated request guard: the single place
// that turns a raw Authorization header into a resolved Principal. All token
// trust is delegated to the identity provider; the guard never parses or
// caches tokens.
package auth

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/maitafernandez/armario-api/internal/domain"
	"github.com/maitafernandez/armario-api/internal/identity"
	"github.com/maitafernandez/armario-api/internal/redact"
	"github.com/maitafernandez/armario-api/internal/store"
)

// bearerPrefix is the only accepted Authorization scheme.
const bearerPrefix = "Bearer "

// DefaultTimeout bounds each external call when no timeout is configured.
const DefaultTimeout = 5 * time.Second

// PrincipalResolver resolves a raw Authorization header into a Principal.
// It exists as an interface so handlers and middleware can be tested with a
// double in place of the full guard.
type PrincipalResolver interface {
	// ResolvePrincipal validates the header and returns the caller's
	// identity. rawHeader is the verbatim Authorization header value, empty
	// if the header was absent. Fails with ErrMissingToken or
	// ErrInvalidToken; no other errors are returned.
	ResolvePrincipal(ctx context.Context, rawHeader string) (*domain.Principal, error)
}

// Guard is the production PrincipalResolver. It is stateless and safe for
// concurrent use; every invocation is an independent pure function of the
// header value and current provider state.
type Guard struct {
	provider           identity.Provider
	profiles           store.ProfileStore
	defaultDisplayName string
	timeout            time.Duration
	logger             *slog.Logger
}

// GuardOption customizes a Guard at construction time.
type GuardOption func(*Guard)

// WithTimeout bounds each of the guard's two external calls.
func WithTimeout(d time.Duration) GuardOption {
	return func(g *Guard) {
		if d > 0 {
			g.timeout = d
		}
	}
}

// WithDefaultDisplayName overrides the display name used when a valid
// account has no profile row.
func WithDefaultDisplayName(name string) GuardOption {
	return func(g *Guard) {
		if name != "" {
			g.defaultDisplayName = name
		}
	}
}

// NewGuard creates a Guard delegating token validation to provider and
// display-name resolution to profiles. profiles may be nil, in which case
// every principal gets the default display name. If logger is nil the
// process default is used.
func NewGuard(
	provider identity.Provider,
	profiles store.ProfileStore,
	logger *slog.Logger,
	opts ...GuardOption,
) *Guard {
	if provider == nil {
		panic("provider cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	g := &Guard{
		provider:           provider,
		profiles:           profiles,
		defaultDisplayName: "Usuario",
		timeout:            DefaultTimeout,
		logger:             logger.With(slog.String("component", "auth_guard")),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var _ PrincipalResolver = (*Guard)(nil)

// ResolvePrincipal implements PrincipalResolver.
//
// A Principal is produced if and only if the provider accepted the supplied
// credential as currently valid. A missing or malformed header fails before
// any provider call; a rejected token, an unreachable provider, or a timeout
// all collapse into ErrInvalidToken so the caller cannot distinguish them.
// The profile lookup is best-effort: an absent row or a failing profile
// store never rejects an otherwise valid request.
func (g *Guard) ResolvePrincipal(ctx context.Context, rawHeader string) (*domain.Principal, error) {
	if !strings.HasPrefix(rawHeader, bearerPrefix) {
		return nil, ErrMissingToken
	}
	token := rawHeader[len(bearerPrefix):]
	if token == "" {
		return nil, ErrMissingToken
	}

	resolveCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	account, err := g.provider.ResolveToken(resolveCtx, token)
	if err != nil {
		// Detail stays in the logs; the caller only ever sees ErrInvalidToken.
		g.logger.DebugContext(ctx, "token resolution failed",
			slog.String("error", redact.Error(err)))
		return nil, ErrInvalidToken
	}
	if account == nil || account.ID == "" {
		return nil, ErrInvalidToken
	}

	principal := &domain.Principal{
		ProviderID:  account.ID,
		Email:       account.Email,
		DisplayName: g.defaultDisplayName,
	}

	if g.profiles != nil {
		lookupCtx, cancelLookup := context.WithTimeout(ctx, g.timeout)
		defer cancelLookup()

		name, err := g.profiles.FindDisplayName(lookupCtx, account.ID)
		switch {
		case err == nil && name != "":
			principal.DisplayName = name
		case err != nil && !store.IsNotFoundError(err):
			// Infrastructure failure on the secondary lookup is logged but
			// does not reject the request.
			g.logger.WarnContext(ctx, "display name lookup failed",
				slog.String("provider_id", account.ID),
				slog.String("error", redact.Error(err)))
		}
	}

	return principal, nil
}
