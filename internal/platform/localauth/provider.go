// Package localauth is an in-process identity.Provider used in development
// and tests, where pointing at a hosted provider project is impractical.
// Accounts live in memory, passwords are bcrypt-hashed, and tokens are HS256
// JWTs signed with a configured secret. The guard treats these tokens as
// opaque exactly like the remote provider's.
package localauth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/maitafernandez/armario-api/internal/identity"
)

// tokenTTL is the lifetime of issued tokens.
const tokenTTL = time.Hour

type account struct {
	id           string
	email        string
	passwordHash []byte
}

// Provider is an in-memory identity.Provider. Safe for concurrent use.
type Provider struct {
	secret []byte

	mu         sync.RWMutex
	byEmail    map[string]*account
	byID       map[string]*account
	timeSource func() time.Time
}

// New creates a local provider signing tokens with secret.
func New(secret string) (*Provider, error) {
	if len(secret) < 32 {
		return nil, errors.New("local auth secret must be at least 32 bytes")
	}
	return &Provider{
		secret:     []byte(secret),
		byEmail:    make(map[string]*account),
		byID:       make(map[string]*account),
		timeSource: time.Now,
	}, nil
}

var _ identity.Provider = (*Provider)(nil)

// SignUp implements identity.Provider.SignUp.
func (p *Provider) SignUp(ctx context.Context, email, password string) (*identity.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.byEmail[email]; exists {
		return nil, identity.ErrEmailTaken
	}
	acct := &account{
		id:           uuid.New().String(),
		email:        email,
		passwordHash: hash,
	}
	p.byEmail[email] = acct
	p.byID[acct.id] = acct

	return &identity.Account{ID: acct.id, Email: acct.email}, nil
}

// SignIn implements identity.Provider.SignIn.
func (p *Provider) SignIn(ctx context.Context, email, password string) (*identity.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	p.mu.RLock()
	acct, ok := p.byEmail[email]
	p.mu.RUnlock()
	if !ok {
		// Same error as a wrong password so sign-in cannot be used to probe
		// which emails exist.
		return nil, identity.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(acct.passwordHash, []byte(password)); err != nil {
		return nil, identity.ErrInvalidCredentials
	}

	now := p.timeSource().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   acct.id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		ID:        uuid.New().String(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &identity.Session{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(tokenTTL.Seconds()),
	}, nil
}

// ResolveToken implements identity.Provider.ResolveToken.
func (p *Provider) ResolveToken(ctx context.Context, token string) (*identity.Account, error) {
	parsed, err := jwt.ParseWithClaims(
		token,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return p.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(func() time.Time { return p.timeSource() }),
	)
	if err != nil || !parsed.Valid {
		return nil, identity.ErrTokenRejected
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return nil, identity.ErrTokenRejected
	}

	p.mu.RLock()
	acct, exists := p.byID[claims.Subject]
	p.mu.RUnlock()
	if !exists {
		return nil, identity.ErrAccountNotFound
	}

	return &identity.Account{ID: acct.id, Email: acct.email}, nil
}
