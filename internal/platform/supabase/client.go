// Package supabase implements identity.Provider against the hosted
// provider's REST auth surface (GoTrue). Only the three operations the
// application delegates are covered: sign-up, password sign-in, and
// token-to-account resolution.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/maitafernandez/armario-api/internal/identity"
	"github.com/maitafernandez/armario-api/internal/redact"
)

const (
	defaultHTTPTimeout = 10 * time.Second

	// retryBackoff is the pause before the single retry of an idempotent
	// call that failed at the transport level.
	retryBackoff = 200 * time.Millisecond
)

// Client is an identity.Provider backed by a Supabase project. It is
// constructed once at process start and shared across requests; all state is
// read-only after construction.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithHTTPClient substitutes the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a provider client for the project at baseURL
// authenticating with apiKey. If logger is nil the process default is used.
func NewClient(baseURL, apiKey string, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		logger:     logger.With(slog.String("component", "supabase_client")),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ identity.Provider = (*Client)(nil)

type credentialsBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type accountBody struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type sessionBody struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type errorBody struct {
	Message          string `json:"msg"`
	ErrorDescription string `json:"error_description"`
}

// SignUp implements identity.Provider.SignUp.
func (c *Client) SignUp(ctx context.Context, email, password string) (*identity.Account, error) {
	resp, err := c.post(ctx, "/auth/v1/signup", credentialsBody{Email: email, Password: password}, "")
	if err != nil {
		return nil, err
	}
	defer closeBody(resp, c.logger)

	switch {
	case resp.StatusCode == http.StatusOK:
		var acct accountBody
		if err := json.NewDecoder(resp.Body).Decode(&acct); err != nil {
			return nil, fmt.Errorf("%w: malformed signup response: %v", identity.ErrTransport, err)
		}
		if acct.ID == "" {
			return nil, fmt.Errorf("%w: signup response missing account id", identity.ErrTransport)
		}
		return &identity.Account{ID: acct.ID, Email: acct.Email}, nil
	case resp.StatusCode == http.StatusUnprocessableEntity,
		resp.StatusCode == http.StatusConflict,
		resp.StatusCode == http.StatusBadRequest:
		return nil, identity.ErrEmailTaken
	default:
		return nil, c.unexpectedStatus("signup", resp)
	}
}

// SignIn implements identity.Provider.SignIn.
func (c *Client) SignIn(ctx context.Context, email, password string) (*identity.Session, error) {
	resp, err := c.post(
		ctx,
		"/auth/v1/token?grant_type=password",
		credentialsBody{Email: email, Password: password},
		"",
	)
	if err != nil {
		return nil, err
	}
	defer closeBody(resp, c.logger)

	switch {
	case resp.StatusCode == http.StatusOK:
		var sess sessionBody
		if err := json.NewDecoder(resp.Body).Decode(&sess); err != nil {
			return nil, fmt.Errorf("%w: malformed token response: %v", identity.ErrTransport, err)
		}
		if sess.AccessToken == "" {
			return nil, fmt.Errorf("%w: token response missing access token", identity.ErrTransport)
		}
		return &identity.Session{
			AccessToken: sess.AccessToken,
			TokenType:   sess.TokenType,
			ExpiresIn:   sess.ExpiresIn,
		}, nil
	case resp.StatusCode == http.StatusBadRequest,
		resp.StatusCode == http.StatusUnauthorized:
		return nil, identity.ErrInvalidCredentials
	default:
		return nil, c.unexpectedStatus("token", resp)
	}
}

// ResolveToken implements identity.Provider.ResolveToken. The underlying GET
// is idempotent, so a transport-level failure is retried exactly once after
// a short backoff. Rejected tokens are never retried.
func (c *Client) ResolveToken(ctx context.Context, token string) (*identity.Account, error) {
	acct, err := c.getUser(ctx, token)
	if err == nil || !isTransport(err) {
		return acct, err
	}

	c.logger.DebugContext(ctx, "retrying token resolution after transport failure",
		slog.String("error", redact.Error(err)))

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", identity.ErrTransport, ctx.Err())
	case <-time.After(retryBackoff):
	}
	return c.getUser(ctx, token)
}

func (c *Client) getUser(ctx context.Context, token string) (*identity.Account, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", identity.ErrTransport, err)
	}
	c.setHeaders(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", identity.ErrTransport, err)
	}
	defer closeBody(resp, c.logger)

	switch resp.StatusCode {
	case http.StatusOK:
		var acct accountBody
		if err := json.NewDecoder(resp.Body).Decode(&acct); err != nil {
			return nil, fmt.Errorf("%w: malformed user response: %v", identity.ErrTransport, err)
		}
		if acct.ID == "" {
			return nil, identity.ErrTokenRejected
		}
		return &identity.Account{ID: acct.ID, Email: acct.Email}, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, identity.ErrTokenRejected
	case http.StatusNotFound:
		return nil, identity.ErrAccountNotFound
	default:
		return nil, c.unexpectedStatus("user", resp)
	}
}

func (c *Client) post(ctx context.Context, path string, body any, token string) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", identity.ErrTransport, err)
	}
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+path,
		bytes.NewReader(payload),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", identity.ErrTransport, err)
	}
	c.setHeaders(req, token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", identity.ErrTransport, err)
	}
	return resp, nil
}

func (c *Client) setHeaders(req *http.Request, token string) {
	req.Header.Set("apikey", c.apiKey)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// unexpectedStatus turns a 5xx or otherwise unhandled status into a
// transport error. The provider's body is logged redacted and never
// propagated verbatim.
func (c *Client) unexpectedStatus(op string, resp *http.Response) error {
	var detail errorBody
	if raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096)); err == nil {
		_ = json.Unmarshal(raw, &detail)
	}
	msg := detail.Message
	if msg == "" {
		msg = detail.ErrorDescription
	}
	c.logger.Warn("unexpected provider response",
		slog.String("operation", op),
		slog.Int("status", resp.StatusCode),
		slog.String("detail", redact.String(msg)))
	return fmt.Errorf("%w: %s returned status %d", identity.ErrTransport, op, resp.StatusCode)
}

func isTransport(err error) bool {
	return errors.Is(err, identity.ErrTransport)
}

func closeBody(resp *http.Response, logger *slog.Logger) {
	if err := resp.Body.Close(); err != nil {
		logger.Debug("failed to close response body", slog.String("error", err.Error()))
	}
}
