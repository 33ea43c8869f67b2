package zoom

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/oauth2"

	"github.com/cloudeagle/zoomctl/internal/instrumentation"
	"github.com/cloudeagle/zoomctl/internal/logging"
)

// Default Zoom endpoints.
const (
	DefaultAuthURL    = "https://zoom.us/oauth/authorize"
	DefaultTokenURL   = "https://zoom.us/oauth/token"
	DefaultAPIBaseURL = "https://api.zoom.us/v2"
)

// ConnectTimeout bounds establishing the TCP connection to Zoom.
const ConnectTimeout = 30 * time.Second

// Client talks to the Zoom OAuth and REST endpoints on behalf of one app.
type Client struct {
	oauth      oauth2.Config
	apiBaseURL string
	httpClient *http.Client
	logger     logging.Logger
	metrics    *instrumentation.Metrics

	accessToken string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for the token exchange and as the
// base transport for API calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithAuthURL overrides the authorization endpoint.
func WithAuthURL(u string) Option {
	return func(c *Client) { c.oauth.Endpoint.AuthURL = u }
}

// WithTokenURL overrides the token endpoint.
func WithTokenURL(u string) Option {
	return func(c *Client) { c.oauth.Endpoint.TokenURL = u }
}

// WithAPIBaseURL overrides the REST API base URL (no trailing slash).
func WithAPIBaseURL(u string) Option {
	return func(c *Client) { c.apiBaseURL = u }
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics sets the metrics recorder. A nil recorder records nothing.
func WithMetrics(m *instrumentation.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// New creates a Client for the given app credentials.
func New(clientID, clientSecret string, opts ...Option) *Client {
	c := &Client{
		oauth: oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint: oauth2.Endpoint{
				AuthURL:   DefaultAuthURL,
				TokenURL:  DefaultTokenURL,
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		apiBaseURL: DefaultAPIBaseURL,
		httpClient: newHTTPClient(),
		logger:     logging.DefaultLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func newHTTPClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{Timeout: ConnectTimeout}).DialContext
	return &http.Client{Transport: transport}
}

// AuthCodeURL returns the URL the user opens to authorize the app. The state
// parameter is only included when non-empty.
func (c *Client) AuthCodeURL(redirectURI, state string) string {
	cfg := c.oauth
	cfg.RedirectURL = redirectURI
	return cfg.AuthCodeURL(state)
}

// Exchange trades an authorization code for an access token. On success the
// token is stored on the client and used by every subsequent call. On failure
// the stored token is left unchanged.
func (c *Client) Exchange(ctx context.Context, code, redirectURI string) (*TokenState, error) {
	cfg := c.oauth
	cfg.RedirectURL = redirectURI

	ctx, span := instrumentation.StartZoomAPISpan(ctx, "token_exchange")
	defer span.End()

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	c.logger.Debug("exchanging authorization code", logging.Operation("token_exchange"), logging.Endpoint(cfg.Endpoint.TokenURL))

	tok, err := cfg.Exchange(ctx, code)
	if err != nil {
		c.metrics.RecordOAuthExchange(ctx, instrumentation.OAuthResultFailure)
		instrumentation.SetSpanError(span, err)

		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			instrumentation.SetSpanStatusCode(span, retrieveErr.Response.StatusCode)
			c.logger.Warn("token exchange rejected",
				logging.Operation("token_exchange"),
				logging.Status(logging.StatusError),
				"status_code", retrieveErr.Response.StatusCode)
			return nil, &AuthExchangeError{
				StatusCode: retrieveErr.Response.StatusCode,
				Body:       string(retrieveErr.Body),
				Err:        err,
			}
		}
		c.logger.Warn("token exchange failed", logging.Operation("token_exchange"), logging.Err(err))
		return nil, fmt.Errorf("token exchange request failed: %w", err)
	}

	state := &TokenState{
		AccessToken:  tok.AccessToken,
		TokenType:    tok.TokenType,
		RefreshToken: tok.RefreshToken,
		ExpiresIn:    expiresIn(tok),
	}
	if scope, ok := tok.Extra("scope").(string); ok {
		state.Scope = scope
	}

	c.accessToken = tok.AccessToken

	c.metrics.RecordOAuthExchange(ctx, instrumentation.OAuthResultSuccess)
	instrumentation.SetSpanSuccess(span)
	c.logger.Info("token exchange succeeded",
		logging.Operation("token_exchange"),
		logging.Status(logging.StatusSuccess),
		logging.Token(tok.AccessToken))

	return state, nil
}

// expiresIn reads the raw expires_in value, falling back to the computed
// expiry when the field is absent or not numeric.
func expiresIn(tok *oauth2.Token) int64 {
	switch v := tok.Extra("expires_in").(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
	case string:
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	if tok.ExpiresIn > 0 {
		return tok.ExpiresIn
	}
	if !tok.Expiry.IsZero() {
		return int64(time.Until(tok.Expiry).Round(time.Second).Seconds())
	}
	return 0
}

// SetAccessToken stores a token obtained out of band, bypassing Exchange.
func (c *Client) SetAccessToken(token string) {
	c.accessToken = token
}

// AccessToken returns the stored access token, or "" when none is set.
func (c *Client) AccessToken() string {
	return c.accessToken
}

// HasAccessToken reports whether a non-empty access token is set.
func (c *Client) HasAccessToken() bool {
	return c.accessToken != ""
}

// get issues an authenticated GET against an absolute URL and returns the
// raw body of a 200 response.
func (c *Client) get(ctx context.Context, operation, rawURL string) ([]byte, error) {
	if c.accessToken == "" {
		return nil, ErrNotAuthenticated
	}

	ctx, span := instrumentation.StartZoomAPISpan(ctx, operation)
	defer span.End()

	start := time.Now()
	statusCode := 0
	defer func() {
		c.metrics.RecordZoomAPIOperation(ctx, operation, statusCode, time.Since(start))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		instrumentation.SetSpanError(span, err)
		return nil, fmt.Errorf("failed to build %s request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("zoom api request", logging.Operation(operation), logging.Endpoint(rawURL))

	resp, err := c.bearerClient().Do(req)
	if err != nil {
		instrumentation.SetSpanError(span, err)
		c.logger.Error("zoom api request failed", logging.Operation(operation), logging.Err(err))
		return nil, fmt.Errorf("zoom %s request failed: %w", operation, err)
	}
	defer resp.Body.Close()

	statusCode = resp.StatusCode
	instrumentation.SetSpanStatusCode(span, statusCode)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		instrumentation.SetSpanError(span, err)
		return nil, fmt.Errorf("failed to read %s response: %w", operation, err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIRequestError{Operation: operation, StatusCode: resp.StatusCode, Body: string(body)}
		instrumentation.SetSpanError(span, apiErr)
		c.logger.Warn("zoom api returned error status",
			logging.Operation(operation),
			logging.Status(logging.StatusError),
			"status_code", resp.StatusCode)
		return nil, apiErr
	}

	instrumentation.SetSpanSuccess(span)
	return body, nil
}

// getJSON performs get and decodes the body into out. Unknown fields are ignored.
func (c *Client) getJSON(ctx context.Context, operation, rawURL string, out interface{}) error {
	body, err := c.get(ctx, operation, rawURL)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", operation, err)
	}
	return nil
}

// bearerClient wraps the configured HTTP client so every request carries
// "Authorization: Bearer <token>".
func (c *Client) bearerClient() *http.Client {
	return &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{
				AccessToken: c.accessToken,
				TokenType:   "Bearer",
			}),
			Base: c.httpClient.Transport,
		},
		Timeout: c.httpClient.Timeout,
	}
}
