// Package apiclient talks to the business REST API. Every request carries the
// bearer token found in its context.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/depositodopitty/pit/internal/logger"
	"github.com/depositodopitty/pit/internal/wire"
)

// Resource path segments exposed by the API.
const (
	ResourceUser               = "User"
	ResourceClient             = "Client"
	ResourceSupplier           = "Supplier"
	ResourceProduct            = "Product"
	ResourceBudget             = "Budget"
	ResourceAccountsPayable    = "AccountsPayable"
	ResourceAccountsReceivable = "AccountsReceivable"
)

const defaultTimeout = 15 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTimeout bounds every request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New builds a client for baseURL. Trailing slashes are removed.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		log:     logger.WithComponent("apiclient"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.baseURL == "" {
		c.log.Warn().Msg("API base URL is empty; set API_URL")
	}
	return c
}

// BaseURL returns the normalised base URL.
func (c *Client) BaseURL() string { return c.baseURL }

type tokenKey struct{}

// WithToken returns a context whose requests are sent with token as bearer.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFrom returns the bearer token stored by WithToken.
func TokenFrom(ctx context.Context) string {
	s, _ := ctx.Value(tokenKey{}).(string)
	return s
}

// do sends one request and returns the raw response body of a 2xx reply.
func (c *Client) do(ctx context.Context, method, path string, in any) ([]byte, error) {
	op := method + " " + path
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("%s: encode: %w", op, err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := TokenFrom(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("op", op).Msg("request failed")
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", op, err)
	}
	c.log.Debug().Str("op", op).Int("status", resp.StatusCode).Dur("took", time.Since(start)).Msg("api call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{Op: op, Status: resp.StatusCode, Message: errorMessage(data)}
	}
	return data, nil
}

// decodeInto unmarshals data into out unless the body is empty.
func decodeInto(op string, data []byte, out any) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: decode: %w", op, err)
	}
	return nil
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (wire.LoginResponse, error) {
	var out wire.LoginResponse
	data, err := c.do(ctx, http.MethodPost, "/User/login", wire.LoginRequest{Email: email, Password: password})
	if err != nil {
		return out, err
	}
	if err := decodeInto("POST /User/login", data, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Register creates a public account. Role is never sent.
func (c *Client) Register(ctx context.Context, req wire.RegisterRequest) error {
	_, err := c.do(ctx, http.MethodPost, "/auth/register", req)
	return err
}
