package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/harrylevesque/userdeck/internal/models"
	"github.com/harrylevesque/userdeck/internal/utils"
)

// RequestIDHeader carries a per-request UUID so client and server logs line up.
const RequestIDHeader = "X-Request-ID"

// Client talks to the users service.
type Client struct {
	baseURL string
	http    *http.Client
	log     *utils.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithLogger(l *utils.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New returns a client rooted at baseURL (e.g. http://127.0.0.1:3000).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     utils.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListUsers fetches the full record set with GET /users.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	resp, err := c.do(ctx, http.MethodGet, "/users", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var users []models.User
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

// UpdateUser persists f for user id with PUT /users/{id}. The response body
// is not inspected beyond the status code.
func (c *Client) UpdateUser(ctx context.Context, id int, f models.UserFields) error {
	body, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode user %d: %w", id, err)
	}
	resp, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// do sends the request and turns transport failures and non-2xx statuses
// into errors. On success the caller owns resp.Body.
func (c *Client) do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	reqID := uuid.NewString()
	req.Header.Set(RequestIDHeader, reqID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Info("request", zap.String("method", method), zap.String("path", path), zap.String("request_id", reqID))
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		c.log.Warn("non-2xx response",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", reqID),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", b),
		)
		return nil, fmt.Errorf("%s %s: %w", method, path, utils.NewStatusError(resp.StatusCode, http.StatusText(resp.StatusCode)))
	}
	return resp, nil
}
