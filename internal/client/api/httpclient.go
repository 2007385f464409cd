package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mveldre/rentahouse/internal/client/models"
	"github.com/mveldre/rentahouse/internal/logging"
)

const (
	// DefaultTimeout bounds every request; the source had none, here it is
	// explicit and configurable.
	DefaultTimeout = 15 * time.Second

	// maxResponseSize caps how much of a response body is read.
	maxResponseSize = 10 * 1024 * 1024
)

// HTTPClient talks JSON over HTTP to a single base URL.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	tokens     CredentialStore
	log        logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates a client for the API rooted at baseURL
// (e.g. "http://localhost:3000/api").
func NewHTTPClient(baseURL string, tokens CredentialStore, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		tokens:     tokens,
		log:        log,
	}
}

// WithTimeout sets the overall request timeout.
func (c *HTTPClient) WithTimeout(timeout time.Duration) *HTTPClient {
	c.httpClient.Timeout = timeout
	return c
}

// errorResponse is the error shape the server emits on non-2xx statuses.
type errorResponse struct {
	Error string `json:"error"`
}

// do performs one API call. When tokenOverride is nil the current credential
// is read from the store; a non-nil override is used as-is (an empty override
// sends no Authorization header). A non-nil out receives the decoded 2xx body.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, tokenOverride *string, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	token := ""
	if tokenOverride != nil {
		token = *tokenOverride
	} else if t, ok := c.tokens.Get(ctx); ok {
		token = t
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	c.log.Debug(ctx, "request finished",
		"method", method, "path", path,
		"status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(resp.StatusCode, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}

// newError normalizes a non-2xx response into an *Error, extracting the
// server's "error" field when the body is parseable JSON.
func newError(status int, body []byte) error {
	var er errorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Error != "" {
		return &Error{Status: status, Message: er.Error}
	}
	return &Error{Status: status}
}

// Login authenticates by credentials and persists the returned token.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	payload := map[string]string{"email": email, "password": password}

	var result AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", payload, nil, &result); err != nil {
		return nil, err
	}

	if result.Token != "" {
		c.tokens.Set(ctx, result.Token)
	}
	return &result, nil
}

// Register creates a new account and persists the returned token. phone may
// be empty.
func (c *HTTPClient) Register(ctx context.Context, fullName, email, password, phone string) (*AuthResponse, error) {
	payload := map[string]string{
		"fullName": fullName,
		"email":    email,
		"password": password,
	}
	if phone != "" {
		payload["phone"] = phone
	}

	var result AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", payload, nil, &result); err != nil {
		return nil, err
	}

	if result.Token != "" {
		c.tokens.Set(ctx, result.Token)
	}
	return &result, nil
}

// GetMe fetches the account owning the current credential.
func (c *HTTPClient) GetMe(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetMeWithToken is GetMe with an explicit credential, bypassing the store.
// The session manager uses it to validate a restored token.
func (c *HTTPClient) GetMeWithToken(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &token, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListProperties fetches listings, optionally narrowed by filters serialized
// as query parameters (e.g. {"userId": "42"} -> /posts?userId=42).
func (c *HTTPClient) ListProperties(ctx context.Context, filters map[string]string) ([]models.Property, error) {
	path := "/posts"
	if len(filters) > 0 {
		values := url.Values{}
		for k, v := range filters {
			values.Set(k, v)
		}
		path += "?" + values.Encode()
	}

	var properties []models.Property
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// GetProperty fetches a single listing with its images and comments.
func (c *HTTPClient) GetProperty(ctx context.Context, id int64) (*models.Property, error) {
	var property models.Property
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/posts/%d", id), nil, nil, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

// CreateComment submits a rating comment on a listing.
func (c *HTTPClient) CreateComment(ctx context.Context, postID string, content string, rating int) error {
	payload := map[string]any{
		"postId":  postID,
		"content": content,
		"rating":  rating,
	}
	return c.do(ctx, http.MethodPost, "/commentforms", payload, nil, nil)
}

// CreateFeedback submits free-form feedback about the service.
func (c *HTTPClient) CreateFeedback(ctx context.Context, content string) error {
	payload := map[string]string{"content": content}
	return c.do(ctx, http.MethodPost, "/feedbackforms", payload, nil, nil)
}

// Logout discards the persisted credential. There is no remote logout
// endpoint; the bearer token simply stops being presented.
func (c *HTTPClient) Logout(ctx context.Context) error {
	c.tokens.Remove(ctx)
	return nil
}
