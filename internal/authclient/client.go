// Package authclient talks to the external authentication/profile service:
// bearer-token validation (fronted by a TTL cache) and profile updates.
package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/devmishra/aibot-backend/internal/logging"
)

// Validation failures. Transport failures and rejected tokens are distinct
// so logs can tell an outage from a bad credential.
var (
	ErrMissingAuth  = errors.New("authorization header missing")
	ErrInvalidToken = errors.New("invalid token")
	ErrUnreachable  = errors.New("auth service unreachable")
)

// Profile is the user payload returned by the auth service for a valid
// token.
type Profile struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Avatar   string `json:"avatar"`
	User     struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	} `json:"user"`
}

// Username returns the nested username, or "Unknown" when the auth service
// omitted it.
func (p *Profile) Username() string {
	if p.User.Username == "" {
		return "Unknown"
	}
	return p.User.Username
}

// UpdateError is a rejected or failed profile update. Unreachable
// distinguishes transport failure from an update the service refused.
type UpdateError struct {
	Reason      string
	Unreachable bool
}

func (e *UpdateError) Error() string { return e.Reason }

// Client is the auth service client.
type Client struct {
	validateURL string
	updateURL   string
	httpClient  *http.Client
	cache       *tokenCache
	log         *logging.Logger
}

// New creates an auth client. Validation results are cached per token for
// ttl; entries older than that are refreshed synchronously on next use.
func New(validateURL, updateURL string, timeout, ttl time.Duration, log *logging.Logger) *Client {
	return &Client{
		validateURL: strings.TrimSuffix(validateURL, "/") + "/",
		updateURL:   strings.TrimSuffix(updateURL, "/") + "/",
		httpClient:  &http.Client{Timeout: timeout},
		cache:       newTokenCache(ttl),
		log:         log,
	}
}

// ParseBearer extracts the raw token from an Authorization header value.
func ParseBearer(header string) (string, bool) {
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(header, "Bearer "), true
}

// Validate checks the token against the auth service, consulting the cache
// first. Returns the user profile for a valid token.
func (c *Client) Validate(ctx context.Context, token string) (*Profile, error) {
	if token == "" {
		return nil, ErrMissingAuth
	}

	if p, ok := c.cache.get(token); ok {
		return p, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.validateURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build validate request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Msg("auth service unreachable or timed out")
		return nil, ErrUnreachable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrInvalidToken
	}

	var p Profile
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}

	c.cache.put(token, &p)
	return &p, nil
}

// UpdateProfile asks the auth service to set one profile field. A non-200
// response surfaces the service's error text verbatim.
func (c *Client) UpdateProfile(ctx context.Context, token, field, value string) error {
	payload, err := json.Marshal(map[string]string{field: value})
	if err != nil {
		return fmt.Errorf("marshal update payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.updateURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build update request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("field", field).Msg("profile update request failed")
		return &UpdateError{Reason: "Profile service is unreachable.", Unreachable: true}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		reason := strings.TrimSpace(string(body))
		if reason == "" {
			reason = "Profile update failed."
		}
		return &UpdateError{Reason: reason}
	}

	return nil
}
