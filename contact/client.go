// Package contact submits the site's contact form to a third-party form
// relay and tracks the submission without blocking the frame loop.
package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Validation errors.
var (
	ErrMissingName    = errors.New("name is required")
	ErrMissingEmail   = errors.New("email is required")
	ErrInvalidEmail   = errors.New("email is not a valid address")
	ErrMissingMessage = errors.New("message is required")
)

// Payload is the form content posted to the relay.
type Payload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
	Message string `json:"message"`
}

// Validate checks required fields and the email address shape.
func (p Payload) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrMissingName
	}
	if strings.TrimSpace(p.Email) == "" {
		return ErrMissingEmail
	}
	if _, err := mail.ParseAddress(p.Email); err != nil {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(p.Message) == "" {
		return ErrMissingMessage
	}
	return nil
}

// Submitter sends a payload to the relay.
type Submitter interface {
	Submit(ctx context.Context, p Payload) error
}

// Client posts form payloads to a relay endpoint as JSON.
type Client struct {
	endpoint string
	client   *http.Client
}

// NewClient creates a relay client. A zero timeout selects 10 seconds.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Submit validates p and POSTs it to the relay. Each call carries a fresh
// submission ID in the Idempotency-Key header.
func (c *Client) Submit(ctx context.Context, p Payload) error {
	if err := p.Validate(); err != nil {
		return err
	}
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding contact payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending contact form: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("relay returned status %d", resp.StatusCode)
	}
	return nil
}
