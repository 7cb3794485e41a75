// Package waitlist submits email signups to the launch waitlist webhook.
package waitlist

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// DefaultURL is the Google Apps Script endpoint that appends signups to the sheet.
const DefaultURL = "https://script.google.com/macros/s/AKfycbytBHPOSJdkXyGuKVjgA9LVyYLzoTUzcfTqISpuhCnVC5A9S47v4Nv3dYEdZA6P6w9P/exec"

var (
	// ErrEmailRequired is returned for an empty email address.
	ErrEmailRequired = eris.New("waitlist: please enter your email address")
	// ErrInvalidEmail is returned for an address that does not parse.
	ErrInvalidEmail = eris.New("waitlist: invalid email address")
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// Client posts signups to the waitlist webhook.
type Client struct {
	url  string
	http *http.Client
}

// NewClient creates a Client. An empty url uses DefaultURL.
func NewClient(url string, opts ...Option) *Client {
	if url == "" {
		url = DefaultURL
	}
	c := &Client{
		url:  url,
		http: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type joinRequest struct {
	Email string `json:"email"`
}

// Join adds email to the waitlist. The webhook's response body is not
// inspected; any completed exchange below HTTP 500 counts as accepted.
func (c *Client) Join(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}

	buf, err := json.Marshal(joinRequest{Email: email})
	if err != nil {
		return eris.Wrap(err, "waitlist: marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(buf))
	if err != nil {
		return eris.Wrap(err, "waitlist: create request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return eris.Wrap(err, "waitlist: failed to join waitlist")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusInternalServerError {
		return eris.Errorf("waitlist: failed to join waitlist: HTTP %d", resp.StatusCode)
	}

	zap.L().Info("waitlist: submission sent", zap.Int("status_code", resp.StatusCode))
	return nil
}
