package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// PushoverEndpoint is the Pushover message API
const PushoverEndpoint = "https://api.pushover.net/1/messages.json"

// DefaultTimeout bounds a single Pushover request
const DefaultTimeout = 30 * time.Second

// Pushover sends messages through the Pushover API
type Pushover struct {
	token    string
	user     string
	endpoint string
	client   *http.Client
}

// PushoverOption configures a Pushover sender
type PushoverOption func(*Pushover)

// WithEndpoint overrides the API endpoint (useful for testing)
func WithEndpoint(endpoint string) PushoverOption {
	return func(p *Pushover) {
		p.endpoint = endpoint
	}
}

// WithHTTPClient sets a custom underlying HTTP client
func WithHTTPClient(client *http.Client) PushoverOption {
	return func(p *Pushover) {
		p.client = client
	}
}

// NewPushover creates a sender for the given application token and user key
func NewPushover(token, user string, opts ...PushoverOption) *Pushover {
	p := &Pushover{
		token:    token,
		user:     user,
		endpoint: PushoverEndpoint,
		client:   &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Send posts msg once. Only status 200 counts as delivered; the response body
// is not inspected and nothing is retried.
func (p *Pushover) Send(ctx context.Context, msg Message) (bool, error) {
	form := url.Values{
		"token":   {p.token},
		"user":    {p.user},
		"title":   {msg.Title},
		"message": {msg.Body},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to post to pushover: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return resp.StatusCode == http.StatusOK, nil
}

var _ Sender = (*Pushover)(nil)
