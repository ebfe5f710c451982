package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	timeout         = 10 * time.Second
	maxErrorExcerpt = 1024
)

// WebhookError is returned when Slack rejects a message
type WebhookError struct {
	StatusCode int
	Body       string
}

func (e *WebhookError) Error() string {
	return fmt.Sprintf("slack webhook error (status %d): %s", e.StatusCode, e.Body)
}

// Client posts messages to an incoming webhook
type Client struct {
	webhookURL string
	httpClient *http.Client
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithHTTPClient sets the HTTP client used for delivery
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a webhook client
func NewClient(webhookURL string, opts ...ClientOption) (*Client, error) {
	if webhookURL == "" {
		return nil, fmt.Errorf("webhook URL is required")
	}

	c := &Client{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Post sends msg once. Failures are returned as is; there is no retry.
func (c *Client) Post(ctx context.Context, msg *Message) error {
	if msg == nil || len(msg.Blocks) == 0 {
		return fmt.Errorf("message has no blocks")
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshaling payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorExcerpt))
		return &WebhookError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	// Drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
