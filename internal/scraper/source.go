package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pfrederiksen/contest-digest/internal/config"
	"github.com/pfrederiksen/contest-digest/internal/contest"
)

var (
	// ErrStatus is returned when a host answers with a non-2xx status
	ErrStatus = errors.New("unexpected status code")

	// ErrMissingElement means an expected element or field is absent
	ErrMissingElement = errors.New("missing element")

	// ErrMalformed means a value was present but could not be parsed
	ErrMalformed = errors.New("malformed value")
)

// Source fetches the upcoming contests of one host
type Source interface {
	// Host returns the host every fetched contest belongs to
	Host() contest.Host

	// Fetch returns the host's contests ordered by start time
	Fetch(ctx context.Context) ([]contest.Contest, error)
}

// ParseError reports which part of a host's response could not be understood
type ParseError struct {
	Host  contest.Host
	Row   int // -1 when the error is not tied to a row
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	host := strings.ToLower(e.Host.String())
	if e.Row < 0 {
		return fmt.Sprintf("%s: %s: %v", host, e.Field, e.Err)
	}
	return fmt.Sprintf("%s: row %d: %s: %v", host, e.Row, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Defaults returns the adapters for every host that has one, in display order
func Defaults(cfg *config.Config) []Source {
	client := NewHTTPClient(cfg.HTTPTimeout())
	return []Source{
		NewAtCoder(
			WithHTTPClient(client),
			WithURL(cfg.AtCoderURL),
			WithUserAgent(cfg.UserAgent),
		),
		NewCodeforces(
			WithHTTPClient(client),
			WithURL(cfg.CodeforcesURL),
			WithUserAgent(cfg.UserAgent),
		),
	}
}

// endpoint is the request side shared by every adapter
type endpoint struct {
	client    *http.Client
	url       string
	userAgent string
}

// Option configures an adapter
type Option func(*endpoint)

// WithHTTPClient sets the client used for requests
func WithHTTPClient(client *http.Client) Option {
	return func(e *endpoint) {
		if client != nil {
			e.client = client
		}
	}
}

// WithURL overrides the adapter's endpoint
func WithURL(url string) Option {
	return func(e *endpoint) {
		if url != "" {
			e.url = url
		}
	}
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(ua string) Option {
	return func(e *endpoint) {
		if ua != "" {
			e.userAgent = ua
		}
	}
}

func newEndpoint(url string, opts []Option) endpoint {
	e := endpoint{
		url:       url,
		userAgent: config.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(&e)
	}
	if e.client == nil {
		e.client = NewHTTPClient(config.DefaultHTTPTimeoutSeconds * time.Second)
	}
	return e
}

// get performs the GET request. The caller closes the body.
func (e endpoint) get(ctx context.Context, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", e.userAgent)
	req.Header.Set("Accept", accept)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", e.url, err)
	}

	if resp.StatusCode/100 != 2 {
		defer resp.Body.Close()
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorExcerpt))
		return nil, fmt.Errorf("%w: %d: %s", ErrStatus, resp.StatusCode, strings.TrimSpace(string(excerpt)))
	}
	return resp, nil
}
