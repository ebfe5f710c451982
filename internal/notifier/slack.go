package notifier

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pfrederiksen/contest-digest/internal/contest"
	"github.com/pfrederiksen/contest-digest/internal/logger"
	"github.com/pfrederiksen/contest-digest/internal/metrics"
	"github.com/pfrederiksen/contest-digest/internal/slack"
)

// poster is satisfied by *slack.Client
type poster interface {
	Post(ctx context.Context, msg *slack.Message) error
}

// SlackNotifier posts the digest to a Slack incoming webhook
type SlackNotifier struct {
	renderer *slack.Renderer
	client   poster
	log      *logger.Logger
	metrics  *metrics.Recorder

	// clientOpts are applied when NewSlackNotifier builds the webhook client
	clientOpts []slack.ClientOption
}

// SlackOption configures a SlackNotifier
type SlackOption func(*SlackNotifier)

// WithRenderer replaces the default Tokyo-time renderer
func WithRenderer(r *slack.Renderer) SlackOption {
	return func(n *SlackNotifier) {
		if r != nil {
			n.renderer = r
		}
	}
}

// WithLogger sets the logger used for delivery events
func WithLogger(l *logger.Logger) SlackOption {
	return func(n *SlackNotifier) {
		if l != nil {
			n.log = l
		}
	}
}

// WithMetrics records each delivery attempt
func WithMetrics(m *metrics.Recorder) SlackOption {
	return func(n *SlackNotifier) {
		n.metrics = m
	}
}

// WithHTTPClient sets the HTTP client used to post to the webhook
func WithHTTPClient(hc *http.Client) SlackOption {
	return func(n *SlackNotifier) {
		n.clientOpts = append(n.clientOpts, slack.WithHTTPClient(hc))
	}
}

// NewSlackNotifier creates a notifier posting to webhookURL
func NewSlackNotifier(webhookURL string, opts ...SlackOption) (*SlackNotifier, error) {
	n := newSlackNotifier(nil, opts...)

	client, err := slack.NewClient(webhookURL, n.clientOpts...)
	if err != nil {
		return nil, err
	}
	n.client = client
	return n, nil
}

func newSlackNotifier(client poster, opts ...SlackOption) *SlackNotifier {
	n := &SlackNotifier{
		renderer: slack.NewRenderer(),
		client:   client,
		log:      logger.Default(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Notify renders the contests and posts them as one message
func (n *SlackNotifier) Notify(ctx context.Context, contests []contest.Contest) error {
	msg := n.renderer.Render(contests)

	err := n.client.Post(ctx, msg)
	if n.metrics != nil {
		n.metrics.ObserveDelivery(err)
	}
	if err != nil {
		return fmt.Errorf("failed to post digest: %w", err)
	}

	n.log.Info("Digest posted to Slack", logger.Fields{
		"contests": len(contests),
		"blocks":   len(msg.Blocks),
	})
	return nil
}
