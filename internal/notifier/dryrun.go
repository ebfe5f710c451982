package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pfrederiksen/contest-digest/internal/contest"
	"github.com/pfrederiksen/contest-digest/internal/slack"
)

// DryRunNotifier prints the payload that would be posted without sending it
type DryRunNotifier struct {
	out      io.Writer
	renderer *slack.Renderer
}

// NewDryRunNotifier creates a dry-run notifier writing to out
func NewDryRunNotifier(out io.Writer, renderer *slack.Renderer) *DryRunNotifier {
	if renderer == nil {
		renderer = slack.NewRenderer()
	}
	return &DryRunNotifier{out: out, renderer: renderer}
}

// Notify writes the rendered message as indented JSON
func (n *DryRunNotifier) Notify(_ context.Context, contests []contest.Contest) error {
	data, err := json.MarshalIndent(n.renderer.Render(contests), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}
	if _, err := fmt.Fprintln(n.out, string(data)); err != nil {
		return fmt.Errorf("failed to write payload: %w", err)
	}
	return nil
}
