package notifier

import (
	"context"

	"github.com/pfrederiksen/contest-digest/internal/contest"
)

// Notifier defines the interface for delivering a contest digest
type Notifier interface {
	// Notify delivers one digest for the given contests
	Notify(ctx context.Context, contests []contest.Contest) error
}
