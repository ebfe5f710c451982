package aggregator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pfrederiksen/contest-digest/internal/contest"
	"github.com/pfrederiksen/contest-digest/internal/logger"
	"github.com/pfrederiksen/contest-digest/internal/metrics"
	"github.com/pfrederiksen/contest-digest/internal/scraper"
)

// Aggregator merges the contests of several sources
type Aggregator struct {
	sources []scraper.Source
	window  time.Duration
	now     func() time.Time
	log     *logger.Logger
	metrics *metrics.Recorder
}

// Option configures an Aggregator
type Option func(*Aggregator)

// WithLogger sets the logger for per-source results
func WithLogger(l *logger.Logger) Option {
	return func(a *Aggregator) {
		if l != nil {
			a.log = l
		}
	}
}

// WithMetrics records fetch counts, durations and errors
func WithMetrics(m *metrics.Recorder) Option {
	return func(a *Aggregator) {
		a.metrics = m
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) {
		if now != nil {
			a.now = now
		}
	}
}

// WithWindow sets how far ahead contests are kept
func WithWindow(d time.Duration) Option {
	return func(a *Aggregator) {
		if d > 0 {
			a.window = d
		}
	}
}

// New creates an Aggregator over sources, in the order given
func New(sources []scraper.Source, opts ...Option) *Aggregator {
	a := &Aggregator{
		sources: sources,
		window:  contest.DefaultWindow,
		now:     time.Now,
		log:     logger.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// FetchAll fetches every source concurrently and concatenates the results in
// source order. The first failure cancels the remaining fetches.
func (a *Aggregator) FetchAll(ctx context.Context) ([]contest.Contest, error) {
	results := make([][]contest.Contest, len(a.sources))

	g, ctx := errgroup.WithContext(ctx)
	for i, src := range a.sources {
		g.Go(func() error {
			start := time.Now()
			contests, err := src.Fetch(ctx)
			elapsed := time.Since(start)

			// Canceled because another source already failed; that failure is the one reported
			if err != nil && ctx.Err() != nil && errors.Is(err, context.Canceled) {
				a.log.Debug("Source fetch canceled", logger.Fields{
					"host": src.Host().String(),
				})
				return fmt.Errorf("fetching %s: %w", src.Host(), err)
			}

			if a.metrics != nil {
				a.metrics.ObserveFetch(src.Host().String(), len(contests), elapsed, err)
			}
			if err != nil {
				a.log.Error("Source fetch failed", logger.Fields{
					"host": src.Host().String(),
				}, err)
				return fmt.Errorf("fetching %s: %w", src.Host(), err)
			}

			a.log.Debug("Source fetched", logger.Fields{
				"host":        src.Host().String(),
				"contests":    len(contests),
				"duration_ms": elapsed.Milliseconds(),
			})
			results[i] = contests
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []contest.Contest
	for _, contests := range results {
		all = append(all, contests...)
	}
	return all, nil
}

// Collect returns the contests starting strictly between now and now+window,
// ordered by start time. Contests with equal start times keep source order.
func (a *Aggregator) Collect(ctx context.Context) ([]contest.Contest, error) {
	all, err := a.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	window := contest.NextWindow(a.now(), a.window)
	selected := contest.SortByStartTime(contest.FilterWindow(all, window))

	if a.metrics != nil {
		a.metrics.SetSelected(len(selected))
	}
	a.log.Info("Contests collected", logger.Fields{
		"fetched":  len(all),
		"selected": len(selected),
		"from":     window.From.UTC().Format(time.RFC3339),
		"to":       window.To.UTC().Format(time.RFC3339),
	})
	return selected, nil
}
