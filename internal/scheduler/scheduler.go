// Package scheduler runs the digest job on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/pfrederiksen/contest-digest/internal/logger"
)

// Job is one digest run
type Job func(ctx context.Context) error

// Scheduler triggers a Job on a five-field cron spec
type Scheduler struct {
	cron *cron.Cron
	job  Job
	loc  *time.Location
	log  *logger.Logger

	// ctx is handed to every scheduled run and canceled by Stop
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a Scheduler evaluating spec in loc. A nil loc means UTC.
func New(spec string, loc *time.Location, job Job, log *logger.Logger) (*Scheduler, error) {
	if job == nil {
		return nil, fmt.Errorf("job is required")
	}
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = logger.Default()
	}

	c := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		cron:   c,
		job:    job,
		loc:    loc,
		log:    log,
		ctx:    ctx,
		cancel: cancel,
	}

	if _, err := c.AddFunc(spec, s.runOnce); err != nil {
		cancel()
		return nil, fmt.Errorf("invalid cron spec %q: %w", spec, err)
	}

	return s, nil
}

// Start begins firing the job in the background
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("Scheduler started", logger.Fields{"next_run": s.Next().Format(time.RFC3339)})
}

// Stop halts the schedule, cancels a running job and waits for it to return
func (s *Scheduler) Stop() {
	s.cancel()

	<-s.cron.Stop().Done()
	s.log.Info("Scheduler stopped", nil)
}

// Next returns the next time the job will fire, or the zero time before Start
func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	if !entries[0].Next.IsZero() {
		return entries[0].Next
	}
	return entries[0].Schedule.Next(time.Now().In(s.loc))
}

// RunOnce runs the job immediately, outside the schedule
func (s *Scheduler) RunOnce(ctx context.Context) error {
	return s.job(ctx)
}

func (s *Scheduler) runOnce() {
	start := time.Now()
	if err := s.job(s.ctx); err != nil {
		// a failed week is reported and the schedule keeps going
		s.log.Error("Scheduled run failed", logger.Fields{
			"duration_ms": time.Since(start).Milliseconds(),
		}, err)
		return
	}
	s.log.Info("Scheduled run finished", logger.Fields{
		"duration_ms": time.Since(start).Milliseconds(),
	})
}
