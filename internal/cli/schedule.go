package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/contest-digest/internal/logger"
	"github.com/pfrederiksen/contest-digest/internal/scheduler"
)

var flagRunNow bool

func newScheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Post the digest repeatedly on cron_spec until interrupted",
		Long: `Runs the digest on the configured cron_spec (default "0 9 * * 1", every
Monday at 09:00) evaluated in the configured timezone. A failed run is logged
and the schedule continues. Stops on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: runSchedule,
	}

	cmd.Flags().BoolVar(&flagRunNow, "now", false, "Also run once immediately on start")

	return cmd
}

func runSchedule(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if !flagDryRun {
		if err := a.cfg.RequireWebhook(); err != nil {
			return err
		}
	}

	loc, err := a.cfg.Location()
	if err != nil {
		return err
	}

	dryRun := flagDryRun
	s, err := scheduler.New(a.cfg.CronSpec, loc, func(ctx context.Context) error {
		return a.send(ctx, cmd.OutOrStdout(), dryRun)
	}, a.log)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}

	if flagRunNow {
		if err := s.RunOnce(ctx); err != nil {
			a.log.Error("Initial run failed", nil, err)
		}
	}

	s.Start()
	a.log.Info("Waiting for schedule", logger.Fields{
		"cron_spec": a.cfg.CronSpec,
		"timezone":  a.cfg.Timezone,
	})

	<-ctx.Done()
	s.Stop()
	return nil
}
