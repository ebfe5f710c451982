package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pfrederiksen/contest-digest/internal/aggregator"
	"github.com/pfrederiksen/contest-digest/internal/config"
	"github.com/pfrederiksen/contest-digest/internal/contest"
	"github.com/pfrederiksen/contest-digest/internal/logger"
	"github.com/pfrederiksen/contest-digest/internal/metrics"
	"github.com/pfrederiksen/contest-digest/internal/notifier"
	"github.com/pfrederiksen/contest-digest/internal/scraper"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// Version is set at build time with -ldflags "-X .../internal/cli.Version=..."
var Version = "dev"

var (
	flagConfig  string
	flagDryRun  bool
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contest-digest",
		Short: "Post this week's programming contests to Slack",
		Long: `Collects upcoming contests from AtCoder and Codeforces, keeps the ones
starting within the next week and posts them to a Slack incoming webhook.
The webhook URL is read from SLACK_URL.`,
		RunE:          runSend,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file (or env: CONTEST_DIGEST_CONFIG)")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flagDryRun, "dry-run", false, "Print the Slack payload instead of posting it")

	cmd.AddCommand(newListCmd(), newScheduleCmd(), newVersionCmd())

	return cmd
}

// app holds what every command needs after configuration is loaded
type app struct {
	cfg *config.Config
	log *logger.Logger
}

func newApp(ctx context.Context, stderr io.Writer) (*app, error) {
	cfg, err := config.Load(ctx, flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if flagVerbose {
		level = logger.LevelDebug
	}

	log := logger.New(level, stderr)
	logger.SetDefault(log)

	return &app{cfg: cfg, log: log}, nil
}

// collect fetches every source and returns the contests inside the window
func (a *app) collect(ctx context.Context, log *logger.Logger, rec *metrics.Recorder) ([]contest.Contest, error) {
	agg := aggregator.New(scraper.Defaults(a.cfg),
		aggregator.WithLogger(log),
		aggregator.WithMetrics(rec),
		aggregator.WithWindow(a.cfg.Window()),
	)
	return agg.Collect(ctx)
}

// send runs one digest: collect, render, deliver. Nothing is posted unless
// every source succeeded.
func (a *app) send(ctx context.Context, out io.Writer, dryRun bool) error {
	log := a.log.With(logger.Fields{"run_id": uuid.NewString()})
	rec := metrics.NewRecorder()

	var n notifier.Notifier
	if dryRun {
		n = notifier.NewDryRunNotifier(out, nil)
	} else {
		// fail before any network work when there is nowhere to deliver
		if err := a.cfg.RequireWebhook(); err != nil {
			return err
		}
		sn, err := notifier.NewSlackNotifier(a.cfg.SlackURL,
			notifier.WithLogger(log),
			notifier.WithMetrics(rec),
			notifier.WithHTTPClient(&http.Client{Timeout: a.cfg.HTTPTimeout()}),
		)
		if err != nil {
			return fmt.Errorf("initializing notifier: %w", err)
		}
		n = sn
	}
	defer a.pushMetrics(ctx, log, rec)

	log.Debug("Starting run", logger.Fields{"dry_run": dryRun, "window": a.cfg.Window().String()})

	contests, err := a.collect(ctx, log, rec)
	if err != nil {
		return fmt.Errorf("collecting contests: %w", err)
	}

	if err := n.Notify(ctx, contests); err != nil {
		return fmt.Errorf("delivering digest: %w", err)
	}
	return nil
}

func (a *app) pushMetrics(ctx context.Context, log *logger.Logger, rec *metrics.Recorder) {
	if err := rec.Push(ctx, a.cfg.PushgatewayURL); err != nil {
		log.Warn("Metrics push failed", logger.Fields{"error": err.Error()})
	}
}

// runSend is the main command logic
func runSend(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	return a.send(cmd.Context(), cmd.OutOrStdout(), flagDryRun)
}

// Execute runs the CLI
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(ExitError)
	}
}
