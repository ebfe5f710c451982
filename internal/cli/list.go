package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/contest-digest/internal/contest"
	"github.com/pfrederiksen/contest-digest/internal/filter"
	"github.com/pfrederiksen/contest-digest/internal/logger"
	"github.com/pfrederiksen/contest-digest/internal/metrics"
)

var (
	flagFormat   string
	flagSort     string
	flagHost     string
	flagMatch    []string
	flagExclude  []string
	flagWeekends bool
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the contests starting within the window",
		Long: `Fetches every source and prints the contests that would be posted,
without sending anything to Slack.`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text, json or ics")
	cmd.Flags().StringVar(&flagSort, "sort", "date", "Sort order: date, host or name")
	cmd.Flags().StringVar(&flagHost, "host", "", "Only show contests from this host (e.g., AtCoder)")
	cmd.Flags().StringSliceVar(&flagMatch, "match", nil, "Only show contests whose name contains any of these")
	cmd.Flags().StringSliceVar(&flagExclude, "exclude", nil, "Hide contests whose name contains any of these")
	cmd.Flags().BoolVar(&flagWeekends, "weekends", false, "Only show contests starting on Saturday or Sunday (Tokyo time)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	// Validate format
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON && format != FormatICS {
		return fmt.Errorf("invalid format: %s (must be 'text', 'json' or 'ics')", flagFormat)
	}

	order := SortOrder(strings.ToLower(flagSort))
	if order != SortByDate && order != SortByHost && order != SortByName {
		return fmt.Errorf("invalid sort: %s (must be 'date', 'host' or 'name')", flagSort)
	}

	f := filter.NewFilter()
	f.Names = flagMatch
	f.Exclude = flagExclude
	f.WeekendsOnly = flagWeekends

	hosts := contest.Hosts()
	if flagHost != "" {
		host, err := contest.ParseHost(flagHost)
		if err != nil {
			return err
		}
		hosts = []contest.Host{host}
		f.Hosts = hosts
	}

	a, err := newApp(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	contests, err := a.collect(cmd.Context(), a.log, metrics.NewRecorder())
	if err != nil {
		return fmt.Errorf("collecting contests: %w", err)
	}

	if !f.IsEmpty() {
		a.log.Debug("Filtering contests", logger.Fields{"filter": f.String()})
	}
	contests = sortContests(f.Apply(contests), order)

	result := &OutputResult{
		CheckedAt:    time.Now().UTC(),
		Contests:     contests,
		ContestCount: len(contests),
		GroupByHost:  order == SortByHost,
	}
	for _, h := range hosts {
		result.Hosts = append(result.Hosts, h.String())
	}

	if err := WriteOutput(cmd.OutOrStdout(), result, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
