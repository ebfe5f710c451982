package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pfrederiksen/contest-digest/internal/calendar"
	"github.com/pfrederiksen/contest-digest/internal/contest"
	"github.com/pfrederiksen/contest-digest/internal/slack"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatICS  OutputFormat = "ics"
)

// OutputResult contains data to be output
type OutputResult struct {
	CheckedAt    time.Time         `json:"checked_at"`
	Hosts        []string          `json:"hosts"`
	Contests     []contest.Contest `json:"contests"`
	ContestCount int               `json:"contest_count"`
	GroupByHost  bool              `json:"-"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	case FormatICS:
		_, err := io.WriteString(w, calendar.GenerateICS(result.Contests, result.CheckedAt))
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	if result.Contests == nil {
		result.Contests = []contest.Contest{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text with Tokyo start times
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	if result.ContestCount == 0 {
		fmt.Fprintln(w, "No contests found.")
		return nil
	}

	r := slack.NewRenderer()

	writeContest := func(indent string, c contest.Contest) {
		fmt.Fprintf(w, "%s%s  %s\n", indent, r.FormatTime(c.StartTime()), c.Name())
		if verbose {
			if url, ok := c.URL(); ok {
				fmt.Fprintf(w, "%s     URL: %s\n", indent, url)
			}
			fmt.Fprintf(w, "%s     Start: %s\n", indent, c.StartTime().Format(time.RFC3339))
		}
	}

	if result.GroupByHost {
		groups := 0
		for _, host := range contest.Hosts() {
			contests := contest.ByHost(result.Contests, host)
			if len(contests) == 0 {
				continue
			}
			groups++

			fmt.Fprintf(w, "\n%s (%d contests):\n", host, len(contests))
			for _, c := range contests {
				writeContest("  ", c)
			}
		}
		fmt.Fprintf(w, "\nTotal: %d contests across %d hosts\n", result.ContestCount, groups)
		return nil
	}

	for _, c := range result.Contests {
		fmt.Fprintf(w, "%-10s ", c.Host())
		writeContest("", c)
	}
	fmt.Fprintf(w, "\nTotal: %d contests\n", result.ContestCount)

	return nil
}
