package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pfrederiksen/contest-digest/internal/config"
	"github.com/pfrederiksen/contest-digest/internal/contest"
)

// codeforcesResponse mirrors the contest.list envelope.
// Pointers distinguish a missing field from a zero value.
type codeforcesResponse struct {
	Status  string               `json:"status"`
	Comment string               `json:"comment"`
	Result  *[]codeforcesContest `json:"result"`
}

type codeforcesContest struct {
	Name             *string `json:"name"`
	StartTimeSeconds *int64  `json:"startTimeSeconds"`
}

// Codeforces reads upcoming contests from the Codeforces API.
// Codeforces contests carry no URL.
type Codeforces struct {
	endpoint
}

// NewCodeforces creates a Codeforces adapter
func NewCodeforces(opts ...Option) *Codeforces {
	return &Codeforces{endpoint: newEndpoint(config.DefaultCodeforcesURL, opts)}
}

// Host implements Source
func (c *Codeforces) Host() contest.Host {
	return contest.Codeforces
}

// Fetch implements Source
func (c *Codeforces) Fetch(ctx context.Context) ([]contest.Contest, error) {
	resp, err := c.get(ctx, "application/json")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return parseCodeforces(io.LimitReader(resp.Body, maxResponseBytes))
}

func parseCodeforces(r io.Reader) ([]contest.Contest, error) {
	var payload codeforcesResponse
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, &ParseError{Host: contest.Codeforces, Row: -1, Field: "body", Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}

	// The API reports failures in-band with status FAILED and a comment
	if payload.Status != "" && payload.Status != "OK" {
		return nil, fmt.Errorf("codeforces: status %s: %s", payload.Status, payload.Comment)
	}
	if payload.Result == nil {
		return nil, &ParseError{Host: contest.Codeforces, Row: -1, Field: "result", Err: ErrMissingElement}
	}

	contests := make([]contest.Contest, 0, len(*payload.Result))
	for i, item := range *payload.Result {
		if item.Name == nil {
			return nil, &ParseError{Host: contest.Codeforces, Row: i, Field: "name", Err: ErrMissingElement}
		}
		if item.StartTimeSeconds == nil {
			return nil, &ParseError{Host: contest.Codeforces, Row: i, Field: "startTimeSeconds", Err: ErrMissingElement}
		}

		start := time.Unix(*item.StartTimeSeconds, 0).UTC()
		contests = append(contests, contest.New(*item.Name, start, nil, contest.Codeforces))
	}

	return contest.SortByStartTime(contests), nil
}
