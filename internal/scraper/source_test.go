package scraper

import (
	"errors"
	"testing"

	"github.com/pfrederiksen/contest-digest/internal/config"
	"github.com/pfrederiksen/contest-digest/internal/contest"
)

func TestDefaults(t *testing.T) {
	cfg := config.New()
	cfg.AtCoderURL = "http://mirror.local/atcoder"

	sources := Defaults(cfg)
	if len(sources) != 2 {
		t.Fatalf("Defaults() returned %d sources, want 2", len(sources))
	}
	if sources[0].Host() != contest.AtCoder || sources[1].Host() != contest.Codeforces {
		t.Errorf("Defaults() hosts = [%v %v], want [AtCoder Codeforces]", sources[0].Host(), sources[1].Host())
	}
	if got := sources[0].(*AtCoder).url; got != "http://mirror.local/atcoder" {
		t.Errorf("AtCoder url = %q, want override", got)
	}
	if got := sources[1].(*Codeforces).url; got != config.DefaultCodeforcesURL {
		t.Errorf("Codeforces url = %q, want %q", got, config.DefaultCodeforcesURL)
	}
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "row error",
			err:  &ParseError{Host: contest.AtCoder, Row: 2, Field: "name", Err: ErrMissingElement},
			want: "atcoder: row 2: name: missing element",
		},
		{
			name: "document error",
			err:  &ParseError{Host: contest.Codeforces, Row: -1, Field: "result", Err: ErrMissingElement},
			want: "codeforces: result: missing element",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !errors.Is(tt.err, ErrMissingElement) {
				t.Error("errors.Is(ParseError, ErrMissingElement) = false")
			}
		})
	}
}
