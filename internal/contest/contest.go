package contest

import (
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// Contest is an upcoming contest announced by a host.
// Fields are unexported so a Contest cannot change once built.
type Contest struct {
	name      string
	startTime time.Time
	url       string
	hasURL    bool
	host      Host
}

// New creates a Contest. A nil url means the host has no page for the contest.
// The start time is normalized to UTC.
func New(name string, startTime time.Time, url *string, host Host) Contest {
	c := Contest{
		name:      name,
		startTime: startTime.UTC(),
		host:      host,
	}
	if url != nil {
		c.url = *url
		c.hasURL = true
	}
	return c
}

// Name returns the contest title as published by the host
func (c Contest) Name() string { return c.name }

// StartTime returns the start instant in UTC
func (c Contest) StartTime() time.Time { return c.startTime }

// Host returns the provider that announced the contest
func (c Contest) Host() Host { return c.host }

// URL returns the contest page and whether one exists
func (c Contest) URL() (string, bool) { return c.url, c.hasURL }

// ID returns a deterministic identifier built from host, name and start time
func (c Contest) ID() string {
	h := sha1.New()
	fmt.Fprintf(h, "%s|%s|%d", c.host, c.name, c.startTime.Unix())
	return fmt.Sprintf("%x", h.Sum(nil))
}

type contestJSON struct {
	Name      string    `json:"name"`
	StartTime time.Time `json:"start_time"`
	URL       *string   `json:"url,omitempty"`
	Host      string    `json:"host"`
}

// MarshalJSON implements json.Marshaler
func (c Contest) MarshalJSON() ([]byte, error) {
	out := contestJSON{
		Name:      c.name,
		StartTime: c.startTime,
		Host:      c.host.String(),
	}
	if c.hasURL {
		u := c.url
		out.URL = &u
	}
	return json.Marshal(out)
}

// SortByStartTime returns a copy of contests ordered by start time.
// Contests starting at the same instant keep their relative order.
func SortByStartTime(contests []Contest) []Contest {
	sorted := make([]Contest, len(contests))
	copy(sorted, contests)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].startTime.Before(sorted[j].startTime)
	})
	return sorted
}

// ByHost returns the contests announced by host, preserving input order
func ByHost(contests []Contest, host Host) []Contest {
	filtered := make([]Contest, 0)
	for _, c := range contests {
		if c.host == host {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
