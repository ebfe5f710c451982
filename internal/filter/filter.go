// Package filter narrows a contest list for display.
//
// Criteria combine with AND; within one criterion any value may match:
//   - Hosts (exact host)
//   - Names (substring matching, case-insensitive)
//   - Exclude (substring matching, case-insensitive; a match removes the contest)
//   - Weekends only (Saturday/Sunday in the display zone)
//
// Example usage:
//
//	f := filter.NewFilter()
//	f.Names = []string{"Beginner"}
//	f.WeekendsOnly = true
//	filtered := f.Apply(contests)
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/contest-digest/internal/contest"
)

// Filter represents contest filtering criteria
type Filter struct {
	Hosts []contest.Host `json:"hosts,omitempty"`

	// Names keeps contests whose name contains any entry
	Names []string `json:"names,omitempty"`

	// Exclude drops contests whose name contains any entry
	Exclude []string `json:"exclude,omitempty"`

	WeekendsOnly bool `json:"weekends_only,omitempty"`

	// Location decides which day a start time falls on; nil means Tokyo
	Location *time.Location `json:"-"`
}

// NewFilter creates a new empty filter with no active criteria.
// The filter will match all contests until criteria are added.
func NewFilter() *Filter {
	return &Filter{
		Hosts:   []contest.Host{},
		Names:   []string{},
		Exclude: []string{},
	}
}

// IsEmpty checks if the filter has any active criteria
func (f *Filter) IsEmpty() bool {
	return len(f.Hosts) == 0 &&
		len(f.Names) == 0 &&
		len(f.Exclude) == 0 &&
		!f.WeekendsOnly
}

// Matches checks if a contest matches all active filter criteria.
// An empty filter matches all contests.
func (f *Filter) Matches(c contest.Contest) bool {
	if f.IsEmpty() {
		return true
	}

	if len(f.Hosts) > 0 {
		matched := false
		for _, h := range f.Hosts {
			if c.Host() == h {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if f.WeekendsOnly {
		loc := f.Location
		if loc == nil {
			loc = contest.DisplayLocation()
		}
		weekday := c.StartTime().In(loc).Weekday()
		if weekday != time.Saturday && weekday != time.Sunday {
			return false
		}
	}

	nameLower := strings.ToLower(c.Name())

	if len(f.Names) > 0 && !containsAny(nameLower, f.Names) {
		return false
	}

	if containsAny(nameLower, f.Exclude) {
		return false
	}

	return true
}

func containsAny(lower string, needles []string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(lower, strings.ToLower(n)) {
			return true
		}
	}
	return false
}

// Apply returns only the matching contests, preserving order.
// If the filter is empty, returns the original list unchanged.
func (f *Filter) Apply(contests []contest.Contest) []contest.Contest {
	if f.IsEmpty() {
		return contests
	}

	filtered := make([]contest.Contest, 0, len(contests))
	for _, c := range contests {
		if f.Matches(c) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// String returns a human-readable description of the active filter criteria.
// Format: "Hosts: AtCoder | Names: Beginner | Weekends only"
func (f *Filter) String() string {
	if f.IsEmpty() {
		return "No active filters"
	}

	var parts []string

	if len(f.Hosts) > 0 {
		names := make([]string, len(f.Hosts))
		for i, h := range f.Hosts {
			names[i] = h.String()
		}
		parts = append(parts, fmt.Sprintf("Hosts: %s", strings.Join(names, ", ")))
	}

	if len(f.Names) > 0 {
		parts = append(parts, fmt.Sprintf("Names: %s", strings.Join(f.Names, ", ")))
	}

	if len(f.Exclude) > 0 {
		parts = append(parts, fmt.Sprintf("Excluding: %s", strings.Join(f.Exclude, ", ")))
	}

	if f.WeekendsOnly {
		parts = append(parts, "Weekends only")
	}

	return strings.Join(parts, " | ")
}

// Clone creates a deep copy of the filter
func (f *Filter) Clone() *Filter {
	clone := &Filter{
		WeekendsOnly: f.WeekendsOnly,
		Location:     f.Location,
		Hosts:        append([]contest.Host{}, f.Hosts...),
		Names:        append([]string{}, f.Names...),
		Exclude:      append([]string{}, f.Exclude...),
	}
	return clone
}
