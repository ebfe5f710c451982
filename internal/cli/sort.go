package cli

import (
	"sort"
	"strings"

	"github.com/pfrederiksen/contest-digest/internal/contest"
)

// SortOrder represents the available sorting options
type SortOrder string

const (
	SortByDate SortOrder = "date"
	SortByHost SortOrder = "host"
	SortByName SortOrder = "name"
)

// sortContests returns the contests ordered by sortOrder.
// Every order falls back to start time, then to the input order.
func sortContests(contests []contest.Contest, sortOrder SortOrder) []contest.Contest {
	sorted := contest.SortByStartTime(contests)

	switch sortOrder {
	case SortByHost:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Host() < sorted[j].Host()
		})
	case SortByName:
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Name()) < strings.ToLower(sorted[j].Name())
		})
	}
	return sorted
}
