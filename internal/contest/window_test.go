package contest

import (
	"testing"
	"time"
)

func TestWindow_Contains(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	w := NextWindow(now, DefaultWindow)

	tests := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{"already started", now.Add(-time.Minute), false},
		{"exactly now", now, false},
		{"one second from now", now.Add(time.Second), true},
		{"six days 23 hours", now.Add(6*24*time.Hour + 23*time.Hour), true},
		{"exactly seven days", now.Add(7 * 24 * time.Hour), false},
		{"seven days and one second", now.Add(7*24*time.Hour + time.Second), false},
		{"next month", now.AddDate(0, 1, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.Contains(tt.start); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.start, got, tt.want)
			}
		})
	}
}

func TestFilterWindow(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	contests := []Contest{
		New("past", now.Add(-time.Hour), nil, AtCoder),
		New("soon", now.Add(time.Hour), nil, AtCoder),
		New("edge-in", now.Add(6*24*time.Hour+23*time.Hour), nil, Codeforces),
		New("edge-out", now.Add(7*24*time.Hour+time.Second), nil, Codeforces),
	}

	got := FilterWindow(contests, NextWindow(now, DefaultWindow))

	if len(got) != 2 {
		t.Fatalf("FilterWindow() returned %d contests, want 2", len(got))
	}
	if got[0].Name() != "soon" || got[1].Name() != "edge-in" {
		t.Errorf("FilterWindow() = [%s %s], want [soon edge-in]", got[0].Name(), got[1].Name())
	}
	if len(contests) != 4 {
		t.Error("FilterWindow() modified its input")
	}
}

func TestDisplayLocation(t *testing.T) {
	loc := DisplayLocation()
	if loc.String() != TokyoZone {
		t.Errorf("DisplayLocation() = %s, want %s", loc, TokyoZone)
	}

	// Tokyo has no DST, so the offset is +09:00 all year
	for _, month := range []time.Month{time.January, time.July} {
		_, offset := time.Date(2026, month, 1, 0, 0, 0, 0, loc).Zone()
		if offset != 9*60*60 {
			t.Errorf("offset in %s = %d, want %d", month, offset, 9*60*60)
		}
	}
}
