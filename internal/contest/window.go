package contest

import "time"

// DefaultWindow is how far ahead a contest may start and still be announced
const DefaultWindow = 7 * 24 * time.Hour

// Window is an open time interval; both ends are excluded
type Window struct {
	From time.Time
	To   time.Time
}

// NextWindow returns the window (now, now+d)
func NextWindow(now time.Time, d time.Duration) Window {
	return Window{From: now, To: now.Add(d)}
}

// Contains reports whether t lies strictly inside the window
func (w Window) Contains(t time.Time) bool {
	return t.After(w.From) && t.Before(w.To)
}

// FilterWindow returns the contests whose start time lies inside w
func FilterWindow(contests []Contest, w Window) []Contest {
	filtered := make([]Contest, 0, len(contests))
	for _, c := range contests {
		if w.Contains(c.startTime) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
