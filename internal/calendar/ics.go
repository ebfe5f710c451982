// Package calendar exports contests as an iCalendar feed.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/contest-digest/internal/contest"
)

// DefaultDuration is used for DTEND since hosts do not publish a length
const DefaultDuration = 2 * time.Hour

// GenerateICS generates an iCalendar (.ics) document with one event per contest.
// now is written as DTSTAMP.
func GenerateICS(contests []contest.Contest, now time.Time) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//contest-digest//contest-digest//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")

	for _, c := range contests {
		writeEvent(&ics, c, now)
	}

	ics.WriteString("END:VCALENDAR\r\n")
	return ics.String()
}

func writeEvent(ics *strings.Builder, c contest.Contest, now time.Time) {
	ics.WriteString("BEGIN:VEVENT\r\n")

	// UID is stable across exports so calendar clients update instead of duplicating
	ics.WriteString(fmt.Sprintf("UID:%s@contest-digest\r\n", c.ID()))
	ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", formatICSTime(now)))
	ics.WriteString(fmt.Sprintf("DTSTART:%s\r\n", formatICSTime(c.StartTime())))
	ics.WriteString(fmt.Sprintf("DTEND:%s\r\n", formatICSTime(c.StartTime().Add(DefaultDuration))))
	ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(c.Name())))
	ics.WriteString(fmt.Sprintf("CATEGORIES:%s\r\n", escapeICS(c.Host().String())))

	if url, ok := c.URL(); ok {
		ics.WriteString(fmt.Sprintf("URL:%s\r\n", url))
		ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(fmt.Sprintf("%s\n%s", c.Host(), url))))
	} else {
		ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(c.Host().String())))
	}

	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("TRANSP:OPAQUE\r\n")
	ics.WriteString("END:VEVENT\r\n")
}

// formatICSTime formats a time.Time as an iCalendar datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters for iCalendar format
func escapeICS(s string) string {
	// RFC 5545 TEXT escaping
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
