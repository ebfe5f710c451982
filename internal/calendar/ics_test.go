package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/pfrederiksen/contest-digest/internal/contest"
)

func TestGenerateICS(t *testing.T) {
	url := "https://atcoder.jp/contests/abc430"
	start := time.Date(2026, 10, 24, 12, 0, 0, 0, time.UTC)
	now := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	contests := []contest.Contest{
		contest.New("AtCoder Beginner Contest 430", start, &url, contest.AtCoder),
		contest.New("Codeforces Round 1000 (Div. 2)", start.Add(24*time.Hour), nil, contest.Codeforces),
	}

	ics := GenerateICS(contests, now)

	// Check required ICS fields
	requiredFields := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//contest-digest//contest-digest//EN",
		"UID:" + contests[0].ID() + "@contest-digest",
		"DTSTAMP:20261018T000000Z",
		"DTSTART:20261024T120000Z",
		"DTEND:20261024T140000Z",
		"SUMMARY:AtCoder Beginner Contest 430",
		"URL:https://atcoder.jp/contests/abc430",
		"CATEGORIES:AtCoder",
		"DTSTART:20261025T120000Z",
		"SUMMARY:Codeforces Round 1000 (Div. 2)",
		"DESCRIPTION:Codeforces\r\n",
		"END:VCALENDAR",
	}

	for _, field := range requiredFields {
		if !strings.Contains(ics, field) {
			t.Errorf("ICS missing required field: %s", field)
		}
	}

	if got := strings.Count(ics, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("ICS has %d events, want 2", got)
	}
	if got := strings.Count(ics, "URL:"); got != 1 {
		t.Errorf("ICS has %d URL lines, want 1 (Codeforces has no page)", got)
	}

	// Check that lines end with \r\n
	for _, line := range strings.Split(strings.TrimSuffix(ics, "\r\n"), "\r\n") {
		if strings.Contains(line, "\n") {
			t.Errorf("line %q contains a bare newline", line)
		}
	}
}

func TestGenerateICS_Empty(t *testing.T) {
	ics := GenerateICS(nil, time.Now())

	if strings.Contains(ics, "BEGIN:VEVENT") {
		t.Error("empty export should not contain events")
	}
	if !strings.HasPrefix(ics, "BEGIN:VCALENDAR\r\n") || !strings.HasSuffix(ics, "END:VCALENDAR\r\n") {
		t.Errorf("unexpected calendar envelope:\n%s", ics)
	}
}

func TestGenerateICS_SpecialCharacters(t *testing.T) {
	c := contest.New("ARC 210; Div. 1, Div. 2", time.Date(2026, 10, 25, 12, 0, 0, 0, time.UTC), nil, contest.AtCoder)

	ics := GenerateICS([]contest.Contest{c}, time.Now())

	if !strings.Contains(ics, "SUMMARY:ARC 210\\; Div. 1\\, Div. 2") {
		t.Errorf("special characters not escaped:\n%s", ics)
	}
}

func TestFormatICSTime(t *testing.T) {
	// JST input is written in UTC
	testTime := time.Date(2026, 3, 15, 23, 30, 0, 0, contest.DisplayLocation())
	formatted := formatICSTime(testTime)

	expected := "20260315T143000Z"
	if formatted != expected {
		t.Errorf("formatICSTime() = %q, want %q", formatted, expected)
	}
}

func TestEscapeICS(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Simple text", "Simple text"},
		{"Text with, comma", "Text with\\, comma"},
		{"Text with; semicolon", "Text with\\; semicolon"},
		{"Text with\\backslash", "Text with\\\\backslash"},
		{"Text with\nnewline", "Text with\\nnewline"},
		{"All, special; chars\\\n", "All\\, special\\; chars\\\\\\n"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := escapeICS(tt.input)
			if got != tt.expected {
				t.Errorf("escapeICS(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
