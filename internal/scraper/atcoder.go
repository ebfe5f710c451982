package scraper

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"github.com/pfrederiksen/contest-digest/internal/config"
	"github.com/pfrederiksen/contest-digest/internal/contest"
)

const (
	atcoderOrigin = "https://atcoder.jp"

	// AtCoder prints times as "2026-10-24 21:00:00+0900"
	atcoderTimeLayout   = "2006-01-02 15:04:05"
	atcoderOffsetSuffix = len("+0900")
)

// atcoderSchema lists every selector the adapter depends on.
// A change to any of these on atcoder.jp should fail loudly.
var atcoderSchema = struct {
	table string
	rows  string
	date  string
	name  string
}{
	table: "#contest-table-upcoming",
	rows:  "#contest-table-upcoming > div > table > tbody > tr",
	date:  "td:nth-child(1) > small > a > time",
	name:  "td:nth-child(2) > small > a",
}

// AtCoder scrapes upcoming contests from the AtCoder home page
type AtCoder struct {
	endpoint
}

// NewAtCoder creates an AtCoder adapter
func NewAtCoder(opts ...Option) *AtCoder {
	return &AtCoder{endpoint: newEndpoint(config.DefaultAtCoderURL, opts)}
}

// Host implements Source
func (a *AtCoder) Host() contest.Host {
	return contest.AtCoder
}

// Fetch implements Source
func (a *AtCoder) Fetch(ctx context.Context) ([]contest.Contest, error) {
	resp, err := a.get(ctx, "text/html")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := charset.NewReader(io.LimitReader(resp.Body, maxResponseBytes), resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("decoding page: %w", err)
	}

	return parseAtCoder(body)
}

// parseAtCoder extracts contests from the home page HTML
func parseAtCoder(r io.Reader) ([]contest.Contest, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	if doc.Find(atcoderSchema.table).Length() == 0 {
		return nil, &ParseError{Host: contest.AtCoder, Row: -1, Field: "upcoming table", Err: ErrMissingElement}
	}

	rows := doc.Find(atcoderSchema.rows)
	contests := make([]contest.Contest, 0, rows.Length())

	var rowErr error
	rows.EachWithBreak(func(i int, row *goquery.Selection) bool {
		c, err := parseAtCoderRow(i, row)
		if err != nil {
			rowErr = err
			return false
		}
		contests = append(contests, c)
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	return contest.SortByStartTime(contests), nil
}

func parseAtCoderRow(i int, row *goquery.Selection) (contest.Contest, error) {
	fail := func(field string, err error) (contest.Contest, error) {
		return contest.Contest{}, &ParseError{Host: contest.AtCoder, Row: i, Field: field, Err: err}
	}

	timeSel := row.Find(atcoderSchema.date).First()
	if timeSel.Length() == 0 {
		return fail("start time", ErrMissingElement)
	}
	nameSel := row.Find(atcoderSchema.name).First()
	if nameSel.Length() == 0 {
		return fail("name", ErrMissingElement)
	}
	path, ok := nameSel.Attr("href")
	if !ok {
		return fail("link", ErrMissingElement)
	}

	start, err := parseAtCoderTime(timeSel.Text())
	if err != nil {
		return fail("start time", err)
	}

	url := atcoderOrigin + path
	name := strings.TrimSpace(nameSel.Text())
	return contest.New(name, start, &url, contest.AtCoder), nil
}

// parseAtCoderTime drops the fixed-width offset suffix and reads the rest as Tokyo time
func parseAtCoderTime(text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	if len(text) <= atcoderOffsetSuffix {
		return time.Time{}, fmt.Errorf("%w: time %q", ErrMalformed, text)
	}

	local, err := time.ParseInLocation(atcoderTimeLayout, text[:len(text)-atcoderOffsetSuffix], contest.DisplayLocation())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: time %q: %v", ErrMalformed, text, err)
	}
	return local.UTC(), nil
}
