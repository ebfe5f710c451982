package slack

import (
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/contest-digest/internal/contest"
)

const (
	DefaultTitle    = ":deployparrot: 今週の競プロ :deployparrot:"
	DefaultFallback = "今週の競プロ"

	startsPhrase = "開始"
	timeLayout   = "01/02 (Mon) 15:04"
)

// weekdays maps time.Weekday to its single-character Japanese name
var weekdays = [7]string{
	time.Sunday:    "日",
	time.Monday:    "月",
	time.Tuesday:   "火",
	time.Wednesday: "水",
	time.Thursday:  "木",
	time.Friday:    "金",
	time.Saturday:  "土",
}

var mrkdwnEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Renderer turns contests into a Message
type Renderer struct {
	loc      *time.Location
	title    string
	fallback string
}

// RendererOption configures a Renderer
type RendererOption func(*Renderer)

// WithLocation sets the zone start times are shown in
func WithLocation(loc *time.Location) RendererOption {
	return func(r *Renderer) {
		if loc != nil {
			r.loc = loc
		}
	}
}

// WithTitle sets the header text and the fallback text
func WithTitle(title, fallback string) RendererOption {
	return func(r *Renderer) {
		if title != "" {
			r.title = title
		}
		if fallback != "" {
			r.fallback = fallback
		}
	}
}

// NewRenderer creates a Renderer showing Tokyo time under the default title
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		loc:      contest.DisplayLocation(),
		title:    DefaultTitle,
		fallback: DefaultFallback,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultRenderer = NewRenderer()

// Render builds a message with the default renderer
func Render(contests []contest.Contest) *Message {
	return defaultRenderer.Render(contests)
}

// Render builds the message: a header and divider, then for every host with
// contests a bold host line, one section per contest and a closing divider.
// Hosts without contests produce no blocks.
func (r *Renderer) Render(contests []contest.Contest) *Message {
	blocks := []Block{
		HeaderBlock(r.title),
		DividerBlock(),
	}

	for _, host := range contest.Hosts() {
		group := contest.ByHost(contests, host)
		if len(group) == 0 {
			continue
		}

		blocks = append(blocks, SectionBlock(fmt.Sprintf("*%s*", host)))
		for _, c := range group {
			blocks = append(blocks, SectionBlock(r.FormatContest(c)))
		}
		blocks = append(blocks, DividerBlock())
	}

	return &Message{Blocks: blocks, Text: r.fallback}
}

// FormatContest renders one contest line.
// Contests with a page become a link followed by the start time on the next line.
func (r *Renderer) FormatContest(c contest.Contest) string {
	name := mrkdwnEscaper.Replace(c.Name())
	start := r.FormatTime(c.StartTime())

	if url, ok := c.URL(); ok {
		return fmt.Sprintf("<%s|%s>\n%s %s", mrkdwnEscaper.Replace(url), name, start, startsPhrase)
	}
	return fmt.Sprintf("%s %s %s", name, start, startsPhrase)
}

// FormatTime formats t as "10/24 (土) 21:00" in the renderer's zone
func (r *Renderer) FormatTime(t time.Time) string {
	local := t.In(r.loc)
	abbr := local.Format("Mon")
	return strings.Replace(local.Format(timeLayout), abbr, weekdays[local.Weekday()], 1)
}
