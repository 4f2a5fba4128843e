package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/user/logaround/internal/domain"
)

// styles groups the lipgloss styles a renderer paints with. A plain set
// with no attributes is used when color is disabled, which also keeps test
// output byte-stable.
type styles struct {
	header    lipgloss.Style
	time      lipgloss.Style
	unit      lipgloss.Style
	highlight lipgloss.Style
	notice    lipgloss.Style
	faint     lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
		time:      lipgloss.NewStyle().Faint(true),
		unit:      lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		highlight: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")).Background(lipgloss.Color("1")),
		notice:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		faint:     lipgloss.NewStyle().Faint(true),
	}
}

func plainStyles() styles {
	s := lipgloss.NewStyle()
	return styles{header: s, time: s, unit: s, highlight: s, notice: s, faint: s}
}

// TableRenderer prints records as a three-column terminal table (Time,
// Unit, Message) with every search term occurrence emphasized.
type TableRenderer struct {
	out    io.Writer
	styles styles
}

// NewTableRenderer creates a renderer writing to out.
func NewTableRenderer(out io.Writer, noColor bool) *TableRenderer {
	s := defaultStyles()
	if noColor {
		s = plainStyles()
	}
	return &TableRenderer{out: out, styles: s}
}

// Render prints up to maxRows records. Rows beyond the cap are dropped with
// a trailing note; a maxRows of 0 or less means no cap.
func (r *TableRenderer) Render(records []domain.LogRecord, terms []string, maxRows int) {
	shown := records
	hidden := 0
	if maxRows > 0 && len(records) > maxRows {
		shown = records[:maxRows]
		hidden = len(records) - maxRows
	}

	timeW, unitW := columnWidths(shown)
	fmt.Fprintln(r.out, r.styles.header.Render(pad("Time", timeW)+"  "+pad("Unit", unitW)+"  Message"))
	for _, rec := range shown {
		fmt.Fprintln(r.out,
			r.styles.time.Render(pad(rec.Timestamp, timeW))+"  "+
				r.styles.unit.Render(pad(rec.Unit, unitW))+"  "+
				r.highlight(rec.Message, terms))
	}
	if hidden > 0 {
		fmt.Fprintln(r.out, r.styles.faint.Render(fmt.Sprintf("... %d more rows not shown (raise --max to see them)", hidden)))
	}
}

// NoResults reports an empty search result.
func (r *TableRenderer) NoResults() {
	fmt.Fprintln(r.out, r.styles.notice.Render("No results found for your search."))
}

func columnWidths(records []domain.LogRecord) (timeW, unitW int) {
	timeW, unitW = len("Time"), len("Unit")
	for _, rec := range records {
		if n := len(rec.Timestamp); n > timeW {
			timeW = n
		}
		if n := len(rec.Unit); n > unitW {
			unitW = n
		}
	}
	return timeW, unitW
}

func pad(s string, w int) string {
	return fmt.Sprintf("%-*s", w, s)
}

// highlight wraps every case-insensitive occurrence of every term in the
// highlight style. Overlapping occurrences collapse into one styled span so
// no part of the message is emitted twice.
func (r *TableRenderer) highlight(msg string, terms []string) string {
	spans := termSpans(msg, terms)
	if len(spans) == 0 {
		return msg
	}

	var b strings.Builder
	prev := 0
	for _, s := range spans {
		b.WriteString(msg[prev:s.start])
		b.WriteString(r.styles.highlight.Render(msg[s.start:s.end]))
		prev = s.end
	}
	b.WriteString(msg[prev:])
	return b.String()
}

type span struct{ start, end int }

// termSpans locates every term occurrence in msg, case-insensitively, and
// returns the merged byte ranges sorted ascending. Offsets are found on the
// lowered string; for the rare rune whose lowering changes byte length the
// spans are clamped to the original message rather than risking an
// out-of-range slice.
func termSpans(msg string, terms []string) []span {
	lower := strings.ToLower(msg)
	var spans []span
	for _, term := range terms {
		t := strings.ToLower(term)
		if t == "" {
			continue
		}
		for from := 0; ; {
			i := strings.Index(lower[from:], t)
			if i < 0 {
				break
			}
			start := from + i
			spans = append(spans, span{start: start, end: start + len(t)})
			from = start + len(t)
		}
	}
	if len(spans) == 0 {
		return nil
	}

	for i := range spans {
		if spans[i].end > len(msg) {
			spans[i].end = len(msg)
		}
		if spans[i].start > len(msg) {
			spans[i].start = len(msg)
		}
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	merged := spans[:1]
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if s.start <= last.end {
			if s.end > last.end {
				last.end = s.end
			}
			continue
		}
		merged = append(merged, s)
	}
	return merged
}
