package usecase

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/user/logaround/internal/domain"
)

// journalLinePattern matches journalctl short-format output: a syslog-style
// timestamp, a hostname, a unit name with an optional [pid] suffix (the pid
// is discarded), then the message after ": ". Unit names containing a colon
// or bracket fall through to the fallback path on purpose.
var journalLinePattern = regexp.MustCompile(`^(?P<timestamp>[A-Za-z]{3} +\d{1,2} +\d{2}:\d{2}:\d{2}) (?P<host>\S+) (?P<unit>[^:\[]+)(?:\[\d+\])?: (?P<message>.*)$`)

// LineParser turns raw journal output into LogRecords, one per line.
type LineParser struct {
	logger *slog.Logger
}

// NewLineParser creates a new LineParser.
func NewLineParser(logger *slog.Logger) *LineParser {
	return &LineParser{logger: logger}
}

// Parse produces exactly one record per input line. A line that does not
// match the expected shape becomes a record whose Message is the whole line
// verbatim and whose other fields are empty; nothing is ever dropped.
// One trailing newline is stripped first so terminated output does not
// fabricate an empty final record.
func (p *LineParser) Parse(output string) []domain.LogRecord {
	if output == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(output, "\n"), "\n")
	records := make([]domain.LogRecord, 0, len(lines))
	fallbacks := 0
	for _, line := range lines {
		m := journalLinePattern.FindStringSubmatch(line)
		if m == nil {
			fallbacks++
			records = append(records, domain.LogRecord{Message: line})
			continue
		}
		records = append(records, domain.LogRecord{
			Timestamp: strings.TrimSpace(m[1]),
			Host:      strings.TrimSpace(m[2]),
			Unit:      strings.TrimSpace(m[3]),
			Message:   strings.TrimSpace(m[4]),
		})
	}
	p.logger.Debug("parsed journal output", "lines", len(lines), "fallbacks", fallbacks)
	return records
}
