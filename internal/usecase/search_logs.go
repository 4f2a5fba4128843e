package usecase

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/user/logaround/internal/domain"
)

// SearchLogsUseCase filters parsed records by required terms and expands
// the matches with surrounding context lines.
type SearchLogsUseCase struct {
	logger *slog.Logger
}

// NewSearchLogsUseCase creates a new SearchLogsUseCase.
func NewSearchLogsUseCase(logger *slog.Logger) *SearchLogsUseCase {
	return &SearchLogsUseCase{logger: logger}
}

// Search returns the records to display, in their original order. A record
// matches when every term appears in its message as a case-insensitive
// substring; delta > 0 pulls in up to that many neighboring records on each
// side of every match. With no terms the full sequence is returned untouched.
func (uc *SearchLogsUseCase) Search(records []domain.LogRecord, terms []string, delta int) []domain.LogRecord {
	if len(terms) == 0 {
		return records
	}

	matches := matchIndices(records, terms)
	display := expandContext(len(records), matches, delta)
	uc.logger.Debug("filtered records",
		"total", len(records),
		"matches", len(matches),
		"delta", delta,
		"display", len(display),
	)

	out := make([]domain.LogRecord, 0, len(display))
	for _, i := range display {
		out = append(out, records[i])
	}
	return out
}

// matchIndices returns, in ascending order, the indices of records whose
// message contains every term as a case-insensitive substring. Lowering is
// plain Unicode ToLower; no locale rules or full case folding are applied.
func matchIndices(records []domain.LogRecord, terms []string) []int {
	lowered := make([]string, len(terms))
	for i, t := range terms {
		lowered[i] = strings.ToLower(t)
	}

	var matches []int
	for i, rec := range records {
		msg := strings.ToLower(rec.Message)
		all := true
		for _, t := range lowered {
			if !strings.Contains(msg, t) {
				all = false
				break
			}
		}
		if all {
			matches = append(matches, i)
		}
	}
	return matches
}

// expandContext unions a ±delta window around each match, clamped to
// [0, n), and returns the indices sorted ascending with duplicates removed.
// delta 0 returns the match set unchanged.
func expandContext(n int, matches []int, delta int) []int {
	if delta <= 0 || len(matches) == 0 {
		return matches
	}

	seen := make(map[int]struct{})
	for _, idx := range matches {
		lo := idx - delta
		if lo < 0 {
			lo = 0
		}
		hi := idx + delta
		if hi > n-1 {
			hi = n - 1
		}
		for j := lo; j <= hi; j++ {
			seen[j] = struct{}{}
		}
	}

	out := make([]int, 0, len(seen))
	for j := range seen {
		out = append(out, j)
	}
	sort.Ints(out)
	return out
}
