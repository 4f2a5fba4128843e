package mocks

import (
	"context"
	"sync"

	"github.com/user/logaround/internal/domain"
)

// MockJournalSource is a mock implementation of domain.JournalSource for testing.
type MockJournalSource struct {
	mu         sync.Mutex
	Output     string
	FetchErr   error
	LastSince  string
	LastUntil  string
	LastLines  int
	FetchCalls int
}

func (m *MockJournalSource) FetchLogs(ctx context.Context, since, until string, lines int) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchCalls++
	m.LastSince = since
	m.LastUntil = until
	m.LastLines = lines
	if m.FetchErr != nil {
		return "", m.FetchErr
	}
	return m.Output, nil
}

// MockTimeNormalizer returns canned normalizations keyed by expression.
// Expressions absent from the map report ok=false.
type MockTimeNormalizer struct {
	Normalized map[string]string
}

func (m *MockTimeNormalizer) Normalize(ctx context.Context, expr string) (string, bool) {
	v, ok := m.Normalized[expr]
	return v, ok
}

// MockRenderer records what it was asked to display.
type MockRenderer struct {
	mu            sync.Mutex
	Rendered      []domain.LogRecord
	RenderedTerms []string
	MaxRows       int
	RenderCalls   int
	NoResultCalls int
}

func (m *MockRenderer) Render(records []domain.LogRecord, terms []string, maxRows int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RenderCalls++
	m.Rendered = append([]domain.LogRecord(nil), records...)
	m.RenderedTerms = append([]string(nil), terms...)
	m.MaxRows = maxRows
}

func (m *MockRenderer) NoResults() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NoResultCalls++
}
