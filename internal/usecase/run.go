package usecase

import (
	"context"
	"log/slog"

	"github.com/user/logaround/internal/domain"
)

// RunParams carries one invocation's search request.
type RunParams struct {
	Since   string // free-form time expression, may be empty
	Until   string
	Terms   []string
	Lines   int // journal fetch limit, 0 means no limit
	Delta   int // context lines on each side of a match
	MaxRows int // display cap, enforced by the renderer
}

// RunUseCase wires the collaborators into the fetch, parse, search, render
// pipeline. Only a journal fetch failure aborts the run; every other
// condition is represented in the data and the run succeeds.
type RunUseCase struct {
	source     domain.JournalSource
	normalizer domain.TimeNormalizer
	parser     *LineParser
	searcher   *SearchLogsUseCase
	renderer   domain.Renderer
	logger     *slog.Logger
}

// NewRunUseCase creates a new RunUseCase.
func NewRunUseCase(
	source domain.JournalSource,
	normalizer domain.TimeNormalizer,
	parser *LineParser,
	searcher *SearchLogsUseCase,
	renderer domain.Renderer,
	logger *slog.Logger,
) *RunUseCase {
	return &RunUseCase{
		source:     source,
		normalizer: normalizer,
		parser:     parser,
		searcher:   searcher,
		renderer:   renderer,
		logger:     logger,
	}
}

// Run executes one batch: normalize the time bounds, fetch the journal
// text, parse it into records, filter with context, and hand the result to
// the renderer. An empty result is reported via the renderer, not an error.
func (uc *RunUseCase) Run(ctx context.Context, params RunParams) error {
	since := uc.normalizeBound(ctx, "since", params.Since)
	until := uc.normalizeBound(ctx, "until", params.Until)

	output, err := uc.source.FetchLogs(ctx, since, until, params.Lines)
	if err != nil {
		uc.logger.Error("journal fetch failed", "error", err)
		return err
	}

	records := uc.parser.Parse(output)
	display := uc.searcher.Search(records, params.Terms, params.Delta)

	if len(display) == 0 {
		uc.renderer.NoResults()
		return nil
	}
	uc.renderer.Render(display, params.Terms, params.MaxRows)
	return nil
}

// normalizeBound resolves one side of the time window. A bound that cannot
// be parsed is dropped with a warning rather than failing the run.
func (uc *RunUseCase) normalizeBound(ctx context.Context, side, expr string) string {
	if expr == "" {
		return ""
	}
	normalized, ok := uc.normalizer.Normalize(ctx, expr)
	if !ok {
		uc.logger.Warn("could not parse time expression, ignoring bound", "side", side, "expr", expr)
		return ""
	}
	return normalized
}
