package domain

import "context"

// JournalSource defines the interface for fetching a batch of raw journal
// text. This abstracts away the specific implementation (e.g. a journalctl
// subprocess) so the pipeline can be tested with canned output.
type JournalSource interface {
	// FetchLogs runs the underlying journal query. since and until are
	// already-normalized timestamps and may be empty ("no bound"); lines
	// limits the batch size when > 0. The returned text is the raw
	// newline-separated journal output.
	FetchLogs(ctx context.Context, since, until string, lines int) (string, error)
}

// TimeNormalizer turns a human-friendly time expression ("2 hours ago",
// "last tuesday 14:00") into a timestamp string the journal source accepts.
type TimeNormalizer interface {
	// Normalize returns the normalized timestamp and true on success.
	// ok=false means the expression could not be parsed and the caller
	// should proceed without that bound.
	Normalize(ctx context.Context, expr string) (normalized string, ok bool)
}

// Renderer displays the final set of records. terms are the search terms to
// emphasize inside each message; maxRows caps how many records are shown.
// The renderer owns the terminal; nothing flows back into the pipeline.
type Renderer interface {
	Render(records []LogRecord, terms []string, maxRows int)

	// NoResults reports an empty result to the user. Not an error: the run
	// still exits with status zero.
	NoResults()
}
