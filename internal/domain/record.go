package domain

// LogRecord represents one journal line after parsing.
// When a line does not match the expected short-format shape, Message holds
// the whole line verbatim and the remaining fields stay empty. Exactly one
// record exists per input line; no line is ever dropped.
type LogRecord struct {
	Timestamp string `json:"timestamp"`
	Host      string `json:"host"`
	Unit      string `json:"unit"`
	Message   string `json:"message"`
}

// Structured reports whether the record came out of the structured parse
// path rather than the whole-line fallback.
func (r LogRecord) Structured() bool {
	return r.Timestamp != "" || r.Host != "" || r.Unit != ""
}
