package domain

import "fmt"

// FetchError reports a failed journal query. It is the only fatal error in
// the pipeline: the run aborts before any records are produced.
type FetchError struct {
	Cmd    string
	Stderr string
	Err    error
}

func (e *FetchError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s: %s", e.Cmd, e.Stderr)
	}
	return fmt.Sprintf("%s: %v", e.Cmd, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
