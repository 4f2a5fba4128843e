package journal

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"

	"github.com/user/logaround/internal/domain"
)

// runner executes a command and returns its stdout and stderr. Swapped out
// in tests so no journalctl binary is needed.
type runner func(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)

func execRunner(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf
	err := cmd.Run()
	return out.String(), errBuf.String(), err
}

// Source fetches journal batches by shelling out to journalctl.
type Source struct {
	bin    string
	run    runner
	logger *slog.Logger
}

// NewSource creates a journal source using the given journalctl binary.
func NewSource(bin string, logger *slog.Logger) *Source {
	return &Source{bin: bin, run: execRunner, logger: logger}
}

// FetchLogs runs journalctl in short output mode with the supplied bounds
// and line limit. A failed invocation surfaces as a *domain.FetchError and
// is fatal to the run; no partial output is returned.
func (s *Source) FetchLogs(ctx context.Context, since, until string, lines int) (string, error) {
	args := []string{"--no-pager", "-o", "short"}
	if since != "" {
		args = append(args, "--since", since)
	}
	if until != "" {
		args = append(args, "--until", until)
	}
	if lines > 0 {
		args = append(args, "-n", strconv.Itoa(lines))
	}

	s.logger.Debug("fetching journal", "bin", s.bin, "args", strings.Join(args, " "))
	stdout, stderr, err := s.run(ctx, s.bin, args...)
	if err != nil {
		return "", &domain.FetchError{Cmd: s.bin, Stderr: strings.TrimSpace(stderr), Err: err}
	}
	return stdout, nil
}
