package timeparse

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"strings"
)

// outputFormat produces timestamps journalctl accepts for --since/--until.
const outputFormat = "+%Y-%m-%d %H:%M:%S"

type runner func(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)

func execRunner(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf
	err := cmd.Run()
	return out.String(), errBuf.String(), err
}

// Normalizer converts human-friendly time expressions ("2 hours ago",
// "last tuesday 14:00") into normalized timestamps by delegating to
// GNU date -d.
type Normalizer struct {
	bin    string
	run    runner
	logger *slog.Logger
}

// NewNormalizer creates a normalizer using the given date binary.
func NewNormalizer(bin string, logger *slog.Logger) *Normalizer {
	return &Normalizer{bin: bin, run: execRunner, logger: logger}
}

// Normalize returns ok=false when the expression cannot be parsed; the
// caller treats that as "no bound" rather than an error.
func (n *Normalizer) Normalize(ctx context.Context, expr string) (string, bool) {
	if strings.TrimSpace(expr) == "" {
		return "", false
	}

	stdout, stderr, err := n.run(ctx, n.bin, "-d", expr, outputFormat)
	if err != nil {
		n.logger.Debug("date parse failed", "expr", expr, "stderr", strings.TrimSpace(stderr), "error", err)
		return "", false
	}

	normalized := strings.TrimSpace(stdout)
	if normalized == "" {
		return "", false
	}
	return normalized, true
}
