package timeparse

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
)

func newTestNormalizer(t *testing.T, stdout string, err error) (*Normalizer, *int) {
	t.Helper()
	calls := 0
	n := NewNormalizer("date", slog.New(slog.NewTextHandler(io.Discard, nil)))
	n.run = func(ctx context.Context, name string, args ...string) (string, string, error) {
		calls++
		if len(args) != 3 || args[0] != "-d" || args[2] != outputFormat {
			t.Fatalf("unexpected date args %v", args)
		}
		return stdout, "", err
	}
	return n, &calls
}

func TestNormalizer_Normalize(t *testing.T) {
	t.Run("Successful Parse Is Trimmed", func(t *testing.T) {
		n, _ := newTestNormalizer(t, "2026-08-23 15:00:00\n", nil)

		got, ok := n.Normalize(context.Background(), "yesterday 15:00")

		if !ok {
			t.Fatal("expected ok")
		}
		if got != "2026-08-23 15:00:00" {
			t.Errorf("unexpected normalized value %q", got)
		}
	})

	t.Run("Parse Failure Means No Bound", func(t *testing.T) {
		n, _ := newTestNormalizer(t, "", errors.New("exit status 1"))

		if _, ok := n.Normalize(context.Background(), "not a date"); ok {
			t.Fatal("expected ok=false")
		}
	})

	t.Run("Empty Output Means No Bound", func(t *testing.T) {
		n, _ := newTestNormalizer(t, "\n", nil)

		if _, ok := n.Normalize(context.Background(), "whatever"); ok {
			t.Fatal("expected ok=false")
		}
	})

	t.Run("Blank Expression Skips The Subprocess", func(t *testing.T) {
		n, calls := newTestNormalizer(t, "", nil)

		if _, ok := n.Normalize(context.Background(), "   "); ok {
			t.Fatal("expected ok=false")
		}
		if *calls != 0 {
			t.Errorf("expected no subprocess call, got %d", *calls)
		}
	})
}
