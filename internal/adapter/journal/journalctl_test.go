package journal

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/user/logaround/internal/domain"
)

type fakeCall struct {
	name string
	args []string
}

func newTestSource(t *testing.T, stdout, stderr string, err error) (*Source, *fakeCall) {
	t.Helper()
	call := &fakeCall{}
	s := NewSource("journalctl", slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.run = func(ctx context.Context, name string, args ...string) (string, string, error) {
		call.name = name
		call.args = args
		return stdout, stderr, err
	}
	return s, call
}

func TestSource_FetchLogs(t *testing.T) {
	t.Run("Builds Short Output Command", func(t *testing.T) {
		s, call := newTestSource(t, "some output\n", "", nil)

		out, err := s.FetchLogs(context.Background(), "", "", 0)

		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if out != "some output\n" {
			t.Errorf("unexpected output %q", out)
		}
		want := "--no-pager -o short"
		if got := strings.Join(call.args, " "); got != want {
			t.Errorf("expected args %q, got %q", want, got)
		}
	})

	t.Run("Adds Bounds And Line Limit", func(t *testing.T) {
		s, call := newTestSource(t, "", "", nil)

		_, err := s.FetchLogs(context.Background(), "2026-08-23 00:00:00", "2026-08-24 12:00:00", 500)

		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		want := "--no-pager -o short --since 2026-08-23 00:00:00 --until 2026-08-24 12:00:00 -n 500"
		if got := strings.Join(call.args, " "); got != want {
			t.Errorf("expected args %q, got %q", want, got)
		}
	})

	t.Run("Omits Empty Bounds", func(t *testing.T) {
		s, call := newTestSource(t, "", "", nil)

		if _, err := s.FetchLogs(context.Background(), "", "", 100); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		joined := strings.Join(call.args, " ")
		if strings.Contains(joined, "--since") || strings.Contains(joined, "--until") {
			t.Errorf("expected no bounds in args, got %q", joined)
		}
	})

	t.Run("Failure Surfaces As FetchError With Stderr", func(t *testing.T) {
		s, _ := newTestSource(t, "", "Failed to open journal\n", errors.New("exit status 1"))

		_, err := s.FetchLogs(context.Background(), "", "", 0)

		var fetchErr *domain.FetchError
		if !errors.As(err, &fetchErr) {
			t.Fatalf("expected a FetchError, got %v", err)
		}
		if fetchErr.Stderr != "Failed to open journal" {
			t.Errorf("unexpected stderr %q", fetchErr.Stderr)
		}
		if !strings.Contains(fetchErr.Error(), "journalctl") {
			t.Errorf("expected command name in message, got %q", fetchErr.Error())
		}
	})

	t.Run("Failure Without Stderr Keeps Cause", func(t *testing.T) {
		cause := errors.New("executable file not found")
		s, _ := newTestSource(t, "", "", cause)

		_, err := s.FetchLogs(context.Background(), "", "", 0)

		if !errors.Is(err, cause) {
			t.Fatalf("expected wrapped cause, got %v", err)
		}
	})
}
