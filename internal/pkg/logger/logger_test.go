package logger

import (
	"context"
	"log/slog"
	"testing"
)

func TestNew(t *testing.T) {
	ctx := context.Background()

	t.Run("Debug Level Enables Debug", func(t *testing.T) {
		log := New("debug")
		if !log.Enabled(ctx, slog.LevelDebug) {
			t.Error("expected debug to be enabled")
		}
	})

	t.Run("Default Level Is Warn", func(t *testing.T) {
		log := New("nonsense")
		if log.Enabled(ctx, slog.LevelInfo) {
			t.Error("expected info to be disabled at the fallback level")
		}
		if !log.Enabled(ctx, slog.LevelWarn) {
			t.Error("expected warn to be enabled")
		}
	})
}
