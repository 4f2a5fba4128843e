package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"

	"github.com/user/logaround/internal/adapter/journal"
	"github.com/user/logaround/internal/adapter/render"
	"github.com/user/logaround/internal/adapter/timeparse"
	"github.com/user/logaround/internal/domain"
	"github.com/user/logaround/internal/pkg/config"
	"github.com/user/logaround/internal/pkg/logger"
	"github.com/user/logaround/internal/usecase"
)

const version = "1.1.0"

// termList collects repeated --term flags.
type termList []string

func (t *termList) String() string { return strings.Join(*t, ", ") }

func (t *termList) Set(v string) error {
	*t = append(*t, v)
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var terms termList
	since := flag.String("since", "", `start time; fuzzy expressions allowed (e.g. "2 hours ago", "last tuesday 14:00")`)
	until := flag.String("until", "", `end time (e.g. "today 14:00", "2 days ago 17:30")`)
	flag.Var(&terms, "term", "search term; repeat for AND search (e.g. --term ssh --term fail)")
	lines := flag.Int("lines", cfg.DefaultLines, "how many lines to fetch when not filtering by time")
	maxRows := flag.Int("max", cfg.MaxRows, "maximum number of rows to display")
	delta := flag.Int("delta", 0, "show ±N context lines before/after each match")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("logaround " + version)
		return
	}
	if *delta < 0 {
		fmt.Fprintln(os.Stderr, "delta must be >= 0")
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel).With("run_id", uuid.NewString())
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source := journal.NewSource(cfg.JournalctlBin, log)
	normalizer := timeparse.NewNormalizer(cfg.DateBin, log)
	renderer := render.NewTableRenderer(os.Stdout, cfg.NoColor)
	parser := usecase.NewLineParser(log)
	searcher := usecase.NewSearchLogsUseCase(log)
	run := usecase.NewRunUseCase(source, normalizer, parser, searcher, renderer, log)

	params := usecase.RunParams{
		Since:   *since,
		Until:   *until,
		Terms:   cleanTerms(terms),
		Lines:   *lines,
		Delta:   *delta,
		MaxRows: *maxRows,
	}

	if err := run.Run(ctx, params); err != nil {
		var fetchErr *domain.FetchError
		if errors.As(err, &fetchErr) {
			fmt.Fprintln(os.Stderr, "journalctl error: "+fetchErr.Error())
		} else {
			fmt.Fprintln(os.Stderr, err.Error())
		}
		os.Exit(1)
	}
}

// cleanTerms drops blank terms so an accidental --term "" cannot widen the
// search into matching everything.
func cleanTerms(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if strings.TrimSpace(t) != "" {
			out = append(out, t)
		}
	}
	return out
}
