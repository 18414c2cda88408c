// Command sync force-refreshes the roster from the configured provider into the
// durable store and the local snapshot, then prints a summary. It exits non-zero
// when the refresh could not be served live.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"garu-data-service/internal/cache"
	"garu-data-service/internal/config"
	"garu-data-service/internal/domain/players"
	"garu-data-service/internal/logging"
	"garu-data-service/internal/metrics"
	"garu-data-service/internal/server"
)

const (
	appName    = "garu-data-service-sync"
	appVersion = "dev"

	defaultJourneyTarget = 60
	journeyMinTeams      = 2
)

var errNotLive = errors.New("roster refresh was not served live")

func main() {
	journeys := flag.Bool("journeys", false, "also rebuild team journeys after the roster refresh")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Service: appName,
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, *journeys); err != nil {
		logging.Error(logger, "sync failed", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger, withJourneys bool) error {
	core := server.NewCore(ctx, cfg, logger, metrics.NewRecorder())
	defer core.Close()

	res := core.Roster.GetRoster(ctx, true)
	if res.Source != cache.TierLive {
		return fmt.Errorf("%w: source %s", errNotLive, res.Source)
	}

	s := summarize(res.Players)
	logging.Info(logger, "roster synced",
		logging.FieldSeason, res.Season,
		logging.FieldCount, s.count,
		"durable", core.Durable != nil,
		"top_scorer", s.topScorer,
		"positions", s.positions,
	)

	if withJourneys {
		built := core.Journeys.Rebuild(ctx, defaultJourneyTarget, journeyMinTeams)
		logging.Info(logger, "journeys rebuilt", logging.FieldCount, len(built))
	}
	return nil
}

type summary struct {
	count     int
	topScorer string
	positions string
}

// summarize reports the roster size, the leading scorer and the position mix in lineup order.
func summarize(r players.Roster) summary {
	s := summary{count: len(r)}
	var top players.Record
	counts := make(map[players.Position]int, len(players.Positions))
	for i, p := range r {
		if i == 0 || p.Points > top.Points {
			top = p
		}
		counts[p.Position]++
	}
	if len(r) > 0 {
		s.topScorer = fmt.Sprintf("%s (%s) %.1f ppg", top.Name, top.Team, top.Points)
	}

	parts := make([]string, 0, len(counts))
	for _, pos := range players.Positions {
		if n, ok := counts[pos]; ok {
			parts = append(parts, fmt.Sprintf("%s=%d", pos, n))
			delete(counts, pos)
		}
	}
	var rest []string
	for pos, n := range counts {
		rest = append(rest, fmt.Sprintf("%s=%d", pos, n))
	}
	sort.Strings(rest)
	s.positions = strings.Join(append(parts, rest...), " ")
	return s
}
