package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"scorewatch/internal/config"
	"scorewatch/internal/domain/games"
	"scorewatch/internal/logging"
	"scorewatch/internal/metrics"
	"scorewatch/internal/providers"
	"scorewatch/internal/providers/espn"
	"scorewatch/internal/providers/fixture"
	"scorewatch/internal/scoreboard"
	"scorewatch/internal/timeutil"
	"scorewatch/internal/watch"
)

const appVersion = "dev"

func main() {
	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "scorewatch",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recorder, promHandler, metricsShutdown, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		logger.Warn("metrics setup failed, continuing without telemetry", "error", err)
		recorder = metrics.NewRecorder()
		metricsShutdown = func(context.Context) error { return nil }
	}

	var metricsSrv *http.Server
	if promHandler != nil && cfg.Metrics.Enabled {
		metricsSrv = &http.Server{Addr: ":" + cfg.Metrics.Port, Handler: promHandler}
		go func() {
			logger.Info("metrics server starting", slog.String("addr", metricsSrv.Addr))
			if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Warn("metrics server failed", "error", err)
			}
		}()
	}

	provider := buildProvider(cfg, logger)
	fetcher := scoreboard.New(provider, cfg.Sports, logger, recorder)
	watcher := watch.New(fetcher, logger, recorder, watch.Config{
		LiveInterval: cfg.LiveInterval,
		IdleInterval: cfg.IdleInterval,
	})
	watcher.OnUpdate(render)

	watcher.Start(ctx, resolveDate(cfg, logger))

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := watcher.Stop(shutdownCtx); err != nil {
		logger.Error("failed to stop watcher", "error", err)
	}
	if metricsSrv != nil {
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("metrics server shutdown failed", "error", err)
		}
	}
	if err := metricsShutdown(shutdownCtx); err != nil {
		logger.Warn("metrics shutdown failed", "error", err)
	}
	logger.Info("shutdown complete")
}

func buildProvider(cfg config.Config, logger *slog.Logger) providers.ScoreboardProvider {
	var provider providers.ScoreboardProvider
	switch cfg.Provider {
	case "fixture":
		provider = fixture.New()
	default:
		provider = espn.NewClient(espn.Config{
			BaseURL:  cfg.BaseURL,
			Timezone: cfg.Timezone,
			Logger:   logger,
		})
	}
	if cfg.RetryAttempts > 0 {
		provider = providers.NewRetryingProvider(provider, logger, cfg.RetryAttempts, cfg.RetryBackoff)
	}
	return provider
}

func resolveDate(cfg config.Config, logger *slog.Logger) time.Time {
	if cfg.Date == "" {
		return time.Now()
	}
	date, err := timeutil.ParseDate(cfg.Date)
	if err != nil {
		logger.Warn("invalid date, using today", slog.String(logging.FieldDate, cfg.Date))
		return time.Now()
	}
	return date
}

// render writes the current scoreboard to stdout. This is a stand-in
// for the real frontends, which consume the same snapshot shape.
func render(snap watch.Snapshot) {
	switch snap.State {
	case watch.StateLoading:
		fmt.Println("loading scoreboard...")
		return
	case watch.StateError:
		fmt.Printf("scoreboard unavailable: %v\n", snap.Err)
		return
	case watch.StateLoaded:
	default:
		return
	}

	list := snap.Games
	games.SortByStartTime(list)

	fmt.Printf("\n%s: %d games\n", snap.Date.Format("Mon Jan 2 2006"), len(list))
	for _, g := range list {
		fmt.Println(formatGame(g))
	}
}

func formatGame(g games.Game) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%-18s] %s", g.Sport, matchupLine(g))

	switch g.Status {
	case games.StatusScheduled:
		fmt.Fprintf(&b, "  %s", g.DisplayTime)
	case games.StatusFinal:
		b.WriteString("  Final")
	case games.StatusPostponed:
		b.WriteString("  Postponed")
	default:
		fmt.Fprintf(&b, "  %s", g.Time)
		if g.Sport.IsBaseball() && g.Bases != "" {
			fmt.Fprintf(&b, " (bases %s", g.Bases)
			if g.Balls != nil && g.Strikes != nil {
				fmt.Fprintf(&b, ", %d-%d", *g.Balls, *g.Strikes)
			}
			if g.Outs != nil {
				fmt.Fprintf(&b, ", %d out", *g.Outs)
			}
			b.WriteString(")")
		}
	}

	if g.BroadcastChannel != "" {
		fmt.Fprintf(&b, "  [%s]", g.BroadcastChannel)
	}
	return b.String()
}

func matchupLine(g games.Game) string {
	away := g.AwayTeam
	home := g.HomeTeam
	if g.PossessionTeam != "" {
		// Equality by stringified id; highlights the ball carrier.
		if g.PossessionTeam == g.AwayTeamID {
			away = "*" + away
		} else if g.PossessionTeam == g.HomeTeamID {
			home = "*" + home
		}
	}
	if g.AwayScore == "" && g.HomeScore == "" {
		return fmt.Sprintf("%s @ %s", away, home)
	}
	return fmt.Sprintf("%s %s @ %s %s", away, g.AwayScore, home, g.HomeScore)
}
