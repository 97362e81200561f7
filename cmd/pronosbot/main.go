package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"

	"github.com/jcamargo/pronosbot/internal/api"
	"github.com/jcamargo/pronosbot/internal/match"
	"github.com/jcamargo/pronosbot/internal/pkg/cache"
	"github.com/jcamargo/pronosbot/internal/pkg/config"
	"github.com/jcamargo/pronosbot/internal/pkg/logging"
	"github.com/jcamargo/pronosbot/internal/providers/apisports"
	"github.com/jcamargo/pronosbot/internal/providers/apitennis"
	"github.com/jcamargo/pronosbot/internal/providers/footballdata"
	"github.com/jcamargo/pronosbot/internal/providers/oddsapi"
	"github.com/jcamargo/pronosbot/internal/providers/sportsdb"
	"github.com/jcamargo/pronosbot/internal/report"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "path to config file")
	flag.Parse()

	// .env is optional; all credentials can come from the real env.
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging, "pronosbot")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, stopping...")
		cancel()
	}()

	oddsCache := cache.NewRedisOddsCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.OddsTTL)
	if oddsCache != nil {
		defer oddsCache.Close()
		slog.Info("Odds cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.OddsTTL)
	}

	footballTeams := match.NewRoster(cfg.Rosters.FootballTeams...)
	tennisPlayers := match.NewRoster(cfg.Rosters.TennisPlayers...)

	pipeline := report.NewPipeline(
		oddsapi.NewFetcher(oddsapi.NewClient(cfg.Providers.OddsAPI), oddsCache),
		footballdata.NewClient(cfg.Providers.FootballData, footballTeams),
		apisports.NewClient(cfg.Providers.APISports, footballTeams),
		apitennis.NewClient(cfg.Providers.APITennis, tennisPlayers),
		sportsdb.NewClient(cfg.Providers.SportsDB),
		match.NewCorrelator(match.SubstringPairMatcher{}),
	)

	notifier := report.NewNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	defer notifier.Stop()

	trigger := func(ctx context.Context, now time.Time) {
		sections := pipeline.Run(ctx, now)
		notifier.Send(report.Assemble(sections, now))
	}

	scheduler, err := report.NewScheduler(cfg.Schedule.SendTimes, trigger)
	if err != nil {
		slog.Error("Failed to build scheduler", "error", err)
		os.Exit(1)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		scheduler.Start(ctx)
	}()
	go func() {
		defer wg.Done()
		api.Run(ctx, cfg.HTTP.Addr, cfg.HTTP.ReadHeaderTimeout, trigger)
	}()

	wg.Wait()
	slog.Info("pronosbot stopped")
}
