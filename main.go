package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/davidmcnab/hearth/internal/config"
	"github.com/davidmcnab/hearth/internal/household"
	"github.com/davidmcnab/hearth/internal/server"
	"github.com/davidmcnab/hearth/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	})))

	snapshot, err := household.Load(cfg.HouseholdPath)
	if err != nil {
		slog.Error("loading household", "error", err, "path", cfg.HouseholdPath)
		os.Exit(1)
	}

	planner := services.NewPlannerService(snapshot, cfg.WeekStart)

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.DigestCron, func() { logDigest(planner) }); err != nil {
		slog.Error("scheduling digest", "error", err, "spec", cfg.DigestCron)
		os.Exit(1)
	}
	scheduler.Start()

	srv := server.New(planner, cfg)
	if err := srv.Start(); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func logDigest(planner *services.PlannerService) {
	digest, err := planner.Digest(time.Now())
	if err != nil {
		slog.Error("computing digest", "error", err)
		return
	}
	slog.Info("weekly digest",
		"week_start", digest.WeekStart.Format("2006-01-02"),
		"overdue", len(digest.Overdue),
		"due_this_week", len(digest.DueThisWeek),
		"completed_this_week", len(digest.CompletedThisWeek),
	)
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
