package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"fleettrack/internal/config"
	"fleettrack/internal/daemon"
	"fleettrack/internal/render"
	"fleettrack/internal/tasks"
)

func initLogger(cfg *config.Config) {
	var logLevel slog.Level
	switch cfg.Log.Level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var handler slog.Handler
	if cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}

func main() {
	configPath := flag.String("config", "", "Path to config file (YAML)")
	daemonMode := flag.Bool("daemon", false, "Keep running and re-scrape on the configured interval")
	flag.Parse()

	if *configPath != "" {
		os.Setenv("FLEETTRACK_CONFIG_PATH", *configPath)
	}

	cfg, err := config.Load()
	if err != nil {
		// Logger isn't initialized yet, use a basic one for this error
		basicLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		basicLogger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	if *daemonMode {
		runDaemon(cfg)
		return
	}

	// Default invocation: one scrape, one publish, exit. Non-zero exit
	// on a failed scrape or page write leaves retrying to whatever
	// scheduled this run; a previously published page is not touched on
	// failure.
	task := tasks.NewScrapePublishTask(
		daemon.NewScraper(cfg),
		render.NewRenderer(cfg.Output.Path, cfg.Output.DestroyerPath, cfg.Output.FeedPath),
		cfg.Daemon.Interval,
	)

	slog.Info("Starting fleet scan", "base_url", cfg.Source.BaseURL, "output", cfg.Output.Path)
	if err := task.Run(context.Background()); err != nil {
		slog.Error("Run failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Run complete")
}

func runDaemon(cfg *config.Config) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	d := daemon.New(cfg)
	d.Start()

	<-sigChan
	slog.Info("Received interrupt signal, shutting down...")
	d.Stop()
}
