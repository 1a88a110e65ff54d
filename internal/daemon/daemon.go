package daemon

import (
	"context"
	"log/slog"

	"fleettrack/internal/config"
	"fleettrack/internal/registry"
	"fleettrack/internal/render"
	"fleettrack/internal/scheduler"
	"fleettrack/internal/scraper"
	"fleettrack/internal/tasks"
)

// Daemon keeps the scrape-and-publish pipeline running on an internal
// interval, for deployments without an external cron. The one-shot CLI
// path uses the same task directly.
type Daemon struct {
	ctx       context.Context
	cancel    context.CancelFunc
	scheduler *scheduler.Scheduler
}

// New wires the pipeline out of the configuration.
func New(cfg *config.Config) *Daemon {
	ctx, cancel := context.WithCancel(context.Background())

	sched := scheduler.New(ctx)
	sched.AddTask(tasks.NewScrapePublishTask(
		NewScraper(cfg),
		render.NewRenderer(cfg.Output.Path, cfg.Output.DestroyerPath, cfg.Output.FeedPath),
		cfg.Daemon.Interval,
	))

	return &Daemon{
		ctx:       ctx,
		cancel:    cancel,
		scheduler: sched,
	}
}

// NewScraper builds the full-fleet scraper, capital ships and destroyers
// alike, from the configuration. It is shared with the one-shot path in
// main.
func NewScraper(cfg *config.Config) *scraper.Scraper {
	client := scraper.NewClient(cfg.Source.Timeout, cfg.Source.UserAgent, cfg.Source.CharLimit)
	return scraper.New(client, registry.TrackedShips(), cfg.Source.BaseURL, cfg.Source.RateLimit)
}

// Start launches the scheduler; the first run happens immediately.
func (d *Daemon) Start() {
	slog.Info("Starting daemon")
	d.scheduler.Start()
}

// Stop gracefully stops the daemon.
func (d *Daemon) Stop() {
	slog.Info("Stopping daemon")
	d.cancel()
	d.scheduler.Stop()
	slog.Info("Daemon stopped")
}
