package tasks

import (
	"context"
	"fmt"
	"time"

	"fleettrack/internal/models"
)

// FleetScraper produces one snapshot per invocation.
type FleetScraper interface {
	Scrape(ctx context.Context) (models.FleetSnapshot, error)
}

// Publisher writes a snapshot's artifacts to disk.
type Publisher interface {
	Publish(snapshot models.FleetSnapshot) error
}

// ScrapePublishTask runs the whole pipeline once: scrape the fleet,
// publish the result. When the scrape fails the publisher is never
// invoked, so a previously published page stays untouched.
type ScrapePublishTask struct {
	scraper   FleetScraper
	publisher Publisher
	interval  time.Duration
}

// NewScrapePublishTask binds a scraper and a publisher into a
// schedulable task. The interval only matters in daemon mode.
func NewScrapePublishTask(scraper FleetScraper, publisher Publisher, interval time.Duration) *ScrapePublishTask {
	return &ScrapePublishTask{
		scraper:   scraper,
		publisher: publisher,
		interval:  interval,
	}
}

func (t *ScrapePublishTask) Name() string { return "scrape_publish" }

func (t *ScrapePublishTask) Interval() time.Duration { return t.interval }

// Run executes one scrape-and-publish cycle. An empty snapshot from a
// successful scrape is still published; only a failed scrape or a
// failed page write is an error.
func (t *ScrapePublishTask) Run(ctx context.Context) error {
	snapshot, err := t.scraper.Scrape(ctx)
	if err != nil {
		return fmt.Errorf("scrape failed: %w", err)
	}
	if err := t.publisher.Publish(snapshot); err != nil {
		return fmt.Errorf("publish failed: %w", err)
	}
	return nil
}
