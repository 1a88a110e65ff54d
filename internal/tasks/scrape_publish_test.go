package tasks

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleettrack/internal/models"
	"fleettrack/internal/render"
)

type mockScraper struct {
	snapshot models.FleetSnapshot
	err      error
}

func (m *mockScraper) Scrape(ctx context.Context) (models.FleetSnapshot, error) {
	return m.snapshot, m.err
}

type mockPublisher struct {
	published []models.FleetSnapshot
	err       error
}

func (m *mockPublisher) Publish(snapshot models.FleetSnapshot) error {
	m.published = append(m.published, snapshot)
	return m.err
}

func TestRun_PublishesSnapshot(t *testing.T) {
	snapshot := models.FleetSnapshot{
		FetchedAt: time.Now().UTC(),
		Ships:     []models.ShipStatus{{Hull: "CVN68"}},
	}
	scraper := &mockScraper{snapshot: snapshot}
	publisher := &mockPublisher{}

	task := NewScrapePublishTask(scraper, publisher, time.Hour)
	require.NoError(t, task.Run(context.Background()))

	require.Len(t, publisher.published, 1)
	assert.Equal(t, "CVN68", publisher.published[0].Ships[0].Hull)
}

func TestRun_EmptySnapshotIsStillPublished(t *testing.T) {
	scraper := &mockScraper{snapshot: models.FleetSnapshot{FetchedAt: time.Now().UTC()}}
	publisher := &mockPublisher{}

	task := NewScrapePublishTask(scraper, publisher, time.Hour)
	require.NoError(t, task.Run(context.Background()))

	assert.Len(t, publisher.published, 1)
}

func TestRun_ScrapeFailureSkipsPublish(t *testing.T) {
	scraper := &mockScraper{err: errors.New("network down")}
	publisher := &mockPublisher{}

	task := NewScrapePublishTask(scraper, publisher, time.Hour)
	err := task.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "scrape failed")
	assert.Empty(t, publisher.published)
}

func TestRun_PublishFailureIsReported(t *testing.T) {
	scraper := &mockScraper{snapshot: models.FleetSnapshot{FetchedAt: time.Now().UTC()}}
	publisher := &mockPublisher{err: errors.New("disk full")}

	task := NewScrapePublishTask(scraper, publisher, time.Hour)
	err := task.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "publish failed")
}

func TestRun_FailedScrapeLeavesExistingOutputUntouched(t *testing.T) {
	dir := t.TempDir()
	pagePath := filepath.Join(dir, "index.html")
	previous := []byte("<html>previous run</html>")
	require.NoError(t, os.WriteFile(pagePath, previous, 0o644))

	scraper := &mockScraper{err: errors.New("connect timeout")}
	task := NewScrapePublishTask(scraper, render.NewRenderer(pagePath, "", ""), time.Hour)

	require.Error(t, task.Run(context.Background()))

	got, err := os.ReadFile(pagePath)
	require.NoError(t, err)
	assert.Equal(t, previous, got)
}

func TestTaskMetadata(t *testing.T) {
	task := NewScrapePublishTask(&mockScraper{}, &mockPublisher{}, 30*time.Minute)

	assert.Equal(t, "scrape_publish", task.Name())
	assert.Equal(t, 30*time.Minute, task.Interval())
}
