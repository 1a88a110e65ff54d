package render

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleettrack/internal/models"
)

func sampleSnapshot(fetchedAt time.Time) models.FleetSnapshot {
	return models.FleetSnapshot{
		FetchedAt: fetchedAt,
		Ships: []models.ShipStatus{
			{
				Hull: "CVN68", Name: "USS Nimitz", ShipClass: "Nimitz", ShipType: "CVN",
				Location: "Bremerton / Kitsap", Lat: 47.5673, Lon: -122.6329, Region: "CONUS",
				Date: "Jun 1", Status: "Jun 1, moored at Bremerton",
				SourceURL: "http://uscarriers.net/cvn68history.htm",
			},
			{
				Hull: "LHD1", Name: "USS Wasp", ShipClass: "Wasp", ShipType: "LHD",
				Location: "Mediterranean", Lat: 35.0, Lon: 18.0, Region: "EUCOM",
				Date: "Jun 2", Status: "Jun 2, underway in the Mediterranean",
				SourceURL: "http://uscarriers.net/lhd1history.htm",
			},
		},
	}
}

func mixedSnapshot(fetchedAt time.Time) models.FleetSnapshot {
	snapshot := sampleSnapshot(fetchedAt)
	snapshot.Ships = append(snapshot.Ships,
		models.ShipStatus{
			Hull: "DDG51", Name: "USS Arleigh Burke", ShipClass: "Arleigh Burke", ShipType: "DDG", Flight: "I",
			Location: "Red Sea", Lat: 20.0, Lon: 38.0, Region: "CENTCOM",
			Date: "Jun 3", Status: "Jun 3, transited the Red Sea",
			SourceURL: "http://uscarriers.net/ddg51history.htm",
		},
		models.ShipStatus{
			Hull: "DDG1000", Name: "USS Zumwalt", ShipClass: "Zumwalt", ShipType: "DDG", Flight: "N/A",
			Location: "San Diego", Lat: 32.7157, Lon: -117.1611, Region: "CONUS",
			Date: "Jun 4", Status: "Jun 4, moored at Naval Base San Diego",
			SourceURL: "http://uscarriers.net/ddg1000history.htm",
		},
	)
	return snapshot
}

func TestPublish_ContainsEveryShip(t *testing.T) {
	dir := t.TempDir()
	pagePath := filepath.Join(dir, "index.html")
	feedPath := filepath.Join(dir, "feed.xml")

	fetchedAt := time.Now().UTC()
	r := NewRenderer(pagePath, "", feedPath)
	require.NoError(t, r.Publish(sampleSnapshot(fetchedAt)))

	page, err := os.ReadFile(pagePath)
	require.NoError(t, err)
	html := string(page)

	assert.Contains(t, html, "CVN68")
	assert.Contains(t, html, "LHD1")
	assert.Contains(t, html, "Jun 1, moored at Bremerton")
	assert.Contains(t, html, "Jun 2, underway in the Mediterranean")
	assert.Contains(t, html, fetchedAt.Format(TimestampFormat))
	assert.NotContains(t, html, "No ships tracked")

	feed, err := os.ReadFile(feedPath)
	require.NoError(t, err)
	assert.Contains(t, string(feed), "CVN68")
	assert.Contains(t, string(feed), "http://uscarriers.net/lhd1history.htm")
}

func TestPublish_SplitsFleetAcrossPages(t *testing.T) {
	dir := t.TempDir()
	pagePath := filepath.Join(dir, "index.html")
	destroyerPath := filepath.Join(dir, "destroyers.html")
	feedPath := filepath.Join(dir, "feed.xml")

	fetchedAt := time.Now().UTC()
	r := NewRenderer(pagePath, destroyerPath, feedPath)
	require.NoError(t, r.Publish(mixedSnapshot(fetchedAt)))

	page, err := os.ReadFile(pagePath)
	require.NoError(t, err)
	capital := string(page)
	assert.Contains(t, capital, "CVN68")
	assert.NotContains(t, capital, "DDG51")

	page, err = os.ReadFile(destroyerPath)
	require.NoError(t, err)
	destroyers := string(page)
	assert.Contains(t, destroyers, "DDG51")
	assert.Contains(t, destroyers, "DDG1000")
	assert.Contains(t, destroyers, "Jun 3, transited the Red Sea")
	assert.Contains(t, destroyers, fetchedAt.Format(TimestampFormat))
	assert.NotContains(t, destroyers, "CVN68")

	// One feed covers both fleets.
	feed, err := os.ReadFile(feedPath)
	require.NoError(t, err)
	assert.Contains(t, string(feed), "CVN68")
	assert.Contains(t, string(feed), "DDG51")
}

func TestPublish_DestroyerPageStats(t *testing.T) {
	dir := t.TempDir()
	pagePath := filepath.Join(dir, "index.html")
	destroyerPath := filepath.Join(dir, "destroyers.html")

	r := NewRenderer(pagePath, destroyerPath, "")
	require.NoError(t, r.Publish(mixedSnapshot(time.Now().UTC())))

	page, err := os.ReadFile(destroyerPath)
	require.NoError(t, err)
	html := string(page)

	assert.Contains(t, html, `<div class="stat-value">2</div>`)
	assert.Contains(t, html, `<div class="stat-value burke">1</div>`)
	assert.Contains(t, html, `<div class="stat-value zumwalt">1</div>`)
	// Flight filters are part of the destroyer page chrome.
	assert.Contains(t, html, `data-filter="IIA"`)
}

func TestPublish_EmptyDestroyerFleet(t *testing.T) {
	dir := t.TempDir()
	pagePath := filepath.Join(dir, "index.html")
	destroyerPath := filepath.Join(dir, "destroyers.html")

	fetchedAt := time.Now().UTC()
	r := NewRenderer(pagePath, destroyerPath, "")
	// Capital ships only: the destroyer page still renders, with a notice.
	require.NoError(t, r.Publish(sampleSnapshot(fetchedAt)))

	page, err := os.ReadFile(destroyerPath)
	require.NoError(t, err)
	html := string(page)

	assert.Contains(t, html, "No destroyers tracked in this run")
	assert.Contains(t, html, fetchedAt.Format(TimestampFormat))
	assert.Contains(t, html, "const shipsData = []")
}

func TestPublish_EmptySnapshot(t *testing.T) {
	dir := t.TempDir()
	pagePath := filepath.Join(dir, "index.html")

	fetchedAt := time.Now().UTC()
	r := NewRenderer(pagePath, "", "")
	require.NoError(t, r.Publish(models.FleetSnapshot{FetchedAt: fetchedAt}))

	page, err := os.ReadFile(pagePath)
	require.NoError(t, err)
	html := string(page)

	assert.Contains(t, html, "No ships tracked in this run")
	assert.Contains(t, html, fetchedAt.Format(TimestampFormat))
	// An empty snapshot still embeds a valid (empty) dataset.
	assert.Contains(t, html, "const shipsData = []")
}

func TestPublish_ReplacesPreviousDocument(t *testing.T) {
	dir := t.TempDir()
	pagePath := filepath.Join(dir, "index.html")
	r := NewRenderer(pagePath, "", "")

	first := sampleSnapshot(time.Now().UTC())
	require.NoError(t, r.Publish(first))

	second := models.FleetSnapshot{
		FetchedAt: time.Now().UTC(),
		Ships: []models.ShipStatus{
			{
				Hull: "LHA6", Name: "USS America", ShipClass: "America", ShipType: "LHA",
				Location: "Sasebo", Lat: 33.1595, Lon: 129.7235, Region: "WESTPAC",
				Date: "Jul 7", Status: "Jul 7, moored at Sasebo",
				SourceURL: "http://uscarriers.net/lha6history.htm",
			},
		},
	}
	require.NoError(t, r.Publish(second))

	page, err := os.ReadFile(pagePath)
	require.NoError(t, err)
	html := string(page)

	assert.Contains(t, html, "LHA6")
	assert.NotContains(t, html, "CVN68")
	assert.NotContains(t, html, "LHD1")
}

func TestPublish_TimestampWithinRunWindow(t *testing.T) {
	dir := t.TempDir()
	pagePath := filepath.Join(dir, "index.html")

	before := time.Now().UTC()
	snapshot := sampleSnapshot(time.Now().UTC())
	r := NewRenderer(pagePath, "", "")
	require.NoError(t, r.Publish(snapshot))
	after := time.Now().UTC()

	assert.False(t, snapshot.FetchedAt.Before(before))
	assert.False(t, snapshot.FetchedAt.After(after))

	page, err := os.ReadFile(pagePath)
	require.NoError(t, err)
	assert.Contains(t, string(page), snapshot.FetchedAt.Format(TimestampFormat))
}

func TestPublish_FeedFailureDoesNotFailRun(t *testing.T) {
	dir := t.TempDir()
	pagePath := filepath.Join(dir, "index.html")
	// Feed path points into a directory that does not exist.
	feedPath := filepath.Join(dir, "missing", "feed.xml")

	r := NewRenderer(pagePath, "", feedPath)
	require.NoError(t, r.Publish(sampleSnapshot(time.Now().UTC())))

	_, err := os.Stat(pagePath)
	assert.NoError(t, err)
}

func TestPublish_StatsCounts(t *testing.T) {
	dir := t.TempDir()
	pagePath := filepath.Join(dir, "index.html")

	r := NewRenderer(pagePath, "", "")
	require.NoError(t, r.Publish(sampleSnapshot(time.Now().UTC())))

	page, err := os.ReadFile(pagePath)
	require.NoError(t, err)
	html := string(page)

	assert.Contains(t, html, `<div class="stat-value">2</div>`)
	assert.Contains(t, html, `<div class="stat-value cvn">1</div>`)
	assert.Contains(t, html, `<div class="stat-value amphib">1</div>`)
}
