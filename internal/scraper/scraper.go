package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"fleettrack/internal/models"
	"fleettrack/internal/registry"
)

// HistoryFetcher is the narrow surface between the HTTP layer and the
// fleet scan; tests substitute it for the real client.
type HistoryFetcher interface {
	FetchHistoryText(ctx context.Context, url string) (string, error)
}

// Scraper produces one FleetSnapshot per run by scanning every ship's
// history page in registry order. Fetches are sequential and paced by a
// rate limiter to stay polite to the source site.
type Scraper struct {
	fetcher HistoryFetcher
	ships   []registry.Ship
	baseURL string
	limiter *rate.Limiter
}

// New creates a scraper over the given ship list. requestsPerSecond <= 0
// disables pacing.
func New(fetcher HistoryFetcher, ships []registry.Ship, baseURL string, requestsPerSecond float64) *Scraper {
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}
	return &Scraper{
		fetcher: fetcher,
		ships:   ships,
		baseURL: baseURL,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Scrape scans the fleet and returns a snapshot with one record per
// ship whose history page could be fetched, in ship-list order. A
// per-ship fetch failure is logged and the ship skipped; the run only
// fails when no page at all could be fetched, so the external scheduler
// can retry the whole job.
func (s *Scraper) Scrape(ctx context.Context) (models.FleetSnapshot, error) {
	snapshot := models.FleetSnapshot{FetchedAt: time.Now().UTC()}

	var lastErr error
	for i, ship := range s.ships {
		if err := s.limiter.Wait(ctx); err != nil {
			return models.FleetSnapshot{}, err
		}

		url := registry.HistoryURL(s.baseURL, ship.Hull)
		slog.Debug("Scanning ship", "hull", ship.Hull, "name", ship.Name, "progress", fmt.Sprintf("%d/%d", i+1, len(s.ships)))

		text, err := s.fetcher.FetchHistoryText(ctx, url)
		if err != nil {
			if ctx.Err() != nil {
				return models.FleetSnapshot{}, ctx.Err()
			}
			lastErr = err
			slog.Warn("Failed to fetch history page", "hull", ship.Hull, "url", url, "error", err)
			continue
		}

		year, status := ParseStatusEntry(text)
		location := CategorizeLocation(status, ship.Homeport)
		date := ExtractDate(status)
		if date == "" {
			date = year
		}

		coords, ok := registry.LocationCoords[location]
		if !ok {
			coords = registry.LocationCoords[registry.HomeportFallback(ship.Homeport)]
		}

		snapshot.Ships = append(snapshot.Ships, models.ShipStatus{
			Hull:       ship.Hull,
			Name:       ship.Name,
			ShipClass:  ship.Class,
			ShipType:   ship.Type,
			Flight:     ship.Flight,
			Location:   location,
			Lat:        coords.Lat,
			Lon:        coords.Lon,
			Region:     coords.Region,
			Date:       date,
			Status:     status,
			SourceURL:  url,
			DisplayLat: coords.Lat,
			DisplayLon: coords.Lon,
		})
		slog.Info("Ship scanned", "hull", ship.Hull, "location", location, "date", date)
	}

	if len(snapshot.Ships) == 0 {
		if lastErr != nil {
			return models.FleetSnapshot{}, fmt.Errorf("no ship pages could be fetched: %w", lastErr)
		}
		return models.FleetSnapshot{}, fmt.Errorf("ship list is empty")
	}

	slog.Info("Fleet scan complete", "ships_tracked", len(snapshot.Ships), "ships_total", len(s.ships))
	return snapshot, nil
}
