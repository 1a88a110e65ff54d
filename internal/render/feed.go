package render

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/gorilla/feeds"

	"fleettrack/internal/models"
)

// writeFeed publishes the snapshot as an Atom document next to the
// page, one entry per ship. Feed readers get the same overwrite
// semantics as the page: each run replaces the previous document.
func (r *Renderer) writeFeed(snapshot models.FleetSnapshot) error {
	feed := &feeds.Feed{
		Title:       "U.S. Navy Fleet Tracker",
		Link:        &feeds.Link{Href: "http://uscarriers.net", Rel: "alternate", Type: "text/html"},
		Description: "Latest reported positions of U.S. Navy carriers and amphibious assault ships",
		Updated:     snapshot.FetchedAt,
	}

	for _, ship := range snapshot.Ships {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          fmt.Sprintf("%s?as-of=%s", ship.SourceURL, snapshot.FetchedAt.UTC().Format("2006-01-02")),
			Title:       fmt.Sprintf("%s %s: %s", ship.Hull, ship.Name, ship.Location),
			Link:        &feeds.Link{Href: ship.SourceURL},
			Description: ship.Status,
			Updated:     snapshot.FetchedAt,
		})
	}

	var buf bytes.Buffer
	if err := feed.WriteAtom(&buf); err != nil {
		return fmt.Errorf("encoding feed: %w", err)
	}
	if err := os.WriteFile(r.feedPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", r.feedPath, err)
	}
	slog.Info("Feed published", "path", r.feedPath, "entries", len(feed.Items))
	return nil
}
