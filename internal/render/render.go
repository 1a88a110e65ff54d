package render

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"time"

	"fleettrack/internal/models"
)

//go:embed page.html.tmpl
var pageSource string

//go:embed destroyers.html.tmpl
var destroyerSource string

var (
	pageTmpl      = template.Must(template.New("page").Parse(pageSource))
	destroyerTmpl = template.Must(template.New("destroyers").Parse(destroyerSource))
)

// TimestampFormat is the human-readable "last updated" format shown on
// the page and used in tests. Rendering always works on UTC times, so
// the zone renders as "UTC".
const TimestampFormat = "2006-01-02 15:04 MST"

// Renderer turns a FleetSnapshot into the published artifacts: the
// capital-ship tracker page, the destroyer tracker page, and optionally
// an Atom feed next to them. All are unconditionally overwritten on
// every run; there is a single writer per output path by design.
type Renderer struct {
	outputPath    string
	destroyerPath string
	feedPath      string
}

// NewRenderer creates a renderer writing the capital-ship page to
// outputPath and the destroyer page to destroyerPath. An empty
// destroyerPath or feedPath disables that artifact.
func NewRenderer(outputPath, destroyerPath, feedPath string) *Renderer {
	return &Renderer{outputPath: outputPath, destroyerPath: destroyerPath, feedPath: feedPath}
}

type pageData struct {
	Timestamp           string
	TotalShips          int
	CarrierCount        int
	AmphibCount         int
	BurkeCount          int
	ZumwaltCount        int
	Empty               bool
	ShipsJSON           template.JS
	LocationSummaryJSON template.JS
}

// Publish renders the snapshot and overwrites the output files. The
// fleet splits by hull type: destroyers go to their own page, everything
// else to the main one. An empty split still produces a valid page
// carrying the run timestamp and a "no ships" notice; a public URL that
// keeps resolving beats a missing page. The feed is secondary: its
// write errors are logged, not returned.
func (r *Renderer) Publish(snapshot models.FleetSnapshot) error {
	capital, destroyers := splitFleet(snapshot.Ships)
	ApplyLocationOffsets(capital, CapitalShipOffsets)
	ApplyLocationOffsets(destroyers, DestroyerOffsets)

	data, err := buildPageData(capital, snapshot.FetchedAt)
	if err != nil {
		return err
	}
	if err := r.writePage(pageTmpl, r.outputPath, data); err != nil {
		return err
	}
	slog.Info("Page published", "path", r.outputPath, "ships", len(capital))

	if r.destroyerPath != "" {
		data, err := buildPageData(destroyers, snapshot.FetchedAt)
		if err != nil {
			return err
		}
		if err := r.writePage(destroyerTmpl, r.destroyerPath, data); err != nil {
			return err
		}
		slog.Info("Destroyer page published", "path", r.destroyerPath, "ships", len(destroyers))
	}

	if r.feedPath != "" {
		if err := r.writeFeed(snapshot); err != nil {
			slog.Warn("Failed to write feed", "path", r.feedPath, "error", err)
		}
	}
	return nil
}

func (r *Renderer) writePage(tmpl *template.Template, path string, data pageData) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// splitFleet copies the snapshot into the two page populations so that
// per-page display offsets never touch the other page's records.
func splitFleet(ships []models.ShipStatus) (capital, destroyers []models.ShipStatus) {
	for _, ship := range ships {
		if ship.ShipType == "DDG" {
			destroyers = append(destroyers, ship)
		} else {
			capital = append(capital, ship)
		}
	}
	return capital, destroyers
}

func buildPageData(ships []models.ShipStatus, fetchedAt time.Time) (pageData, error) {
	if ships == nil {
		ships = []models.ShipStatus{}
	}

	shipsJSON, err := json.Marshal(ships)
	if err != nil {
		return pageData{}, fmt.Errorf("encoding ships: %w", err)
	}

	locationSummary := make(map[string][]string)
	for _, ship := range ships {
		locationSummary[ship.Location] = append(locationSummary[ship.Location], ship.Hull)
	}
	summaryJSON, err := json.Marshal(locationSummary)
	if err != nil {
		return pageData{}, fmt.Errorf("encoding location summary: %w", err)
	}

	counts := models.FleetSnapshot{Ships: ships}
	return pageData{
		Timestamp:           fetchedAt.UTC().Format(TimestampFormat),
		TotalShips:          len(ships),
		CarrierCount:        counts.CarrierCount(),
		AmphibCount:         counts.AmphibCount(),
		BurkeCount:          counts.BurkeCount(),
		ZumwaltCount:        counts.ZumwaltCount(),
		Empty:               len(ships) == 0,
		ShipsJSON:           template.JS(shipsJSON),
		LocationSummaryJSON: template.JS(summaryJSON),
	}, nil
}
