package models

import "time"

// ShipStatus represents one tracked ship's most recently reported status.
// Scraped fields are kept as free text exactly as extracted from the
// source site; no validation or normalization beyond whitespace trimming
// is applied. JSON tags match the field names the page script expects.
type ShipStatus struct {
	Hull       string  `json:"hull"`        // Hull number (e.g., CVN68)
	Name       string  `json:"name"`        // Ship name (e.g., USS Nimitz)
	ShipClass  string  `json:"ship_class"`  // Class (e.g., Nimitz, Wasp)
	ShipType   string  `json:"ship_type"`   // CVN, LHA, LHD or DDG
	Flight     string  `json:"flight"`      // Arleigh Burke production flight; empty for capital ships
	Location   string  `json:"location"`    // Categorized location tag
	Lat        float64 `json:"lat"`         // True latitude of the location
	Lon        float64 `json:"lon"`         // True longitude of the location
	Region     string  `json:"region"`      // Region tag (CONUS, WESTPAC, ...)
	Date       string  `json:"date"`        // Date of the status entry, as scraped
	Status     string  `json:"status"`      // Raw status entry text
	SourceURL  string  `json:"source_url"`  // History page the entry came from
	DisplayLat float64 `json:"display_lat"` // Render latitude (offset when a port is crowded)
	DisplayLon float64 `json:"display_lon"` // Render longitude
}

// FleetSnapshot is the full ordered result of one scrape run. It lives
// only in memory; the rendered page is the sole persisted artifact.
type FleetSnapshot struct {
	Ships     []ShipStatus
	FetchedAt time.Time
}

// CarrierCount returns the number of CVN hulls in the snapshot.
func (s FleetSnapshot) CarrierCount() int {
	n := 0
	for _, ship := range s.Ships {
		if ship.ShipType == "CVN" {
			n++
		}
	}
	return n
}

// AmphibCount returns the number of LHA/LHD hulls in the snapshot.
func (s FleetSnapshot) AmphibCount() int {
	n := 0
	for _, ship := range s.Ships {
		if ship.ShipType == "LHA" || ship.ShipType == "LHD" {
			n++
		}
	}
	return n
}

// BurkeCount returns the number of Arleigh Burke-class hulls in the
// snapshot.
func (s FleetSnapshot) BurkeCount() int {
	n := 0
	for _, ship := range s.Ships {
		if ship.ShipClass == "Arleigh Burke" {
			n++
		}
	}
	return n
}

// ZumwaltCount returns the number of Zumwalt-class hulls in the snapshot.
func (s FleetSnapshot) ZumwaltCount() int {
	n := 0
	for _, ship := range s.Ships {
		if ship.ShipClass == "Zumwalt" {
			n++
		}
	}
	return n
}
