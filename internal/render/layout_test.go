package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fleettrack/internal/models"
)

func shipAt(hull, location string, lat, lon float64) models.ShipStatus {
	return models.ShipStatus{Hull: hull, Location: location, Lat: lat, Lon: lon}
}

func TestApplyLocationOffsets_SingleShipKeepsTrueCoords(t *testing.T) {
	ships := []models.ShipStatus{shipAt("CVN68", "Bremerton / Kitsap", 47.5673, -122.6329)}

	ApplyLocationOffsets(ships, CapitalShipOffsets)

	assert.Equal(t, 47.5673, ships[0].DisplayLat)
	assert.Equal(t, -122.6329, ships[0].DisplayLon)
}

func TestApplyLocationOffsets_CrowdedPortSpreadsMarkers(t *testing.T) {
	ships := []models.ShipStatus{
		shipAt("CVN69", "Norfolk / Portsmouth", 36.9473, -76.3134),
		shipAt("CVN74", "Norfolk / Portsmouth", 36.9473, -76.3134),
		shipAt("LHD3", "Norfolk / Portsmouth", 36.9473, -76.3134),
		shipAt("CVN70", "San Diego", 32.7157, -117.1611),
	}

	ApplyLocationOffsets(ships, CapitalShipOffsets)

	// The lone San Diego ship is untouched.
	assert.Equal(t, 32.7157, ships[3].DisplayLat)
	assert.Equal(t, -117.1611, ships[3].DisplayLon)

	// The three Norfolk ships end up at pairwise distinct positions.
	type point struct{ lat, lon float64 }
	seen := make(map[point]bool)
	for _, s := range ships[:3] {
		p := point{s.DisplayLat, s.DisplayLon}
		assert.False(t, seen[p], "duplicate display position for %s", s.Hull)
		seen[p] = true
		// Offsets stay in the port's neighborhood.
		assert.InDelta(t, s.Lat, s.DisplayLat, 10)
		assert.InDelta(t, s.Lon, s.DisplayLon, 10)
	}
}

func TestApplyLocationOffsets_DestroyerProfileKeepsTightRings(t *testing.T) {
	// A dozen destroyers pierside is normal for Norfolk. The destroyer
	// profile must keep them distinct without flinging markers far from
	// the port.
	ships := make([]models.ShipStatus, 12)
	for i := range ships {
		ships[i] = shipAt("DDG", "Norfolk / Portsmouth", 36.9473, -76.3134)
	}

	ApplyLocationOffsets(ships, DestroyerOffsets)

	type point struct{ lat, lon float64 }
	seen := make(map[point]bool)
	for i, s := range ships {
		p := point{s.DisplayLat, s.DisplayLon}
		assert.False(t, seen[p], "duplicate display position at index %d", i)
		seen[p] = true
		assert.InDelta(t, s.Lat, s.DisplayLat, 5)
		assert.InDelta(t, s.Lon, s.DisplayLon, 5)
	}
}
