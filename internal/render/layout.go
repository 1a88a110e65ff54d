package render

import (
	"math"

	"fleettrack/internal/models"
)

// OffsetTier sets the ring distance used while the crowd at a location
// stays at or below MaxCount. Tiers are checked in order; crowds past
// the last tier use MaxDistance.
type OffsetTier struct {
	MaxCount int
	Distance float64
}

// OffsetProfile controls how ships sharing a location are spread on the
// globe. The wobble terms vary the ring radius between neighbors so
// markers never sit on a perfect circle.
type OffsetProfile struct {
	Tiers        []OffsetTier
	MaxDistance  float64
	WobbleFactor float64
	WobblePeriod int
}

// CapitalShipOffsets spreads the small capital-ship fleet on wide rings.
var CapitalShipOffsets = OffsetProfile{
	Tiers:        []OffsetTier{{3, 3.0}, {5, 4.0}, {8, 5.0}},
	MaxDistance:  6.0,
	WobbleFactor: 0.15,
	WobblePeriod: 2,
}

// DestroyerOffsets keeps rings tighter: ports like Norfolk and San Diego
// hold a dozen or more destroyers at a time.
var DestroyerOffsets = OffsetProfile{
	Tiers:        []OffsetTier{{3, 2.0}, {6, 2.5}, {10, 3.0}, {15, 3.5}},
	MaxDistance:  4.0,
	WobbleFactor: 0.1,
	WobblePeriod: 3,
}

func (p OffsetProfile) distance(count int) float64 {
	for _, tier := range p.Tiers {
		if count <= tier.MaxCount {
			return tier.Distance
		}
	}
	return p.MaxDistance
}

// ApplyLocationOffsets spreads ships that share a location onto a circle
// around the location's center so markers stay distinguishable on the
// globe. A ship alone at its location keeps its true coordinates. Only
// the display coordinates are touched.
func ApplyLocationOffsets(ships []models.ShipStatus, profile OffsetProfile) {
	groups := make(map[string][]int)
	for i, ship := range ships {
		groups[ship.Location] = append(groups[ship.Location], i)
	}

	for _, indexes := range groups {
		count := len(indexes)
		if count == 1 {
			i := indexes[0]
			ships[i].DisplayLat = ships[i].Lat
			ships[i].DisplayLon = ships[i].Lon
			continue
		}

		offsetDistance := profile.distance(count)
		for j, i := range indexes {
			angle := (2 * math.Pi * float64(j)) / float64(count)
			radius := offsetDistance * (1.0 + profile.WobbleFactor*float64(j%profile.WobblePeriod))
			ships[i].DisplayLat = ships[i].Lat + radius*math.Sin(angle)
			ships[i].DisplayLon = ships[i].Lon + radius*math.Cos(angle)
		}
	}
}
