package services

import (
	"math"
	"sort"

	"geozone/internal/core/domain/model/kernel"
	"geozone/internal/core/domain/model/zone"
)

// ZoneSuggestion is one ranked candidate zone for a location.
type ZoneSuggestion struct {
	ZoneID         kernel.UUID
	ZoneName       string
	DistanceMeters int
	IsInZone       bool
	ActiveCouriers int
}

// ZoneSuggester ranks zones for a location so dispatch can pick an
// assignment target.
type ZoneSuggester struct{}

// NewZoneSuggester creates a ZoneSuggester.
func NewZoneSuggester() *ZoneSuggester {
	return &ZoneSuggester{}
}

// Suggest returns the zones ranked for the given location. Inactive zones are
// skipped, zones whose centroid lies farther than maxDistanceKm are filtered
// out, and the remainder is sorted by: containing zones first, then ascending
// centroid distance, ties broken by descending assigned courier count.
//
// The distance is measured to the vertex-mean centroid, which over-ranks no
// one at delivery-zone scale but is not the true area centroid. An empty
// result is a valid answer, not an error.
func (s *ZoneSuggester) Suggest(
	location kernel.Coordinate,
	zones []*zone.Zone,
	maxDistanceKm float64,
) ([]ZoneSuggestion, error) {
	if err := location.Validate(); err != nil {
		return nil, err
	}

	type ranked struct {
		suggestion ZoneSuggestion
		distanceKm float64
	}

	candidates := make([]ranked, 0, len(zones))
	for _, z := range zones {
		if err := z.Validate(); err != nil {
			return nil, err
		}
		if !z.IsActive() {
			continue
		}

		centroid, err := z.Polygon().Centroid()
		if err != nil {
			return nil, err
		}

		distanceKm, err := location.HaversineKm(centroid)
		if err != nil {
			return nil, err
		}
		if distanceKm > maxDistanceKm {
			continue
		}

		inZone, err := z.Polygon().Contains(location)
		if err != nil {
			return nil, err
		}

		candidates = append(candidates, ranked{
			suggestion: ZoneSuggestion{
				ZoneID:         z.ID(),
				ZoneName:       z.Name(),
				DistanceMeters: int(math.Round(distanceKm * 1000)),
				IsInZone:       inZone,
				ActiveCouriers: z.ActiveCourierCount(),
			},
			distanceKm: distanceKm,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.suggestion.IsInZone != b.suggestion.IsInZone {
			return a.suggestion.IsInZone
		}
		if a.distanceKm != b.distanceKm {
			return a.distanceKm < b.distanceKm
		}
		return a.suggestion.ActiveCouriers > b.suggestion.ActiveCouriers
	})

	suggestions := make([]ZoneSuggestion, 0, len(candidates))
	for _, c := range candidates {
		suggestions = append(suggestions, c.suggestion)
	}
	return suggestions, nil
}
