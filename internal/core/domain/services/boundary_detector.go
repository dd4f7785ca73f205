package services

import (
	"fmt"
	"math"

	"geozone/internal/core/domain/model/kernel"
	"geozone/internal/core/domain/model/zone"
	"geozone/internal/pkg/errs"
)

// DefaultBufferKm is the boundary alert buffer applied when callers have no
// configured override.
const DefaultBufferKm = 0.5

// ErrZoneInactive is returned when running boundary detection against an
// inactive zone. Callers distinguish "no alerts" from "zone not eligible".
var ErrZoneInactive = errs.NewValueIsInvalidError("zone is inactive")

// TrackedEntity is the detector's view of a moving entity: identity, last
// known position, and whether its lifecycle already ended. Both the HTTP
// boundary-check endpoint and the periodic scan job feed this shape.
type TrackedEntity struct {
	ID       kernel.UUID
	Location kernel.Coordinate
	Terminal bool
}

// BoundaryAlert signals that an entity is outside a zone but within the
// alert buffer of its boundary. Alerts are ephemeral per detection pass;
// persistence and notification belong to collaborators.
type BoundaryAlert struct {
	EntityID       kernel.UUID
	ZoneID         kernel.UUID
	DistanceMeters int
	Location       kernel.Coordinate
}

// BoundaryDetector finds entities about to cross a zone boundary.
type BoundaryDetector struct{}

// NewBoundaryDetector creates a BoundaryDetector.
func NewBoundaryDetector() *BoundaryDetector {
	return &BoundaryDetector{}
}

// Detect runs one detection pass of the entities against the zone. An
// inactive zone is rejected with ErrZoneInactive. Entities in a terminal
// state are skipped. An alert is raised iff the entity is outside the
// polygon and within bufferKm of its boundary; the alert distance is the
// haversine distance to the nearest boundary point, rounded to meters.
func (d *BoundaryDetector) Detect(
	z *zone.Zone,
	entities []TrackedEntity,
	bufferKm float64,
) ([]BoundaryAlert, error) {
	if err := z.Validate(); err != nil {
		return nil, err
	}
	if !z.IsActive() {
		return nil, ErrZoneInactive
	}
	if bufferKm < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"bufferKm", fmt.Errorf("%f is negative", bufferKm))
	}

	polygon := z.Polygon()

	var alerts []BoundaryAlert
	for _, entity := range entities {
		if entity.Terminal {
			continue
		}
		if err := entity.Location.Validate(); err != nil {
			return nil, err
		}

		inZone, err := polygon.Contains(entity.Location)
		if err != nil {
			return nil, err
		}
		if inZone {
			continue
		}

		nearZone, err := polygon.IsNear(entity.Location, bufferKm)
		if err != nil {
			return nil, err
		}
		if !nearZone {
			continue
		}

		nearest, err := polygon.NearestPoint(entity.Location)
		if err != nil {
			return nil, err
		}
		distanceKm, err := entity.Location.HaversineKm(nearest)
		if err != nil {
			return nil, err
		}

		alerts = append(alerts, BoundaryAlert{
			EntityID:       entity.ID,
			ZoneID:         z.ID(),
			DistanceMeters: int(math.Round(distanceKm * 1000)),
			Location:       entity.Location,
		})
	}

	return alerts, nil
}
