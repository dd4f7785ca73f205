package zone

import (
	"errors"

	"geozone/internal/core/domain/model/kernel"
	"geozone/internal/pkg/errs"
	"geozone/internal/pkg/guard"
)

var (
	// ErrZoneIsNotConstructed is returned when using an improperly
	// initialized Zone.
	ErrZoneIsNotConstructed = errors.New("Zone must be created via NewZone or RestoreZone constructor")
	// ErrNameIsRequired is returned when attempting to create a zone
	// without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Zone is the aggregate root for a delivery zone: a named geofence polygon
// with an active flag and the set of couriers currently assigned to it.
//
// Invariants:
//   - A zone always holds a valid polygon; replacing it with a degenerate
//     polygon (<3 vertices) is rejected and leaves the previous one intact.
//   - Courier assignment is a set: assigning an already-assigned courier or
//     unassigning an absent one is a no-op, not an error.
//   - New zones are active by default.
type Zone struct {
	// id uniquely identifies the zone
	id kernel.UUID
	// name is the human-readable zone name
	name string
	// polygon is the geofence boundary
	polygon kernel.Polygon
	// active marks whether the zone participates in suggestion and alerting
	active bool
	// courierIDs is the set of assigned couriers, keyed by their string form
	courierIDs map[string]kernel.UUID
	// guard ensures the zone was properly constructed
	guard guard.ConstructorGuard
}

// NewZone creates an active Zone with the given identity, name, and polygon.
// Returns aggregated validation errors when any input is invalid.
func NewZone(id kernel.UUID, name string, polygon kernel.Polygon) (*Zone, error) {
	z := &Zone{
		active:     true,
		courierIDs: make(map[string]kernel.UUID),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		z.setID(id),
		z.setName(name),
		z.setPolygon(polygon),
	); err != nil {
		return nil, err
	}

	return z, nil
}

// RestoreZone reconstructs a Zone from persistence, including its active
// flag and assigned couriers. Unlike NewZone it does not force the zone
// active.
func RestoreZone(
	id kernel.UUID,
	name string,
	polygon kernel.Polygon,
	active bool,
	courierIDs []kernel.UUID,
) (*Zone, error) {
	z, err := NewZone(id, name, polygon)
	if err != nil {
		return nil, err
	}

	z.active = active
	for _, courierID := range courierIDs {
		if err = z.AssignCourier(courierID); err != nil {
			return nil, err
		}
	}

	return z, nil
}

// Validate ensures the Zone was created via one of its constructors.
func (z *Zone) Validate() error {
	if z == nil {
		return ErrZoneIsNotConstructed
	}
	return z.guard.Validate(ErrZoneIsNotConstructed)
}

// ID returns the zone's unique identifier.
func (z *Zone) ID() kernel.UUID {
	return z.id
}

// Name returns the zone's name.
func (z *Zone) Name() string {
	return z.name
}

// Polygon returns the zone's geofence boundary.
func (z *Zone) Polygon() kernel.Polygon {
	return z.polygon
}

// IsActive reports whether the zone participates in suggestion and alerting.
func (z *Zone) IsActive() bool {
	return z.active
}

// Activate marks the zone active. Idempotent.
func (z *Zone) Activate() {
	z.active = true
}

// Deactivate marks the zone inactive. Idempotent. Inactive zones are never
// suggested and raise no boundary alerts.
func (z *Zone) Deactivate() {
	z.active = false
}

// Rename changes the zone's name. An empty name is rejected.
func (z *Zone) Rename(name string) error {
	return z.setName(name)
}

// ReplacePolygon swaps the zone's boundary for a new one. Invalid polygons
// are rejected, leaving the current boundary untouched.
func (z *Zone) ReplacePolygon(polygon kernel.Polygon) error {
	return z.setPolygon(polygon)
}

// AssignCourier adds a courier to the zone. Assigning an already-assigned
// courier is a no-op.
func (z *Zone) AssignCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	z.courierIDs[courierID.String()] = courierID
	return nil
}

// UnassignCourier removes a courier from the zone. Removing an absent
// courier is a no-op.
func (z *Zone) UnassignCourier(courierID kernel.UUID) {
	delete(z.courierIDs, courierID.String())
}

// HasCourier reports whether the courier is assigned to the zone.
func (z *Zone) HasCourier(courierID kernel.UUID) bool {
	_, ok := z.courierIDs[courierID.String()]
	return ok
}

// CourierIDs returns the assigned couriers in unspecified order.
func (z *Zone) CourierIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(z.courierIDs))
	for _, id := range z.courierIDs {
		ids = append(ids, id)
	}
	return ids
}

// ActiveCourierCount returns the number of couriers assigned to the zone.
// Used by the suggestion engine as a ranking tiebreaker.
func (z *Zone) ActiveCourierCount() int {
	return len(z.courierIDs)
}

// IsEqual compares two zones by identity.
func (z *Zone) IsEqual(other *Zone) bool {
	return other != nil && z.id.IsEqual(other.id)
}

func (z *Zone) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	z.id = id
	return nil
}

func (z *Zone) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	z.name = name
	return nil
}

func (z *Zone) setPolygon(polygon kernel.Polygon) error {
	if err := polygon.Validate(); err != nil {
		return err
	}
	z.polygon = polygon
	return nil
}
