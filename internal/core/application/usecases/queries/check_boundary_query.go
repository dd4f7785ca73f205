package queries

import (
	"errors"

	"geozone/internal/core/domain/model/kernel"
	"geozone/internal/core/domain/services"
	"geozone/internal/pkg/guard"
)

var ErrCheckBoundaryQueryIsNotConstructed = errors.New(
	"CheckBoundaryQuery must be created via NewCheckBoundaryQuery constructor",
)

// CheckBoundaryQuery asks which of the given entities are about to cross
// the boundary of one zone.
type CheckBoundaryQuery struct { //nolint:recvcheck //using for validation
	zoneID   kernel.UUID
	entities []services.TrackedEntity

	guard guard.ConstructorGuard
}

// NewCheckBoundaryQuery creates a boundary check for a zone and a snapshot
// of tracked entities. An empty entity list is a valid, trivially empty
// check.
func NewCheckBoundaryQuery(
	zoneID kernel.UUID,
	entities []services.TrackedEntity,
) (CheckBoundaryQuery, error) {
	if err := zoneID.Validate(); err != nil {
		return CheckBoundaryQuery{}, err
	}

	copied := make([]services.TrackedEntity, len(entities))
	copy(copied, entities)

	return CheckBoundaryQuery{
		zoneID:   zoneID,
		entities: copied,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CheckBoundaryQuery) Validate() error {
	return q.guard.Validate(ErrCheckBoundaryQueryIsNotConstructed)
}

// ZoneID returns the zone under check.
func (q CheckBoundaryQuery) ZoneID() kernel.UUID {
	return q.zoneID
}

// Entities returns the tracked entity snapshot.
func (q CheckBoundaryQuery) Entities() []services.TrackedEntity {
	return q.entities
}

// CheckBoundaryQueryResponse carries the checked zone's identity and the
// alerts raised by the detection pass.
type CheckBoundaryQueryResponse struct {
	ZoneID   kernel.UUID
	ZoneName string
	Alerts   []services.BoundaryAlert
}
