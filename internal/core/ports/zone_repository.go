// Package ports defines the contracts between the geofencing core and its
// infrastructure: repositories for the zone and delivery aggregates, the
// transactional unit of work, and the event publisher feeding the
// real-time hub.
package ports

import (
	"context"

	"geozone/internal/core/domain/model/kernel"
	"geozone/internal/core/domain/model/zone"
)

// ZoneRepository defines the persistence contract for zone aggregates.
type ZoneRepository interface {
	// Add persists a new zone aggregate to storage.
	Add(ctx context.Context, aggregate *zone.Zone) error

	// Update persists changes to an existing zone aggregate, including its
	// polygon, active flag, and courier assignments.
	Update(ctx context.Context, aggregate *zone.Zone) error

	// Delete removes a zone aggregate from storage.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a zone aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such zone exists.
	Get(ctx context.Context, id kernel.UUID) (*zone.Zone, error)

	// GetAllActive retrieves every active zone. Used by the suggestion
	// engine and the boundary scan; inactive zones never reach either.
	GetAllActive(ctx context.Context) ([]*zone.Zone, error)
}
