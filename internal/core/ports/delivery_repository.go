package ports

import (
	"context"

	"geozone/internal/core/domain/model/delivery"
	"geozone/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery
// aggregates.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such delivery exists.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetAllActive retrieves deliveries in a non-terminal status. These are
	// the moving entities the boundary scan tracks.
	GetAllActive(ctx context.Context) ([]*delivery.Delivery, error)

	// GetAllActiveInZone retrieves non-terminal deliveries currently
	// assigned to the given zone.
	GetAllActiveInZone(ctx context.Context, zoneID kernel.UUID) ([]*delivery.Delivery, error)
}
