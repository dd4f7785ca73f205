// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence.
package deliveryrepo

import (
	"time"

	"geozone/internal/core/domain/model/delivery"
	"geozone/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates, indexed for the status and zone scans the boundary job runs.
type DeliveryDTO struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	CourierID   *uuid.UUID  `gorm:"type:uuid;index"`
	ZoneID      *uuid.UUID  `gorm:"type:uuid;index"`
	Location    LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	Status      int         `gorm:"index"`
	CreatedAt   time.Time
	DeliveredAt *time.Time
}

// TableName overrides GORM's default naming to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// LocationDTO represents the embedded last known position within the
// deliveries table.
type LocationDTO struct {
	Latitude  float64 `gorm:"type:double precision"`
	Longitude float64 `gorm:"type:double precision"`
}

// fromDomain converts a delivery aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	var zoneID *uuid.UUID
	if id := aggregate.Zone(); id != nil {
		raw := id.Bytes()
		zoneID = &raw
	}

	return DeliveryDTO{
		ID:        aggregate.ID().Bytes(),
		CourierID: courierID,
		ZoneID:    zoneID,
		Location: LocationDTO{
			Latitude:  aggregate.Location().Latitude(),
			Longitude: aggregate.Location().Longitude(),
		},
		Status:      int(aggregate.Status()),
		CreatedAt:   aggregate.CreatedAt(),
		DeliveredAt: aggregate.DeliveredAt(),
	}
}

// toDomain converts a database DTO back to a delivery aggregate using
// RestoreDelivery.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	var zoneID *kernel.UUID
	if dto.ZoneID != nil {
		zID, zoneErr := kernel.UUIDFromBytes((*dto.ZoneID)[:])
		if zoneErr != nil {
			return nil, zoneErr
		}
		zoneID = &zID
	}

	location, err := kernel.NewCoordinate(dto.Location.Latitude, dto.Location.Longitude)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id, courierID, zoneID, location,
		delivery.Status(dto.Status), dto.CreatedAt, dto.DeliveredAt,
	)
}
