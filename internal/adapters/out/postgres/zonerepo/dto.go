// Package zonerepo provides data transfer objects and mapping functions for
// zone persistence. The geofence polygon is stored as a JSONB vertex array;
// courier assignments live in a child table with cascading deletes.
package zonerepo

import (
	"encoding/json"

	"geozone/internal/core/domain/model/kernel"
	"geozone/internal/core/domain/model/zone"

	"github.com/google/uuid"
)

// ZoneDTO represents the database structure for persisting zone aggregates.
type ZoneDTO struct {
	ID       uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name     string           `gorm:"type:varchar(255);not null"`
	Active   bool             `gorm:"not null;index"`
	Polygon  string           `gorm:"type:jsonb;not null"`
	Couriers []ZoneCourierDTO `gorm:"foreignKey:ZoneID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "zones".
func (ZoneDTO) TableName() string {
	return "zones"
}

// ZoneCourierDTO represents one courier assignment within a zone.
type ZoneCourierDTO struct {
	ZoneID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourierID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName overrides GORM's default naming to use "zone_couriers".
func (ZoneCourierDTO) TableName() string {
	return "zone_couriers"
}

// vertexDTO is the JSONB form of one polygon vertex.
type vertexDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// fromDomain converts a zone aggregate to its database representation.
func fromDomain(aggregate *zone.Zone) (ZoneDTO, error) {
	zoneID := aggregate.ID().Bytes()

	vertices := aggregate.Polygon().Vertices()
	rawVertices := make([]vertexDTO, 0, len(vertices))
	for _, v := range vertices {
		rawVertices = append(rawVertices, vertexDTO{
			Lat: v.Latitude(),
			Lng: v.Longitude(),
		})
	}

	polygonJSON, err := json.Marshal(rawVertices)
	if err != nil {
		return ZoneDTO{}, err
	}

	courierIDs := aggregate.CourierIDs()
	couriers := make([]ZoneCourierDTO, 0, len(courierIDs))
	for _, courierID := range courierIDs {
		couriers = append(couriers, ZoneCourierDTO{
			ZoneID:    zoneID,
			CourierID: courierID.Bytes(),
		})
	}

	return ZoneDTO{
		ID:       zoneID,
		Name:     aggregate.Name(),
		Active:   aggregate.IsActive(),
		Polygon:  string(polygonJSON),
		Couriers: couriers,
	}, nil
}

// toDomain converts a database DTO back to a zone aggregate using
// RestoreZone.
func toDomain(dto ZoneDTO) (*zone.Zone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var rawVertices []vertexDTO
	if err = json.Unmarshal([]byte(dto.Polygon), &rawVertices); err != nil {
		return nil, err
	}

	vertices := make([]kernel.Coordinate, 0, len(rawVertices))
	for _, raw := range rawVertices {
		coord, coordErr := kernel.NewCoordinate(raw.Lat, raw.Lng)
		if coordErr != nil {
			return nil, coordErr
		}
		vertices = append(vertices, coord)
	}

	polygon, err := kernel.NewPolygon(vertices)
	if err != nil {
		return nil, err
	}

	courierIDs := make([]kernel.UUID, 0, len(dto.Couriers))
	for _, courier := range dto.Couriers {
		courierID, courierErr := kernel.UUIDFromBytes(courier.CourierID[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierIDs = append(courierIDs, courierID)
	}

	return zone.RestoreZone(id, dto.Name, polygon, dto.Active, courierIDs)
}
