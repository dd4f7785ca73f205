package commands

import (
	"errors"

	"geozone/internal/core/domain/model/kernel"
	"geozone/internal/pkg/guard"
)

var (
	ErrCreateZoneCommandIsNotConstructed = errors.New(
		"CreateZoneCommand must be created via NewCreateZoneCommand constructor",
	)
	ErrZoneNameIsRequired = errors.New("zone name is required")
)

// CreateZoneCommand represents a request to register a new delivery zone
// with its geofence boundary.
type CreateZoneCommand struct { //nolint:recvcheck //using for validation
	zoneID  kernel.UUID
	name    string
	polygon kernel.Polygon

	guard guard.ConstructorGuard
}

// NewCreateZoneCommand creates a command to register a new zone. The polygon
// must be a properly constructed geofence boundary; degenerate boundaries
// are rejected here, before any transaction starts.
func NewCreateZoneCommand(
	zoneID kernel.UUID,
	name string,
	polygon kernel.Polygon,
) (CreateZoneCommand, error) {
	cmd := CreateZoneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setZoneID(zoneID),
		cmd.setName(name),
		cmd.setPolygon(polygon),
	); err != nil {
		return CreateZoneCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateZoneCommand) Validate() error {
	return c.guard.Validate(ErrCreateZoneCommandIsNotConstructed)
}

// ZoneID returns the unique identifier for the zone.
func (c CreateZoneCommand) ZoneID() kernel.UUID {
	return c.zoneID
}

// Name returns the human-readable zone name.
func (c CreateZoneCommand) Name() string {
	return c.name
}

// Polygon returns the geofence boundary.
func (c CreateZoneCommand) Polygon() kernel.Polygon {
	return c.polygon
}

func (c *CreateZoneCommand) setZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}
	c.zoneID = zoneID
	return nil
}

func (c *CreateZoneCommand) setName(name string) error {
	if name == "" {
		return ErrZoneNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateZoneCommand) setPolygon(polygon kernel.Polygon) error {
	if err := polygon.Validate(); err != nil {
		return err
	}
	c.polygon = polygon
	return nil
}
