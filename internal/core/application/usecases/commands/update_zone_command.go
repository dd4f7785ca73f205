package commands

import (
	"errors"

	"geozone/internal/core/domain/model/kernel"
	"geozone/internal/pkg/guard"
)

var ErrUpdateZoneCommandIsNotConstructed = errors.New(
	"UpdateZoneCommand must be created via NewUpdateZoneCommand constructor",
)

// UpdateZoneCommand represents a request to replace a zone's name, geofence
// boundary, and active flag.
type UpdateZoneCommand struct { //nolint:recvcheck //using for validation
	zoneID  kernel.UUID
	name    string
	polygon kernel.Polygon
	active  bool

	guard guard.ConstructorGuard
}

// NewUpdateZoneCommand creates a command to update an existing zone.
func NewUpdateZoneCommand(
	zoneID kernel.UUID,
	name string,
	polygon kernel.Polygon,
	active bool,
) (UpdateZoneCommand, error) {
	cmd := UpdateZoneCommand{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setZoneID(zoneID),
		cmd.setName(name),
		cmd.setPolygon(polygon),
	); err != nil {
		return UpdateZoneCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateZoneCommand) Validate() error {
	return c.guard.Validate(ErrUpdateZoneCommandIsNotConstructed)
}

// ZoneID returns the unique identifier for the zone.
func (c UpdateZoneCommand) ZoneID() kernel.UUID {
	return c.zoneID
}

// Name returns the new zone name.
func (c UpdateZoneCommand) Name() string {
	return c.name
}

// Polygon returns the new geofence boundary.
func (c UpdateZoneCommand) Polygon() kernel.Polygon {
	return c.polygon
}

// Active returns the new active flag.
func (c UpdateZoneCommand) Active() bool {
	return c.active
}

func (c *UpdateZoneCommand) setZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}
	c.zoneID = zoneID
	return nil
}

func (c *UpdateZoneCommand) setName(name string) error {
	if name == "" {
		return ErrZoneNameIsRequired
	}
	c.name = name
	return nil
}

func (c *UpdateZoneCommand) setPolygon(polygon kernel.Polygon) error {
	if err := polygon.Validate(); err != nil {
		return err
	}
	c.polygon = polygon
	return nil
}
