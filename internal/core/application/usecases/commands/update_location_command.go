package commands

import (
	"errors"

	"geozone/internal/core/domain/model/kernel"
	"geozone/internal/pkg/guard"
)

var ErrUpdateLocationCommandIsNotConstructed = errors.New(
	"UpdateLocationCommand must be created via NewUpdateLocationCommand constructor",
)

// UpdateLocationCommand represents an inbound position report for a moving
// entity. Coordinates are validated here, at the edge, so handlers never see
// an out-of-range position.
type UpdateLocationCommand struct { //nolint:recvcheck //using for validation
	entityID kernel.UUID
	location kernel.Coordinate

	guard guard.ConstructorGuard
}

// NewUpdateLocationCommand creates a command from a raw position report.
func NewUpdateLocationCommand(
	entityID kernel.UUID,
	latitude, longitude float64,
) (UpdateLocationCommand, error) {
	cmd := UpdateLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	location, locationErr := kernel.NewCoordinate(latitude, longitude)
	if err := errors.Join(cmd.setEntityID(entityID), locationErr); err != nil {
		return UpdateLocationCommand{}, err
	}

	cmd.location = location
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLocationCommandIsNotConstructed)
}

// EntityID returns the moving entity's identifier.
func (c UpdateLocationCommand) EntityID() kernel.UUID {
	return c.entityID
}

// Location returns the reported position.
func (c UpdateLocationCommand) Location() kernel.Coordinate {
	return c.location
}

func (c *UpdateLocationCommand) setEntityID(entityID kernel.UUID) error {
	if err := entityID.Validate(); err != nil {
		return err
	}
	c.entityID = entityID
	return nil
}
