package commands

import (
	"errors"

	"geozone/internal/core/domain/model/kernel"
	"geozone/internal/pkg/guard"
)

var ErrRemoveZoneCommandIsNotConstructed = errors.New(
	"RemoveZoneCommand must be created via NewRemoveZoneCommand constructor",
)

// RemoveZoneCommand represents a request to delete a zone.
type RemoveZoneCommand struct { //nolint:recvcheck //using for validation
	zoneID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveZoneCommand creates a command to delete a zone.
func NewRemoveZoneCommand(zoneID kernel.UUID) (RemoveZoneCommand, error) {
	if err := zoneID.Validate(); err != nil {
		return RemoveZoneCommand{}, err
	}

	return RemoveZoneCommand{
		zoneID: zoneID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveZoneCommand) Validate() error {
	return c.guard.Validate(ErrRemoveZoneCommandIsNotConstructed)
}

// ZoneID returns the unique identifier for the zone.
func (c RemoveZoneCommand) ZoneID() kernel.UUID {
	return c.zoneID
}
