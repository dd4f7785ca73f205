package commands

import (
	"context"

	"geozone/internal/core/domain/events"
	"geozone/internal/core/ports"
)

// RemoveZoneCommandHandler handles the business logic for zone removal.
type RemoveZoneCommandHandler struct {
	uowFactory ZoneUoWFactory
	publisher  ports.EventPublisher
}

// NewRemoveZoneCommandHandler creates a handler for zone removal operations.
func NewRemoveZoneCommandHandler(
	uowFactory ZoneUoWFactory,
	publisher ports.EventPublisher,
) RemoveZoneCommandHandler {
	return RemoveZoneCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the zone removal command. The zone is loaded first so the
// published event carries its name and removal distinguishes "not found"
// from deletion failures.
func (h *RemoveZoneCommandHandler) Handle(ctx context.Context, cmd RemoveZoneCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	zoneRepo := uow.ZoneRepository()

	aggregate, err := zoneRepo.Get(ctx, cmd.ZoneID())
	if err != nil {
		return err
	}

	if err = zoneRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.publisher.Publish(ctx, events.ZoneUpdated{
		ZoneID: aggregate.ID().String(),
		Name:   aggregate.Name(),
		Action: events.ZoneRemoved,
		Active: false,
	})
}
