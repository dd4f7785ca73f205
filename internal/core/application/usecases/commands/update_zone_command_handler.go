package commands

import (
	"context"

	"geozone/internal/core/domain/events"
	"geozone/internal/core/ports"
)

// UpdateZoneCommandHandler handles the business logic for zone updates.
type UpdateZoneCommandHandler struct {
	uowFactory ZoneUoWFactory
	publisher  ports.EventPublisher
}

// NewUpdateZoneCommandHandler creates a handler for zone update operations.
func NewUpdateZoneCommandHandler(
	uowFactory ZoneUoWFactory,
	publisher ports.EventPublisher,
) UpdateZoneCommandHandler {
	return UpdateZoneCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the zone update command: loads the aggregate, applies the
// new name, boundary, and active flag, and persists it. The mutation is
// published after a successful commit.
func (h *UpdateZoneCommandHandler) Handle(ctx context.Context, cmd UpdateZoneCommand) error {
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

	if err = aggregate.Rename(cmd.Name()); err != nil {
		return err
	}
	if err = aggregate.ReplacePolygon(cmd.Polygon()); err != nil {
		return err
	}
	if cmd.Active() {
		aggregate.Activate()
	} else {
		aggregate.Deactivate()
	}

	if err = zoneRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.publisher.Publish(ctx, events.ZoneUpdated{
		ZoneID: aggregate.ID().String(),
		Name:   aggregate.Name(),
		Action: events.ZoneChanged,
		Active: aggregate.IsActive(),
	})
}
