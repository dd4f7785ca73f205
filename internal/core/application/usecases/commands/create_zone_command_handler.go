package commands

import (
	"context"

	"geozone/internal/core/domain/events"
	"geozone/internal/core/domain/model/zone"
	"geozone/internal/core/ports"
)

// CreateZoneCommandHandler handles the business logic for zone creation.
// New zones start active and immediately participate in suggestion and
// boundary alerting.
type CreateZoneCommandHandler struct {
	uowFactory ZoneUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateZoneCommandHandler creates a handler for zone creation.
func NewCreateZoneCommandHandler(
	uowFactory ZoneUoWFactory,
	publisher ports.EventPublisher,
) CreateZoneCommandHandler {
	return CreateZoneCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the zone creation command. After a successful commit the
// mutation is published so zone:{id} subscribers react.
func (h *CreateZoneCommandHandler) Handle(ctx context.Context, cmd CreateZoneCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := zone.NewZone(cmd.ZoneID(), cmd.Name(), cmd.Polygon())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ZoneRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.publisher.Publish(ctx, events.ZoneUpdated{
		ZoneID: aggregate.ID().String(),
		Name:   aggregate.Name(),
		Action: events.ZoneCreated,
		Active: aggregate.IsActive(),
	})
}
