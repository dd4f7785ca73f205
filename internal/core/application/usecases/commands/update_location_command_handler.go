package commands

import (
	"context"

	"geozone/internal/core/domain/events"
	"geozone/internal/core/domain/model/delivery"
	"geozone/internal/core/domain/model/zone"
	"geozone/internal/core/domain/services"
	"geozone/internal/core/ports"
)

// UpdateLocationCommandHandler is the location ingestion pipeline: it moves
// the delivery, re-evaluates its zone assignment against the active zones,
// and publishes the resulting events.
type UpdateLocationCommandHandler struct {
	uowFactory    UoWFactory
	suggester     *services.ZoneSuggester
	publisher     ports.EventPublisher
	maxDistanceKm float64
}

// NewUpdateLocationCommandHandler creates a handler for location ingestion.
// maxDistanceKm bounds how far a zone centroid may be for automatic
// reassignment.
func NewUpdateLocationCommandHandler(
	uowFactory UoWFactory,
	suggester *services.ZoneSuggester,
	publisher ports.EventPublisher,
	maxDistanceKm float64,
) UpdateLocationCommandHandler {
	return UpdateLocationCommandHandler{
		uowFactory:    uowFactory,
		suggester:     suggester,
		publisher:     publisher,
		maxDistanceKm: maxDistanceKm,
	}
}

// Handle processes one position report. The delivery keeps its current zone
// while the new position is still inside it; otherwise it is reassigned to
// the best suggestion within the configured distance, or cleared when no
// zone qualifies. LocationUpdated is always published; OrderUpdated is added
// when the zone assignment changed.
func (h *UpdateLocationCommandHandler) Handle(ctx context.Context, cmd UpdateLocationCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()

	aggregate, err := deliveryRepo.Get(ctx, cmd.EntityID())
	if err != nil {
		return err
	}

	if err = aggregate.MoveTo(cmd.Location()); err != nil {
		return err
	}

	zoneChanged, err := h.reassignZone(ctx, uow, aggregate)
	if err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.publishEvents(ctx, aggregate, zoneChanged)
}

// reassignZone re-evaluates the delivery's zone membership at its new
// position. Reports whether the assignment changed.
func (h *UpdateLocationCommandHandler) reassignZone(
	ctx context.Context,
	uow UoW,
	aggregate *delivery.Delivery,
) (bool, error) {
	zones, err := uow.ZoneRepository().GetAllActive(ctx)
	if err != nil {
		return false, err
	}

	if current := h.currentZone(aggregate, zones); current != nil {
		inside, containsErr := current.Polygon().Contains(aggregate.Location())
		if containsErr != nil {
			return false, containsErr
		}
		if inside {
			return false, nil
		}
	}

	suggestions, err := h.suggester.Suggest(aggregate.Location(), zones, h.maxDistanceKm)
	if err != nil {
		return false, err
	}

	if len(suggestions) == 0 {
		if aggregate.Zone() == nil {
			return false, nil
		}
		aggregate.ClearZone()
		return true, nil
	}

	best := suggestions[0].ZoneID
	if existing := aggregate.Zone(); existing != nil && existing.IsEqual(best) {
		return false, nil
	}

	return true, aggregate.AssignZone(best)
}

// currentZone finds the delivery's assigned zone among the active zones.
// A zone that was deactivated or removed since assignment yields nil, which
// forces re-evaluation.
func (h *UpdateLocationCommandHandler) currentZone(
	aggregate *delivery.Delivery,
	zones []*zone.Zone,
) *zone.Zone {
	assigned := aggregate.Zone()
	if assigned == nil {
		return nil
	}

	for _, z := range zones {
		if assigned.IsEqual(z.ID()) {
			return z
		}
	}
	return nil
}

func (h *UpdateLocationCommandHandler) publishEvents(
	ctx context.Context,
	aggregate *delivery.Delivery,
	zoneChanged bool,
) error {
	err := h.publisher.Publish(ctx, events.LocationUpdated{
		EntityID:  aggregate.ID().String(),
		Latitude:  aggregate.Location().Latitude(),
		Longitude: aggregate.Location().Longitude(),
	})
	if err != nil {
		return err
	}

	if !zoneChanged {
		return nil
	}

	var zoneID string
	if z := aggregate.Zone(); z != nil {
		zoneID = z.String()
	}

	return h.publisher.Publish(ctx, events.OrderUpdated{
		OrderID: aggregate.ID().String(),
		Status:  aggregate.Status().String(),
		ZoneID:  zoneID,
	})
}
