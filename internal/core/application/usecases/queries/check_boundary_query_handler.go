package queries

import (
	"context"

	"geozone/internal/core/domain/services"
	"geozone/internal/core/ports"
)

// CheckBoundaryQueryHandler runs one boundary detection pass for a zone.
// "Zone not found" and "zone inactive" surface as distinct errors: the
// former as errs.ObjectNotFoundError from the repository, the latter as
// services.ErrZoneInactive from the detector.
type CheckBoundaryQueryHandler struct {
	zoneRepo ports.ZoneRepository
	detector *services.BoundaryDetector
	bufferKm float64
}

// NewCheckBoundaryQueryHandler creates a handler for boundary check
// queries. bufferKm is the configured alert buffer.
func NewCheckBoundaryQueryHandler(
	zoneRepo ports.ZoneRepository,
	detector *services.BoundaryDetector,
	bufferKm float64,
) CheckBoundaryQueryHandler {
	return CheckBoundaryQueryHandler{
		zoneRepo: zoneRepo,
		detector: detector,
		bufferKm: bufferKm,
	}
}

// Handle loads the zone and runs the detector over the query's entities.
func (h CheckBoundaryQueryHandler) Handle(
	ctx context.Context,
	query CheckBoundaryQuery,
) (CheckBoundaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CheckBoundaryQueryResponse{}, err
	}

	aggregate, err := h.zoneRepo.Get(ctx, query.ZoneID())
	if err != nil {
		return CheckBoundaryQueryResponse{}, err
	}

	alerts, err := h.detector.Detect(aggregate, query.Entities(), h.bufferKm)
	if err != nil {
		return CheckBoundaryQueryResponse{}, err
	}

	return CheckBoundaryQueryResponse{
		ZoneID:   aggregate.ID(),
		ZoneName: aggregate.Name(),
		Alerts:   alerts,
	}, nil
}
