package queries

import (
	"context"

	"geozone/internal/core/domain/services"
	"geozone/internal/core/ports"
)

// SuggestZonesQueryHandler ranks the active zones for a location.
type SuggestZonesQueryHandler struct {
	zoneRepo  ports.ZoneRepository
	suggester *services.ZoneSuggester
}

// NewSuggestZonesQueryHandler creates a handler for zone suggestion queries.
func NewSuggestZonesQueryHandler(
	zoneRepo ports.ZoneRepository,
	suggester *services.ZoneSuggester,
) SuggestZonesQueryHandler {
	return SuggestZonesQueryHandler{
		zoneRepo:  zoneRepo,
		suggester: suggester,
	}
}

// Handle loads the active zones and returns them ranked for the query
// location. An empty list means no zone qualifies; the caller decides how
// to react.
func (h SuggestZonesQueryHandler) Handle(
	ctx context.Context,
	query SuggestZonesQuery,
) ([]services.ZoneSuggestion, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	zones, err := h.zoneRepo.GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	return h.suggester.Suggest(query.Location(), zones, query.MaxDistanceKm())
}
