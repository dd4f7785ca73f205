// Package http is the inbound HTTP adapter: echo handlers translating
// requests into commands and queries, plus the SSE stream endpoint feeding
// the distribution hub.
package http

import (
	"errors"
	"net/http"

	"geozone/internal/core/application/usecases/commands"
	"geozone/internal/core/application/usecases/queries"
	"geozone/internal/core/domain/model/kernel"
	"geozone/internal/core/domain/services"
	"geozone/internal/hub"
	"geozone/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createZoneHandler     commands.CreateZoneCommandHandler
	updateZoneHandler     commands.UpdateZoneCommandHandler
	removeZoneHandler     commands.RemoveZoneCommandHandler
	updateLocationHandler commands.UpdateLocationCommandHandler

	// Query handlers
	suggestZonesHandler  queries.SuggestZonesQueryHandler
	checkBoundaryHandler queries.CheckBoundaryQueryHandler

	hub *hub.Hub
}

// NewServer creates a new HTTP server with the required command and query
// handlers and the distribution hub.
func NewServer(
	createZoneHandler commands.CreateZoneCommandHandler,
	updateZoneHandler commands.UpdateZoneCommandHandler,
	removeZoneHandler commands.RemoveZoneCommandHandler,
	updateLocationHandler commands.UpdateLocationCommandHandler,
	suggestZonesHandler queries.SuggestZonesQueryHandler,
	checkBoundaryHandler queries.CheckBoundaryQueryHandler,
	eventHub *hub.Hub,
) *Server {
	return &Server{
		createZoneHandler:     createZoneHandler,
		updateZoneHandler:     updateZoneHandler,
		removeZoneHandler:     removeZoneHandler,
		updateLocationHandler: updateLocationHandler,
		suggestZonesHandler:   suggestZonesHandler,
		checkBoundaryHandler:  checkBoundaryHandler,
		hub:                   eventHub,
	}
}

// RegisterRoutes mounts every endpoint on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.POST("/api/v1/zones", s.CreateZone)
	e.PUT("/api/v1/zones/:zoneId", s.UpdateZone)
	e.DELETE("/api/v1/zones/:zoneId", s.RemoveZone)
	e.POST("/api/v1/zones/suggest", s.SuggestZones)
	e.POST("/api/v1/zones/:zoneId/boundary-check", s.CheckBoundary)

	e.POST("/api/v1/locations", s.ReportLocation)

	e.GET("/api/v1/stream", s.Stream)
	e.POST("/api/v1/stream/:connectionId/topics", s.StreamTopics)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateZone handles POST /api/v1/zones - registers a new zone.
func (s *Server) CreateZone(ctx echo.Context) error {
	var request CreateZoneRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	polygon, err := polygonFromVertices(request.Polygon)
	if err != nil {
		return badRequest(ctx, "Invalid zone boundary: "+err.Error())
	}

	zoneID := kernel.NewUUID()
	cmd, err := commands.NewCreateZoneCommand(zoneID, request.Name, polygon)
	if err != nil {
		return badRequest(ctx, "Invalid zone data: "+err.Error())
	}

	if handleErr := s.createZoneHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return internalError(ctx, "Failed to create zone")
	}

	return ctx.JSON(http.StatusCreated, CreateZoneResponse{ID: zoneID.String()})
}

// UpdateZone handles PUT /api/v1/zones/:zoneId - replaces a zone's name,
// boundary and active flag.
func (s *Server) UpdateZone(ctx echo.Context) error {
	zoneID, err := kernel.UUIDFromString(ctx.Param("zoneId"))
	if err != nil {
		return badRequest(ctx, "Invalid zone id")
	}

	var request UpdateZoneRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	polygon, err := polygonFromVertices(request.Polygon)
	if err != nil {
		return badRequest(ctx, "Invalid zone boundary: "+err.Error())
	}

	cmd, err := commands.NewUpdateZoneCommand(zoneID, request.Name, polygon, request.Active)
	if err != nil {
		return badRequest(ctx, "Invalid zone data: "+err.Error())
	}

	if handleErr := s.updateZoneHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return notFound(ctx, "Zone not found")
		}
		return internalError(ctx, "Failed to update zone")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveZone handles DELETE /api/v1/zones/:zoneId.
func (s *Server) RemoveZone(ctx echo.Context) error {
	zoneID, err := kernel.UUIDFromString(ctx.Param("zoneId"))
	if err != nil {
		return badRequest(ctx, "Invalid zone id")
	}

	cmd, err := commands.NewRemoveZoneCommand(zoneID)
	if err != nil {
		return badRequest(ctx, "Invalid zone data: "+err.Error())
	}

	if handleErr := s.removeZoneHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return notFound(ctx, "Zone not found")
		}
		return internalError(ctx, "Failed to remove zone")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SuggestZones handles POST /api/v1/zones/suggest - ranks active zones
// around a location. An empty list is a valid answer.
func (s *Server) SuggestZones(ctx echo.Context) error {
	var request SuggestZonesRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	query, err := queries.NewSuggestZonesQuery(
		request.Latitude, request.Longitude, request.MaxDistanceKm)
	if err != nil {
		return badRequest(ctx, "Invalid suggestion request: "+err.Error())
	}

	suggestions, err := s.suggestZonesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to suggest zones")
	}

	response := make([]ZoneSuggestion, len(suggestions))
	for i, suggestion := range suggestions {
		response[i] = ZoneSuggestion{
			ZoneID:         suggestion.ZoneID.String(),
			ZoneName:       suggestion.ZoneName,
			DistanceMeters: suggestion.DistanceMeters,
			IsInZone:       suggestion.IsInZone,
			ActiveCouriers: suggestion.ActiveCouriers,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CheckBoundary handles POST /api/v1/zones/:zoneId/boundary-check - runs
// the boundary detector over the request's entity snapshot. A missing zone
// is 404; an inactive one is 409, so callers can tell "no alerts" apart
// from "zone not eligible".
func (s *Server) CheckBoundary(ctx echo.Context) error {
	zoneID, err := kernel.UUIDFromString(ctx.Param("zoneId"))
	if err != nil {
		return badRequest(ctx, "Invalid zone id")
	}

	var request BoundaryCheckRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	entities, err := trackedEntitiesFromRequest(request.Entities)
	if err != nil {
		return badRequest(ctx, "Invalid entity data: "+err.Error())
	}

	query, err := queries.NewCheckBoundaryQuery(zoneID, entities)
	if err != nil {
		return badRequest(ctx, "Invalid boundary check: "+err.Error())
	}

	result, err := s.checkBoundaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return notFound(ctx, "Zone not found")
		case errors.Is(err, services.ErrZoneInactive):
			return ctx.JSON(http.StatusConflict, Error{
				Code:    http.StatusConflict,
				Message: "Zone is inactive",
			})
		default:
			return internalError(ctx, "Failed to check boundary")
		}
	}

	alerts := make([]BoundaryAlert, len(result.Alerts))
	for i, alert := range result.Alerts {
		alerts[i] = BoundaryAlert{
			EntityID:       alert.EntityID.String(),
			ZoneID:         alert.ZoneID.String(),
			DistanceMeters: alert.DistanceMeters,
			Latitude:       alert.Location.Latitude(),
			Longitude:      alert.Location.Longitude(),
		}
	}

	return ctx.JSON(http.StatusOK, BoundaryCheckResponse{
		Zone:   ZoneRef{ID: result.ZoneID.String(), Name: result.ZoneName},
		Alerts: alerts,
	})
}

// ReportLocation handles POST /api/v1/locations - ingests a position
// report. The report is applied synchronously; 202 signals that zone
// reassignment and fan-out already happened when the response is sent.
func (s *Server) ReportLocation(ctx echo.Context) error {
	var request LocationReportRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	entityID, err := kernel.UUIDFromString(request.EntityID)
	if err != nil {
		return badRequest(ctx, "Invalid entity id")
	}

	cmd, err := commands.NewUpdateLocationCommand(entityID, request.Latitude, request.Longitude)
	if err != nil {
		return badRequest(ctx, "Invalid location data: "+err.Error())
	}

	if handleErr := s.updateLocationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return notFound(ctx, "Delivery not found")
		}
		return internalError(ctx, "Failed to apply location report")
	}

	return ctx.NoContent(http.StatusAccepted)
}

func polygonFromVertices(vertices []Vertex) (kernel.Polygon, error) {
	coordinates := make([]kernel.Coordinate, 0, len(vertices))
	for _, vertex := range vertices {
		coordinate, err := kernel.NewCoordinate(vertex.Latitude, vertex.Longitude)
		if err != nil {
			return kernel.Polygon{}, err
		}
		coordinates = append(coordinates, coordinate)
	}
	return kernel.NewPolygon(coordinates)
}

func trackedEntitiesFromRequest(
	requests []TrackedEntityRequest,
) ([]services.TrackedEntity, error) {
	entities := make([]services.TrackedEntity, 0, len(requests))
	for _, request := range requests {
		entityID, err := kernel.UUIDFromString(request.EntityID)
		if err != nil {
			return nil, err
		}

		location, err := kernel.NewCoordinate(request.Latitude, request.Longitude)
		if err != nil {
			return nil, err
		}

		entities = append(entities, services.TrackedEntity{
			ID:       entityID,
			Location: location,
			Terminal: request.Terminal,
		})
	}
	return entities, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, Error{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
