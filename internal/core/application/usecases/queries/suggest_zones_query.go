// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Zone suggestion and boundary checks read through the domain services;
// dashboard metrics go straight to SQL for an optimized read model.
package queries

import (
	"errors"

	"geozone/internal/core/domain/model/kernel"
	"geozone/internal/pkg/guard"
)

var ErrSuggestZonesQueryIsNotConstructed = errors.New(
	"SuggestZonesQuery must be created via NewSuggestZonesQuery constructor",
)

// SuggestZonesQuery asks for the ranked list of zones for a location.
type SuggestZonesQuery struct { //nolint:recvcheck //using for validation
	location      kernel.Coordinate
	maxDistanceKm float64

	guard guard.ConstructorGuard
}

// NewSuggestZonesQuery creates a query from a raw position and search
// radius. Out-of-range coordinates and negative radii are rejected here.
func NewSuggestZonesQuery(latitude, longitude, maxDistanceKm float64) (SuggestZonesQuery, error) {
	location, err := kernel.NewCoordinate(latitude, longitude)
	if err != nil {
		return SuggestZonesQuery{}, err
	}
	if maxDistanceKm < 0 {
		return SuggestZonesQuery{}, errors.New("maxDistanceKm must not be negative")
	}

	return SuggestZonesQuery{
		location:      location,
		maxDistanceKm: maxDistanceKm,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SuggestZonesQuery) Validate() error {
	return q.guard.Validate(ErrSuggestZonesQueryIsNotConstructed)
}

// Location returns the position zones are ranked against.
func (q SuggestZonesQuery) Location() kernel.Coordinate {
	return q.location
}

// MaxDistanceKm returns the search radius.
func (q SuggestZonesQuery) MaxDistanceKm() float64 {
	return q.maxDistanceKm
}
