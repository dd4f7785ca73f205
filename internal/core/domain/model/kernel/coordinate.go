package kernel

import (
	"errors"
	"fmt"
	"math"

	"geozone/internal/pkg/errs"
	"geozone/internal/pkg/guard"
)

const (
	// LatitudeMin is the minimum valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the maximum valid latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the minimum valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the maximum valid longitude in degrees.
	LongitudeMax = 180.0

	// earthRadiusKm is the mean Earth radius used by the haversine formula.
	earthRadiusKm = 6371.0
)

// ErrCoordinateIsNotConstructed is returned when attempting to use an
// improperly initialized Coordinate. Coordinates must be created via
// NewCoordinate to guarantee their ranges.
var ErrCoordinateIsNotConstructed = errs.NewValueIsRequiredError(
	"coordinate must be created via NewCoordinate constructor")

// Coordinate is an immutable geographic position in decimal degrees.
// Latitude is constrained to [-90,90] and longitude to [-180,180]; values
// outside those ranges are rejected at construction, never clamped.
//
// The zero value is invalid and fails validation; use NewCoordinate.
type Coordinate struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewCoordinate creates a Coordinate with validated latitude and longitude.
// Returns an aggregated error when either component is out of range or not
// a finite number.
func NewCoordinate(latitude, longitude float64) (Coordinate, error) {
	coord := Coordinate{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(coord.setLatitude(latitude), coord.setLongitude(longitude)); err != nil {
		return Coordinate{}, err
	}

	return coord, nil
}

// Validate checks that the Coordinate was created via NewCoordinate.
func (c Coordinate) Validate() error {
	return c.guard.Validate(ErrCoordinateIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (c Coordinate) Latitude() float64 {
	return c.latitude
}

// Longitude returns the longitude in decimal degrees.
func (c Coordinate) Longitude() float64 {
	return c.longitude
}

// String implements fmt.Stringer for logging and debugging.
func (c Coordinate) String() string {
	return fmt.Sprintf("Coordinate(%.6f,%.6f)", c.latitude, c.longitude)
}

// IsEqual compares two coordinates for exact equality of both components.
func (c Coordinate) IsEqual(other Coordinate) (bool, error) {
	if err := errors.Join(c.Validate(), other.Validate()); err != nil {
		return false, err
	}
	return c.latitude == other.latitude && c.longitude == other.longitude, nil
}

// HaversineKm returns the great-circle distance to other in kilometers using
// the haversine formula with a mean Earth radius of 6371 km. The distance is
// symmetric and zero for identical coordinates.
func (c Coordinate) HaversineKm(other Coordinate) (float64, error) {
	if err := errors.Join(c.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := c.latitude * math.Pi / 180
	lat2 := other.latitude * math.Pi / 180
	dLat := (other.latitude - c.latitude) * math.Pi / 180
	dLng := (other.longitude - c.longitude) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	a := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a)), nil
}

// setLatitude sets the latitude with range validation.
// Note: private setters use pointer receivers to keep validation
// self-encapsulated during construction, while the public API stays on
// value receivers.
func (c *Coordinate) setLatitude(latitude float64) error {
	if math.IsNaN(latitude) || latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}
	c.latitude = latitude
	return nil
}

// setLongitude sets the longitude with range validation.
func (c *Coordinate) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) || longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}
	c.longitude = longitude
	return nil
}
