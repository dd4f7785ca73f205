package kernel

import (
	"errors"
	"fmt"

	"geozone/internal/pkg/errs"
	"geozone/internal/pkg/guard"
)

// polygonMinVertices is the minimum number of vertices a geofence polygon
// must have. Anything smaller cannot enclose an area.
const polygonMinVertices = 3

var (
	// ErrPolygonIsNotConstructed is returned when attempting to use an
	// improperly initialized Polygon.
	ErrPolygonIsNotConstructed = errs.NewValueIsRequiredError(
		"polygon must be created via NewPolygon constructor")

	// ErrPolygonTooFewVertices is returned when constructing or replacing a
	// polygon with fewer than three vertices. Degenerate polygons are
	// rejected before any geometry operation, never silently repaired.
	ErrPolygonTooFewVertices = errs.NewValueIsInvalidErrorWithCause(
		"polygon", fmt.Errorf("a polygon requires at least %d vertices", polygonMinVertices))
)

// Polygon is an immutable geofence boundary: an ordered sequence of at least
// three coordinates, implicitly closed (the last vertex connects back to the
// first). Winding order does not matter; all operations treat clockwise and
// counter-clockwise polygons identically.
type Polygon struct { //nolint:recvcheck //using for validation
	vertices []Coordinate
	guard    guard.ConstructorGuard
}

// NewPolygon creates a Polygon from the given vertices. The slice is copied,
// every vertex must be a properly constructed Coordinate, and fewer than
// three vertices is rejected with ErrPolygonTooFewVertices.
func NewPolygon(vertices []Coordinate) (Polygon, error) {
	if len(vertices) < polygonMinVertices {
		return Polygon{}, ErrPolygonTooFewVertices
	}

	for i, v := range vertices {
		if err := v.Validate(); err != nil {
			return Polygon{}, errs.NewValueIsInvalidErrorWithCause(
				"polygon", fmt.Errorf("vertex %d: %w", i, err))
		}
	}

	copied := make([]Coordinate, len(vertices))
	copy(copied, vertices)

	return Polygon{
		vertices: copied,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Polygon was created via NewPolygon.
func (p Polygon) Validate() error {
	return p.guard.Validate(ErrPolygonIsNotConstructed)
}

// Vertices returns a copy of the polygon's vertices in order.
func (p Polygon) Vertices() []Coordinate {
	copied := make([]Coordinate, len(p.vertices))
	copy(copied, p.vertices)
	return copied
}

// VertexCount returns the number of vertices.
func (p Polygon) VertexCount() int {
	return len(p.vertices)
}

// Contains reports whether point lies inside the polygon using the
// ray-casting algorithm: a horizontal ray from the point toggles an
// accumulator each time it crosses an edge. The result is independent of
// winding order. Boundary membership follows the crossing convention and is
// deterministic; it is pinned by tests rather than special-cased.
func (p Polygon) Contains(point Coordinate) (bool, error) {
	if err := errors.Join(p.Validate(), point.Validate()); err != nil {
		return false, err
	}

	x := point.longitude
	y := point.latitude

	inside := false
	j := len(p.vertices) - 1
	for i := range p.vertices {
		xi, yi := p.vertices[i].longitude, p.vertices[i].latitude
		xj, yj := p.vertices[j].longitude, p.vertices[j].latitude

		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}

	return inside, nil
}

// NearestPoint returns the closest point on the polygon's boundary to the
// given point. Each edge (i, i+1 mod n) is considered in vertex order and
// ties keep the first edge found.
//
// The per-edge projection happens in a flattened (lat,lng) plane, not along
// the geodesic. This approximation is acceptable at delivery-zone scale
// (kilometers) and mirrors the behavior the rest of the system was tuned
// against.
func (p Polygon) NearestPoint(point Coordinate) (Coordinate, error) {
	if err := errors.Join(p.Validate(), point.Validate()); err != nil {
		return Coordinate{}, err
	}

	var (
		nearest Coordinate
		bestKm  = -1.0
	)

	n := len(p.vertices)
	for i := range p.vertices {
		candidate := nearestPointOnSegment(point, p.vertices[i], p.vertices[(i+1)%n])

		km, err := point.HaversineKm(candidate)
		if err != nil {
			return Coordinate{}, err
		}

		if bestKm < 0 || km < bestKm {
			bestKm = km
			nearest = candidate
		}
	}

	return nearest, nil
}

// IsNear reports whether point is inside the polygon or within maxDistanceKm
// of its boundary. maxDistanceKm must not be negative.
func (p Polygon) IsNear(point Coordinate, maxDistanceKm float64) (bool, error) {
	if maxDistanceKm < 0 {
		return false, errs.NewValueIsInvalidErrorWithCause(
			"maxDistanceKm", fmt.Errorf("%f is negative", maxDistanceKm))
	}

	inside, err := p.Contains(point)
	if err != nil {
		return false, err
	}
	if inside {
		return true, nil
	}

	nearest, err := p.NearestPoint(point)
	if err != nil {
		return false, err
	}

	km, err := point.HaversineKm(nearest)
	if err != nil {
		return false, err
	}

	return km <= maxDistanceKm, nil
}

// Centroid returns the arithmetic mean of the vertices. For irregular
// polygons this is not the true area centroid; it is kept as the ranking
// proxy the suggestion ordering was built on.
func (p Polygon) Centroid() (Coordinate, error) {
	if err := p.Validate(); err != nil {
		return Coordinate{}, err
	}

	var sumLat, sumLng float64
	for _, v := range p.vertices {
		sumLat += v.latitude
		sumLng += v.longitude
	}

	n := float64(len(p.vertices))
	return NewCoordinate(sumLat/n, sumLng/n)
}

// nearestPointOnSegment projects point orthogonally onto the segment from a
// to b in the flattened (lat,lng) plane, clamping the projection parameter
// to [0,1] so the result always lies on the segment.
func nearestPointOnSegment(point, a, b Coordinate) Coordinate {
	dLat := b.latitude - a.latitude
	dLng := b.longitude - a.longitude

	// Degenerate segment: both endpoints coincide.
	if dLat == 0 && dLng == 0 {
		return a
	}

	t := ((point.latitude-a.latitude)*dLat + (point.longitude-a.longitude)*dLng) /
		(dLat*dLat + dLng*dLng)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return Coordinate{
		latitude:  a.latitude + t*dLat,
		longitude: a.longitude + t*dLng,
		guard:     guard.NewConstructorGuard(),
	}
}
