// Package kernel contains the shared value objects of the domain: entity
// identifiers, geographic coordinates, and geofence polygons.
//
// The geometry operations on Coordinate and Polygon form the pure geometry
// kernel of the system: point-in-polygon containment (ray casting),
// great-circle distance (haversine), nearest-boundary-point, and proximity
// tests. They perform no I/O and hold no state.
//
// Two deliberate approximations are carried over from the original system
// and must not be "fixed" silently, since downstream ordering and alert
// distances depend on them:
//
//   - Polygon.NearestPoint projects onto edges in a flattened (lat,lng)
//     plane rather than computing the geodesic nearest point. At delivery
//     zone scale (a few kilometers) the error is negligible.
//   - Polygon.Centroid is the arithmetic mean of the vertices, not the true
//     area centroid. It is only used to rank zones by rough distance.
package kernel
