// Package zone contains the Zone aggregate: a named geofence polygon with
// an active flag and its set of assigned couriers. Zones are read by the
// suggestion engine and the boundary alert detector and mutated only
// through explicit zone management commands.
package zone
