// Package services contains stateless domain services that operate across
// aggregates: zone suggestion ranking and boundary alert detection. Both are
// pure functions over domain values; persistence and event publishing are
// the caller's concern.
package services
