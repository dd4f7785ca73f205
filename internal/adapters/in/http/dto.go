package http

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Vertex is one polygon corner in a request or response body.
type Vertex struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CreateZoneRequest registers a new zone with its geofence boundary.
type CreateZoneRequest struct {
	Name    string   `json:"name"`
	Polygon []Vertex `json:"polygon"`
}

// CreateZoneResponse carries the server-assigned zone identifier.
type CreateZoneResponse struct {
	ID string `json:"id"`
}

// UpdateZoneRequest replaces a zone's name, boundary and active flag.
type UpdateZoneRequest struct {
	Name    string   `json:"name"`
	Polygon []Vertex `json:"polygon"`
	Active  bool     `json:"active"`
}

// SuggestZonesRequest asks for zones ranked around a location.
type SuggestZonesRequest struct {
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	MaxDistanceKm float64 `json:"maxDistanceKm"`
}

// ZoneSuggestion is one ranked zone candidate.
type ZoneSuggestion struct {
	ZoneID         string `json:"zoneId"`
	ZoneName       string `json:"zoneName"`
	DistanceMeters int    `json:"distanceMeters"`
	IsInZone       bool   `json:"isInZone"`
	ActiveCouriers int    `json:"activeCouriers"`
}

// TrackedEntityRequest is one entity position in a boundary check.
type TrackedEntityRequest struct {
	EntityID  string  `json:"entityId"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Terminal  bool    `json:"terminal"`
}

// BoundaryCheckRequest runs the boundary detector over a snapshot of
// entity positions against one zone.
type BoundaryCheckRequest struct {
	Entities []TrackedEntityRequest `json:"entities"`
}

// ZoneRef identifies the checked zone in a boundary check response.
type ZoneRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BoundaryAlert is one raised alert in a boundary check response.
type BoundaryAlert struct {
	EntityID       string  `json:"entityId"`
	ZoneID         string  `json:"zoneId"`
	DistanceMeters int     `json:"distanceMeters"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
}

// BoundaryCheckResponse carries the checked zone and its alerts.
type BoundaryCheckResponse struct {
	Zone   ZoneRef         `json:"zone"`
	Alerts []BoundaryAlert `json:"alerts"`
}

// LocationReportRequest is a raw position report for a moving entity.
type LocationReportRequest struct {
	EntityID  string  `json:"entityId"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// TopicControlRequest mutates a stream connection's subscriptions. Action
// is one of join-order, join-platform, join-courier, join-zone,
// join-dashboard or the matching leave-* form; ID names the subject and is
// ignored for the dashboard topic.
type TopicControlRequest struct {
	Action string `json:"action"`
	ID     string `json:"id"`
}

// ConnectedEvent is the first SSE event on a new stream connection.
type ConnectedEvent struct {
	ConnectionID string `json:"connectionId"`
}
