// Package events defines the domain events distributed by the real-time
// hub. Event is a sealed tagged union: one variant per event kind, each
// carrying its own strongly-typed payload and deriving its own delivery
// topics, so consumers dispatch with an exhaustive type switch instead of
// inspecting untyped payload fields.
package events

import "time"

// Topic is a named channel connections subscribe to. Topics are derived
// from event payloads, never chosen by publishers directly.
type Topic string

// TopicDashboard receives the periodic aggregate platform snapshot.
const TopicDashboard Topic = "platform:dashboard"

// OrderTopic is the per-order channel.
func OrderTopic(orderID string) Topic {
	return Topic("order:" + orderID)
}

// PlatformTopic is the per-platform channel (all orders of one platform).
func PlatformTopic(platformID string) Topic {
	return Topic("platform:" + platformID)
}

// CourierTopic is the per-courier channel, also carrying location updates
// for any moving entity.
func CourierTopic(courierID string) Topic {
	return Topic("courier:" + courierID)
}

// ZoneTopic is the per-zone channel for zone mutations and boundary alerts.
func ZoneTopic(zoneID string) Topic {
	return Topic("zone:" + zoneID)
}

// Kind identifies an event variant on the wire.
type Kind string

const (
	KindOrderUpdate    Kind = "ORDER_UPDATE"
	KindCourierUpdate  Kind = "COURIER_UPDATE"
	KindLocationUpdate Kind = "LOCATION_UPDATE"
	KindPlatformSync   Kind = "PLATFORM_SYNC"
	KindZoneUpdate     Kind = "ZONE_UPDATE"
	KindBoundaryAlert  Kind = "BOUNDARY_ALERT"
)

// Event is the sealed union of all domain events. Only the variants in this
// package implement it.
type Event interface {
	// Kind returns the wire identifier of the variant.
	Kind() Kind
	// Topics derives the channels this event is delivered to.
	Topics() []Topic

	sealed()
}

// OrderUpdated announces a change to an order's state. Delivered to the
// order's own topic and, when the order belongs to a platform, to that
// platform's topic.
type OrderUpdated struct {
	OrderID    string `json:"orderId"`
	PlatformID string `json:"platformId,omitempty"`
	Status     string `json:"status"`
	ZoneID     string `json:"zoneId,omitempty"`
}

func (e OrderUpdated) Kind() Kind { return KindOrderUpdate }

func (e OrderUpdated) Topics() []Topic {
	topics := []Topic{OrderTopic(e.OrderID)}
	if e.PlatformID != "" {
		topics = append(topics, PlatformTopic(e.PlatformID))
	}
	return topics
}

func (OrderUpdated) sealed() {}

// CourierUpdated announces a change to a courier's state.
type CourierUpdated struct {
	CourierID string `json:"courierId"`
	Status    string `json:"status"`
}

func (e CourierUpdated) Kind() Kind { return KindCourierUpdate }

func (e CourierUpdated) Topics() []Topic {
	return []Topic{CourierTopic(e.CourierID)}
}

func (CourierUpdated) sealed() {}

// LocationUpdated announces a fresh position report for a moving entity.
// Delivered on the courier channel for that entity.
type LocationUpdated struct {
	EntityID  string  `json:"entityId"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (e LocationUpdated) Kind() Kind { return KindLocationUpdate }

func (e LocationUpdated) Topics() []Topic {
	return []Topic{CourierTopic(e.EntityID)}
}

func (LocationUpdated) sealed() {}

// PlatformSync is the periodic aggregate dashboard snapshot.
type PlatformSync struct {
	ActiveCouriers     int       `json:"activeCouriers"`
	ActiveDeliveries   int       `json:"activeDeliveries"`
	DeliveredToday     int       `json:"deliveredToday"`
	AvgDeliveryMinutes float64   `json:"avgDeliveryMinutes"`
	GeneratedAt        time.Time `json:"generatedAt"`
}

func (e PlatformSync) Kind() Kind { return KindPlatformSync }

func (e PlatformSync) Topics() []Topic {
	return []Topic{TopicDashboard}
}

func (PlatformSync) sealed() {}

// ZoneAction describes what happened to a zone.
type ZoneAction string

const (
	ZoneCreated ZoneAction = "created"
	ZoneChanged ZoneAction = "updated"
	ZoneRemoved ZoneAction = "removed"
)

// ZoneUpdated announces a zone mutation so connections watching the zone
// can react.
type ZoneUpdated struct {
	ZoneID string     `json:"zoneId"`
	Name   string     `json:"name"`
	Action ZoneAction `json:"action"`
	Active bool       `json:"active"`
}

func (e ZoneUpdated) Kind() Kind { return KindZoneUpdate }

func (e ZoneUpdated) Topics() []Topic {
	return []Topic{ZoneTopic(e.ZoneID)}
}

func (ZoneUpdated) sealed() {}

// BoundaryAlertRaised announces that a moving entity is outside its zone but
// within the alert buffer of the boundary. Delivered on both the zone's and
// the entity's order channel so dispatch views and order watchers see it.
type BoundaryAlertRaised struct {
	EntityID       string  `json:"entityId"`
	ZoneID         string  `json:"zoneId"`
	DistanceMeters int     `json:"distanceMeters"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
}

func (e BoundaryAlertRaised) Kind() Kind { return KindBoundaryAlert }

func (e BoundaryAlertRaised) Topics() []Topic {
	return []Topic{ZoneTopic(e.ZoneID), OrderTopic(e.EntityID)}
}

func (BoundaryAlertRaised) sealed() {}
