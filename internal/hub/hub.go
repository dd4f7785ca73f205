// Package hub implements the real-time distribution hub: a connection
// registry with a topic reverse index for O(subscribers) fan-out. The hub is
// an explicit object owned by the composition root, not ambient global
// state; its lifecycle is tied to server startup and shutdown.
//
// Delivery is best-effort per connection: a subscriber that cannot accept a
// message never blocks the publisher or the other subscribers, and its
// failure is logged and swallowed.
package hub

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"geozone/internal/core/domain/events"
	"geozone/internal/pkg/errs"
)

// Envelope is the wire message handed to connections: the event kind plus
// its payload.
type Envelope struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Conn is one subscriber connection. Send must not block indefinitely;
// implementations back it with a buffered channel and report an error when
// the buffer is full or the connection is gone.
type Conn interface {
	ID() string
	Send(envelope Envelope) error
}

// Hub is the connection registry and fan-out point. One RWMutex guards the
// registry and the topic index together, so join/leave/disconnect are atomic
// with respect to concurrent publishes.
type Hub struct {
	log *slog.Logger

	mu sync.RWMutex
	// conns holds every registered connection by id.
	conns map[string]Conn
	// subs is the forward index: connection id -> subscribed topics.
	subs map[string]map[events.Topic]struct{}
	// topics is the reverse index: topic -> connection id -> connection.
	topics map[events.Topic]map[string]Conn
}

// NewHub creates an empty hub.
func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		log:    log,
		conns:  make(map[string]Conn),
		subs:   make(map[string]map[events.Topic]struct{}),
		topics: make(map[events.Topic]map[string]Conn),
	}
}

// Register adds a connection to the registry with no subscriptions.
// Registering an id that is already present is rejected.
func (h *Hub) Register(conn Conn) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.conns[conn.ID()]; exists {
		return fmt.Errorf("connection %q is already registered", conn.ID())
	}

	h.conns[conn.ID()] = conn
	h.subs[conn.ID()] = make(map[events.Topic]struct{})
	return nil
}

// Join subscribes a connection to a topic. Joining a topic the connection
// already subscribes to is a no-op. Unknown connections are rejected.
func (h *Hub) Join(connID string, topic events.Topic) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	conn, exists := h.conns[connID]
	if !exists {
		return errs.NewObjectNotFoundError("connection", connID)
	}

	h.subs[connID][topic] = struct{}{}

	if h.topics[topic] == nil {
		h.topics[topic] = make(map[string]Conn)
	}
	h.topics[topic][connID] = conn

	return nil
}

// Leave unsubscribes a connection from a topic. Leaving a topic the
// connection never joined is a no-op. Unknown connections are rejected.
func (h *Hub) Leave(connID string, topic events.Topic) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.conns[connID]; !exists {
		return errs.NewObjectNotFoundError("connection", connID)
	}

	delete(h.subs[connID], topic)
	h.removeFromTopic(connID, topic)

	return nil
}

// Disconnect removes a connection and purges it from every topic it joined.
// Disconnecting an unknown or never-subscribed connection is safe.
func (h *Hub) Disconnect(connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for topic := range h.subs[connID] {
		h.removeFromTopic(connID, topic)
	}

	delete(h.subs, connID)
	delete(h.conns, connID)
}

// Publish derives the event's topics and delivers one envelope to every
// subscribed connection. A connection subscribed to several of the event's
// topics receives the envelope once. Per-connection delivery failures are
// logged and swallowed; Publish itself only fails on a nil event.
func (h *Hub) Publish(_ context.Context, event events.Event) error {
	if event == nil {
		return errs.NewValueIsRequiredError("event")
	}

	envelope := Envelope{
		Type: string(event.Kind()),
		Data: event,
	}

	// Snapshot the recipients under the read lock, then send outside it so
	// a Send implementation can never stall registry mutations.
	h.mu.RLock()
	recipients := make(map[string]Conn)
	for _, topic := range event.Topics() {
		for connID, conn := range h.topics[topic] {
			recipients[connID] = conn
		}
	}
	h.mu.RUnlock()

	for connID, conn := range recipients {
		if err := conn.Send(envelope); err != nil {
			h.log.Warn("event delivery failed",
				slog.String("connection_id", connID),
				slog.String("event_kind", envelope.Type),
				slog.Any("error", err),
			)
		}
	}

	return nil
}

// Topics returns the topics the connection currently subscribes to, in
// unspecified order. Unknown connections yield an empty list.
func (h *Hub) Topics(connID string) []events.Topic {
	h.mu.RLock()
	defer h.mu.RUnlock()

	topics := make([]events.Topic, 0, len(h.subs[connID]))
	for topic := range h.subs[connID] {
		topics = append(topics, topic)
	}
	return topics
}

// ConnCount returns the number of registered connections.
func (h *Hub) ConnCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// SubscriberCount returns the number of connections subscribed to a topic.
func (h *Hub) SubscriberCount(topic events.Topic) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}

// removeFromTopic drops a connection from the reverse index, pruning the
// topic entry when it empties. Caller holds the write lock.
func (h *Hub) removeFromTopic(connID string, topic events.Topic) {
	subscribers, exists := h.topics[topic]
	if !exists {
		return
	}

	delete(subscribers, connID)
	if len(subscribers) == 0 {
		delete(h.topics, topic)
	}
}
