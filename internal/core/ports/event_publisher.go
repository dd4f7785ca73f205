package ports

import (
	"context"

	"geozone/internal/core/domain/events"
)

// EventPublisher delivers domain events to the real-time distribution hub.
// Publishing is best-effort with respect to individual subscribers: a
// publisher error means the event could not be accepted at all, not that
// some connection missed it.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}
