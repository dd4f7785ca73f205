package hub_test

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"geozone/internal/core/domain/events"
	"geozone/internal/hub"
	"geozone/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingConn collects every envelope it receives.
type recordingConn struct {
	id string

	mu        sync.Mutex
	envelopes []hub.Envelope
	failSend  bool
}

func newRecordingConn(id string) *recordingConn {
	return &recordingConn{id: id}
}

func (c *recordingConn) ID() string { return c.id }

func (c *recordingConn) Send(envelope hub.Envelope) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.failSend {
		return errors.New("connection buffer full")
	}
	c.envelopes = append(c.envelopes, envelope)
	return nil
}

func (c *recordingConn) received() []hub.Envelope {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]hub.Envelope, len(c.envelopes))
	copy(out, c.envelopes)
	return out
}

func newTestHub() *hub.Hub {
	return hub.NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHub_Register(t *testing.T) {
	t.Run("duplicate_id_is_rejected", func(t *testing.T) {
		h := newTestHub()
		require.NoError(t, h.Register(newRecordingConn("c1")))

		require.Error(t, h.Register(newRecordingConn("c1")))
		assert.Equal(t, 1, h.ConnCount())
	})
}

func TestHub_JoinLeave(t *testing.T) {
	t.Run("join_is_idempotent", func(t *testing.T) {
		h := newTestHub()
		require.NoError(t, h.Register(newRecordingConn("c1")))

		topic := events.CourierTopic("C1")
		require.NoError(t, h.Join("c1", topic))
		require.NoError(t, h.Join("c1", topic))

		assert.Equal(t, 1, h.SubscriberCount(topic))
		assert.Equal(t, []events.Topic{topic}, h.Topics("c1"))
	})

	t.Run("leave_never_joined_topic_is_noop", func(t *testing.T) {
		h := newTestHub()
		require.NoError(t, h.Register(newRecordingConn("c1")))

		require.NoError(t, h.Leave("c1", events.CourierTopic("C1")))
	})

	t.Run("unknown_connection_is_rejected", func(t *testing.T) {
		h := newTestHub()

		require.ErrorIs(t, h.Join("ghost", events.CourierTopic("C1")), errs.ErrObjectNotFound)
		require.ErrorIs(t, h.Leave("ghost", events.CourierTopic("C1")), errs.ErrObjectNotFound)
	})
}

func TestHub_Publish(t *testing.T) {
	t.Run("delivers_only_to_matching_subscribers", func(t *testing.T) {
		h := newTestHub()
		first := newRecordingConn("c1")
		second := newRecordingConn("c2")
		third := newRecordingConn("c3")
		for _, conn := range []*recordingConn{first, second, third} {
			require.NoError(t, h.Register(conn))
		}

		// Two connections watch courier C1, the third watches only C2.
		require.NoError(t, h.Join("c1", events.CourierTopic("C1")))
		require.NoError(t, h.Join("c2", events.CourierTopic("C1")))
		require.NoError(t, h.Join("c3", events.CourierTopic("C2")))

		err := h.Publish(t.Context(), events.LocationUpdated{
			EntityID: "C1", Latitude: 1, Longitude: 2,
		})
		require.NoError(t, err)

		require.Len(t, first.received(), 1)
		require.Len(t, second.received(), 1)
		assert.Empty(t, third.received())
		assert.Equal(t, string(events.KindLocationUpdate), first.received()[0].Type)
	})

	t.Run("multi_topic_event_delivers_once_per_connection", func(t *testing.T) {
		h := newTestHub()
		watcher := newRecordingConn("c1")
		require.NoError(t, h.Register(watcher))
		require.NoError(t, h.Join("c1", events.ZoneTopic("Z1")))
		require.NoError(t, h.Join("c1", events.OrderTopic("O1")))

		err := h.Publish(t.Context(), events.BoundaryAlertRaised{
			EntityID: "O1", ZoneID: "Z1", DistanceMeters: 120,
		})
		require.NoError(t, err)

		assert.Len(t, watcher.received(), 1)
	})

	t.Run("failing_connection_does_not_block_others", func(t *testing.T) {
		h := newTestHub()
		broken := newRecordingConn("c1")
		broken.failSend = true
		healthy := newRecordingConn("c2")
		require.NoError(t, h.Register(broken))
		require.NoError(t, h.Register(healthy))
		require.NoError(t, h.Join("c1", events.TopicDashboard))
		require.NoError(t, h.Join("c2", events.TopicDashboard))

		err := h.Publish(t.Context(), events.PlatformSync{ActiveCouriers: 1})
		require.NoError(t, err)

		assert.Len(t, healthy.received(), 1)
	})

	t.Run("zero_subscribers_is_a_cheap_publish", func(t *testing.T) {
		h := newTestHub()

		require.NoError(t, h.Publish(t.Context(), events.PlatformSync{}))
	})

	t.Run("nil_event_is_rejected", func(t *testing.T) {
		h := newTestHub()

		require.Error(t, h.Publish(t.Context(), nil))
	})
}

func TestHub_Disconnect(t *testing.T) {
	t.Run("purges_all_subscriptions", func(t *testing.T) {
		h := newTestHub()
		conn := newRecordingConn("c1")
		require.NoError(t, h.Register(conn))
		require.NoError(t, h.Join("c1", events.CourierTopic("C1")))
		require.NoError(t, h.Join("c1", events.ZoneTopic("Z1")))

		h.Disconnect("c1")

		assert.Zero(t, h.ConnCount())
		assert.Zero(t, h.SubscriberCount(events.CourierTopic("C1")))
		assert.Zero(t, h.SubscriberCount(events.ZoneTopic("Z1")))

		// Disconnected connection receives nothing.
		require.NoError(t, h.Publish(t.Context(), events.LocationUpdated{EntityID: "C1"}))
		assert.Empty(t, conn.received())
	})

	t.Run("unknown_connection_is_safe", func(t *testing.T) {
		h := newTestHub()
		h.Disconnect("ghost")
	})

	t.Run("id_can_be_reused_after_disconnect", func(t *testing.T) {
		h := newTestHub()
		require.NoError(t, h.Register(newRecordingConn("c1")))
		h.Disconnect("c1")

		require.NoError(t, h.Register(newRecordingConn("c1")))
	})
}
