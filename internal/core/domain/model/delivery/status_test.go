package delivery_test

import (
	"testing"

	"geozone/internal/core/domain/model/delivery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid_statuses", func(t *testing.T) {
		for _, s := range []delivery.Status{
			delivery.Pending,
			delivery.Assigned,
			delivery.InTransit,
			delivery.Delivered,
			delivery.Cancelled,
		} {
			require.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("invalid_statuses", func(t *testing.T) {
		require.Error(t, delivery.Unknown.Validate())
		require.Error(t, delivery.Status(42).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", delivery.Pending.String())
	assert.Equal(t, "Assigned", delivery.Assigned.String())
	assert.Equal(t, "InTransit", delivery.InTransit.String())
	assert.Equal(t, "Delivered", delivery.Delivered.String())
	assert.Equal(t, "Cancelled", delivery.Cancelled.String())
	assert.Equal(t, "Unknown", delivery.Status(42).String())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, delivery.Delivered.IsTerminal())
	assert.True(t, delivery.Cancelled.IsTerminal())
	assert.False(t, delivery.Pending.IsTerminal())
	assert.False(t, delivery.Assigned.IsTerminal())
	assert.False(t, delivery.InTransit.IsTerminal())
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("assign", func(t *testing.T) {
		next, err := delivery.Pending.Assign()
		require.NoError(t, err)
		assert.Equal(t, delivery.Assigned, next)

		// Reassignment is allowed.
		next, err = delivery.Assigned.Assign()
		require.NoError(t, err)
		assert.Equal(t, delivery.Assigned, next)

		_, err = delivery.InTransit.Assign()
		require.Error(t, err)
		_, err = delivery.Delivered.Assign()
		require.Error(t, err)
	})

	t.Run("start", func(t *testing.T) {
		next, err := delivery.Assigned.Start()
		require.NoError(t, err)
		assert.Equal(t, delivery.InTransit, next)

		_, err = delivery.Pending.Start()
		require.Error(t, err)
	})

	t.Run("complete", func(t *testing.T) {
		next, err := delivery.InTransit.Complete()
		require.NoError(t, err)
		assert.Equal(t, delivery.Delivered, next)

		_, err = delivery.Assigned.Complete()
		require.Error(t, err)
		_, err = delivery.Delivered.Complete()
		require.Error(t, err)
	})

	t.Run("cancel", func(t *testing.T) {
		for _, s := range []delivery.Status{delivery.Pending, delivery.Assigned, delivery.InTransit} {
			next, err := s.Cancel()
			require.NoError(t, err, s.String())
			assert.Equal(t, delivery.Cancelled, next)
		}

		_, err := delivery.Delivered.Cancel()
		require.Error(t, err)
		_, err = delivery.Cancelled.Cancel()
		require.Error(t, err)
	})
}
