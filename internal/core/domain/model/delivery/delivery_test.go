package delivery_test

import (
	"testing"
	"time"

	"geozone/internal/core/domain/model/delivery"
	"geozone/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLocation(t *testing.T) kernel.Coordinate {
	t.Helper()
	coord, err := kernel.NewCoordinate(52.52, 13.405)
	require.NoError(t, err)
	return coord
}

func TestNewDelivery(t *testing.T) {
	t.Run("starts_pending_without_courier_or_zone", func(t *testing.T) {
		d, err := delivery.NewDelivery(kernel.NewUUID(), testLocation(t))

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, delivery.Pending, d.Status())
		assert.Nil(t, d.Courier())
		assert.Nil(t, d.Zone())
		assert.Nil(t, d.DeliveredAt())
		assert.False(t, d.CreatedAt().IsZero())
	})

	t.Run("invalid_inputs_are_rejected", func(t *testing.T) {
		_, err := delivery.NewDelivery(kernel.UUID{}, testLocation(t))
		require.Error(t, err)

		_, err = delivery.NewDelivery(kernel.NewUUID(), kernel.Coordinate{})
		require.Error(t, err)
	})
}

func TestDelivery_Validate(t *testing.T) {
	var d *delivery.Delivery
	require.ErrorIs(t, d.Validate(), delivery.ErrDeliveryIsNotConstructed)

	zero := &delivery.Delivery{}
	require.ErrorIs(t, zero.Validate(), delivery.ErrDeliveryIsNotConstructed)
}

func TestDelivery_Lifecycle(t *testing.T) {
	t.Run("full_happy_path", func(t *testing.T) {
		d, err := delivery.NewDelivery(kernel.NewUUID(), testLocation(t))
		require.NoError(t, err)
		courierID := kernel.NewUUID()

		require.NoError(t, d.Assign(courierID))
		assert.Equal(t, delivery.Assigned, d.Status())
		require.NotNil(t, d.Courier())
		assert.True(t, courierID.IsEqual(*d.Courier()))

		require.NoError(t, d.Start())
		assert.Equal(t, delivery.InTransit, d.Status())

		require.NoError(t, d.Complete())
		assert.Equal(t, delivery.Delivered, d.Status())
		require.NotNil(t, d.DeliveredAt())
	})

	t.Run("cancel_from_transit", func(t *testing.T) {
		d, err := delivery.NewDelivery(kernel.NewUUID(), testLocation(t))
		require.NoError(t, err)
		require.NoError(t, d.Assign(kernel.NewUUID()))
		require.NoError(t, d.Start())

		require.NoError(t, d.Cancel())
		assert.Equal(t, delivery.Cancelled, d.Status())
	})

	t.Run("complete_requires_transit", func(t *testing.T) {
		d, err := delivery.NewDelivery(kernel.NewUUID(), testLocation(t))
		require.NoError(t, err)

		require.Error(t, d.Complete())
	})
}

func TestDelivery_MoveTo(t *testing.T) {
	t.Run("updates_location_while_active", func(t *testing.T) {
		d, err := delivery.NewDelivery(kernel.NewUUID(), testLocation(t))
		require.NoError(t, err)
		next, _ := kernel.NewCoordinate(52.53, 13.41)

		require.NoError(t, d.MoveTo(next))

		equal, err := d.Location().IsEqual(next)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("rejected_in_terminal_status", func(t *testing.T) {
		d, err := delivery.NewDelivery(kernel.NewUUID(), testLocation(t))
		require.NoError(t, err)
		require.NoError(t, d.Assign(kernel.NewUUID()))
		require.NoError(t, d.Start())
		require.NoError(t, d.Complete())

		next, _ := kernel.NewCoordinate(52.53, 13.41)
		require.Error(t, d.MoveTo(next))
	})

	t.Run("invalid_location_is_rejected", func(t *testing.T) {
		d, err := delivery.NewDelivery(kernel.NewUUID(), testLocation(t))
		require.NoError(t, err)

		require.Error(t, d.MoveTo(kernel.Coordinate{}))
	})
}

func TestDelivery_ZoneAssignment(t *testing.T) {
	d, err := delivery.NewDelivery(kernel.NewUUID(), testLocation(t))
	require.NoError(t, err)
	zoneID := kernel.NewUUID()

	require.NoError(t, d.AssignZone(zoneID))
	require.NotNil(t, d.Zone())
	assert.True(t, zoneID.IsEqual(*d.Zone()))

	d.ClearZone()
	assert.Nil(t, d.Zone())

	require.Error(t, d.AssignZone(kernel.UUID{}))
}

func TestRestoreDelivery(t *testing.T) {
	t.Run("restores_full_state", func(t *testing.T) {
		id := kernel.NewUUID()
		courierID := kernel.NewUUID()
		zoneID := kernel.NewUUID()
		createdAt := time.Now().UTC().Add(-time.Hour)
		deliveredAt := time.Now().UTC()

		d, err := delivery.RestoreDelivery(
			id, &courierID, &zoneID, testLocation(t),
			delivery.Delivered, createdAt, &deliveredAt,
		)

		require.NoError(t, err)
		assert.Equal(t, delivery.Delivered, d.Status())
		assert.Equal(t, createdAt, d.CreatedAt())
		require.NotNil(t, d.DeliveredAt())
		assert.Equal(t, deliveredAt, *d.DeliveredAt())
	})

	t.Run("invalid_status_is_rejected", func(t *testing.T) {
		_, err := delivery.RestoreDelivery(
			kernel.NewUUID(), nil, nil, testLocation(t),
			delivery.Unknown, time.Now(), nil,
		)
		require.Error(t, err)
	})
}
