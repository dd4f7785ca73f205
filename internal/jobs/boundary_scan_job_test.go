package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"geozone/internal/core/domain/events"
	"geozone/internal/core/domain/model/delivery"
	"geozone/internal/core/domain/model/kernel"
	"geozone/internal/core/domain/model/zone"
	"geozone/internal/core/domain/services"
	"geozone/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockZoneRepository struct{ mock.Mock }

func (m *MockZoneRepository) Add(_ context.Context, _ *zone.Zone) error {
	return errors.New("not implemented in mock")
}
func (m *MockZoneRepository) Update(_ context.Context, _ *zone.Zone) error {
	return errors.New("not implemented in mock")
}
func (m *MockZoneRepository) Delete(_ context.Context, _ kernel.UUID) error {
	return errors.New("not implemented in mock")
}
func (m *MockZoneRepository) Get(_ context.Context, _ kernel.UUID) (*zone.Zone, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockZoneRepository) GetAllActive(ctx context.Context) ([]*zone.Zone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*zone.Zone), args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(_ context.Context, _ *delivery.Delivery) error {
	return errors.New("not implemented in mock")
}
func (m *MockDeliveryRepository) Update(_ context.Context, _ *delivery.Delivery) error {
	return errors.New("not implemented in mock")
}
func (m *MockDeliveryRepository) Get(_ context.Context, _ kernel.UUID) (*delivery.Delivery, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockDeliveryRepository) GetAllActive(_ context.Context) ([]*delivery.Delivery, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockDeliveryRepository) GetAllActiveInZone(
	ctx context.Context, zoneID kernel.UUID,
) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, zoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, event events.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func triangleZone(t *testing.T) *zone.Zone {
	t.Helper()
	vertices := make([]kernel.Coordinate, 0, 3)
	for _, p := range [][2]float64{{0, 0}, {0, 4}, {4, 0}} {
		coord, err := kernel.NewCoordinate(p[0], p[1])
		require.NoError(t, err)
		vertices = append(vertices, coord)
	}
	polygon, err := kernel.NewPolygon(vertices)
	require.NoError(t, err)
	z, err := zone.NewZone(kernel.NewUUID(), "triangle", polygon)
	require.NoError(t, err)
	return z
}

func deliveryAt(t *testing.T, lat, lng float64) *delivery.Delivery {
	t.Helper()
	location, err := kernel.NewCoordinate(lat, lng)
	require.NoError(t, err)
	d, err := delivery.NewDelivery(kernel.NewUUID(), location)
	require.NoError(t, err)
	return d
}

func TestBoundaryScanJob_Scan(t *testing.T) {
	t.Run("publishes_alert_per_looming_delivery", func(t *testing.T) {
		ctx := context.Background()
		z := triangleZone(t)
		looming := deliveryAt(t, -0.001, -0.001)
		inside := deliveryAt(t, 0.5, 0.5)

		zoneRepo := new(MockZoneRepository)
		zoneRepo.On("GetAllActive", ctx).Return([]*zone.Zone{z}, nil).Once()

		deliveryRepo := new(MockDeliveryRepository)
		deliveryRepo.On("GetAllActiveInZone", ctx, z.ID()).
			Return([]*delivery.Delivery{looming, inside}, nil).Once()

		publisher := new(MockEventPublisher)
		publisher.On("Publish", ctx, mock.MatchedBy(func(e events.Event) bool {
			alert, ok := e.(events.BoundaryAlertRaised)
			return ok &&
				alert.EntityID == looming.ID().String() &&
				alert.ZoneID == z.ID().String() &&
				alert.DistanceMeters > 0
		})).Return(nil).Once()

		job := jobs.NewBoundaryScanJob(
			zoneRepo, deliveryRepo, services.NewBoundaryDetector(),
			publisher, services.DefaultBufferKm, testLogger())

		require.NoError(t, job.Scan(ctx))
		publisher.AssertExpectations(t)
	})

	t.Run("quiet_zone_publishes_nothing", func(t *testing.T) {
		ctx := context.Background()
		z := triangleZone(t)

		zoneRepo := new(MockZoneRepository)
		zoneRepo.On("GetAllActive", ctx).Return([]*zone.Zone{z}, nil).Once()

		deliveryRepo := new(MockDeliveryRepository)
		deliveryRepo.On("GetAllActiveInZone", ctx, z.ID()).
			Return([]*delivery.Delivery{deliveryAt(t, 0.5, 0.5)}, nil).Once()

		publisher := new(MockEventPublisher)

		job := jobs.NewBoundaryScanJob(
			zoneRepo, deliveryRepo, services.NewBoundaryDetector(),
			publisher, services.DefaultBufferKm, testLogger())

		require.NoError(t, job.Scan(ctx))
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("repository_error_propagates", func(t *testing.T) {
		ctx := context.Background()

		zoneRepo := new(MockZoneRepository)
		zoneRepo.On("GetAllActive", ctx).Return(nil, errors.New("db down")).Once()

		job := jobs.NewBoundaryScanJob(
			zoneRepo, new(MockDeliveryRepository), services.NewBoundaryDetector(),
			new(MockEventPublisher), services.DefaultBufferKm, testLogger())

		err := job.Scan(ctx)
		assert.Error(t, err)
	})
}
