package jobs

import (
	"context"
	"log/slog"

	"geozone/internal/core/domain/events"
	"geozone/internal/core/domain/model/delivery"
	"geozone/internal/core/domain/services"
	"geozone/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// boundaryScanSchedule fires every 5 seconds.
const boundaryScanSchedule = "*/5 * * * * *"

// BoundaryScanJob periodically runs the boundary alert detector over every
// active zone's in-flight deliveries and publishes an event per alert.
type BoundaryScanJob struct {
	zoneRepo     ports.ZoneRepository
	deliveryRepo ports.DeliveryRepository
	detector     *services.BoundaryDetector
	publisher    ports.EventPublisher
	bufferKm     float64
	cron         *cron.Cron
	logger       *slog.Logger
}

// NewBoundaryScanJob creates the boundary scan job. bufferKm is the
// configured alert buffer around zone boundaries.
func NewBoundaryScanJob(
	zoneRepo ports.ZoneRepository,
	deliveryRepo ports.DeliveryRepository,
	detector *services.BoundaryDetector,
	publisher ports.EventPublisher,
	bufferKm float64,
	logger *slog.Logger,
) *BoundaryScanJob {
	return &BoundaryScanJob{
		zoneRepo:     zoneRepo,
		deliveryRepo: deliveryRepo,
		detector:     detector,
		publisher:    publisher,
		bufferKm:     bufferKm,
		cron:         cron.New(cron.WithSeconds()),
		logger:       logger.With("component", "boundary_scan_job"),
	}
}

// Start schedules the scan every 5 seconds.
func (j *BoundaryScanJob) Start() error {
	_, err := j.cron.AddFunc(boundaryScanSchedule, func() {
		ctx := context.Background()
		if err := j.Scan(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Boundary scan failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Boundary scan job started (running every 5 seconds)")
	return nil
}

// Stop stops the boundary scan job.
func (j *BoundaryScanJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Boundary scan job stopped")
}

// Scan runs one detection pass over all active zones. Only active zones are
// loaded, so the detector's inactive-zone rejection never fires here.
func (j *BoundaryScanJob) Scan(ctx context.Context) error {
	zones, err := j.zoneRepo.GetAllActive(ctx)
	if err != nil {
		return err
	}

	for _, z := range zones {
		deliveries, deliveriesErr := j.deliveryRepo.GetAllActiveInZone(ctx, z.ID())
		if deliveriesErr != nil {
			return deliveriesErr
		}

		alerts, detectErr := j.detector.Detect(z, toTrackedEntities(deliveries), j.bufferKm)
		if detectErr != nil {
			return detectErr
		}

		for _, alert := range alerts {
			err = j.publisher.Publish(ctx, events.BoundaryAlertRaised{
				EntityID:       alert.EntityID.String(),
				ZoneID:         alert.ZoneID.String(),
				DistanceMeters: alert.DistanceMeters,
				Latitude:       alert.Location.Latitude(),
				Longitude:      alert.Location.Longitude(),
			})
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func toTrackedEntities(deliveries []*delivery.Delivery) []services.TrackedEntity {
	entities := make([]services.TrackedEntity, 0, len(deliveries))
	for _, d := range deliveries {
		entities = append(entities, services.TrackedEntity{
			ID:       d.ID(),
			Location: d.Location(),
			Terminal: d.Status().IsTerminal(),
		})
	}
	return entities
}
