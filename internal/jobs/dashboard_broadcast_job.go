package jobs

import (
	"context"
	"log/slog"
	"time"

	"geozone/internal/core/application/usecases/queries"
	"geozone/internal/core/domain/events"
	"geozone/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// dashboardSchedule fires every 5 seconds.
const dashboardSchedule = "*/5 * * * * *"

// DashboardBroadcastJob periodically recomputes the platform dashboard
// snapshot and pushes it to dashboard subscribers.
type DashboardBroadcastJob struct {
	handler   queries.GetDashboardMetricsQueryHandler
	publisher ports.EventPublisher
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewDashboardBroadcastJob creates the dashboard broadcast job.
func NewDashboardBroadcastJob(
	handler queries.GetDashboardMetricsQueryHandler,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) *DashboardBroadcastJob {
	return &DashboardBroadcastJob{
		handler:   handler,
		publisher: publisher,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "dashboard_broadcast_job"),
	}
}

// Start schedules the broadcast every 5 seconds.
func (j *DashboardBroadcastJob) Start() error {
	_, err := j.cron.AddFunc(dashboardSchedule, func() {
		ctx := context.Background()
		if err := j.broadcast(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Dashboard broadcast failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dashboard broadcast job started (running every 5 seconds)")
	return nil
}

// Stop stops the dashboard broadcast job.
func (j *DashboardBroadcastJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dashboard broadcast job stopped")
}

// broadcast runs one tick: query the metrics, publish the snapshot.
func (j *DashboardBroadcastJob) broadcast(ctx context.Context) error {
	metrics, err := j.handler.Handle(ctx, queries.NewGetDashboardMetricsQuery())
	if err != nil {
		return err
	}

	return j.publisher.Publish(ctx, events.PlatformSync{
		ActiveCouriers:     metrics.ActiveCouriers,
		ActiveDeliveries:   metrics.ActiveDeliveries,
		DeliveredToday:     metrics.DeliveredToday,
		AvgDeliveryMinutes: metrics.AvgDeliveryMinutes,
		GeneratedAt:        time.Now().UTC(),
	})
}
