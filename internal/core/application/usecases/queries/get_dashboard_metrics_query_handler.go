package queries

import (
	"context"

	"geozone/internal/core/domain/model/delivery"

	"gorm.io/gorm"
)

// GetDashboardMetricsQueryHandler computes the dashboard snapshot with one
// SQL pass over the deliveries table. Uses direct SQL for optimal read
// performance in the CQRS pattern.
type GetDashboardMetricsQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardMetricsQueryHandler creates a handler for dashboard
// metrics queries.
func NewGetDashboardMetricsQueryHandler(db *gorm.DB) GetDashboardMetricsQueryHandler {
	return GetDashboardMetricsQueryHandler{db: db}
}

// Handle executes the metrics query. Averages cover deliveries completed
// since midnight; an empty table yields all zeros rather than NULLs.
func (h GetDashboardMetricsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardMetricsQuery,
) (GetDashboardMetricsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardMetricsQueryResponse{}, err
	}

	var response GetDashboardMetricsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(DISTINCT courier_id) FILTER (
				WHERE status IN ? AND courier_id IS NOT NULL
			) AS active_couriers,
			COUNT(*) FILTER (WHERE status IN ?) AS active_deliveries,
			COUNT(*) FILTER (
				WHERE status = ? AND delivered_at >= date_trunc('day', now())
			) AS delivered_today,
			COALESCE(AVG(
				EXTRACT(EPOCH FROM (delivered_at - created_at)) / 60
			) FILTER (
				WHERE status = ? AND delivered_at >= date_trunc('day', now())
			), 0) AS avg_delivery_minutes
		FROM deliveries
	`,
		activeStatuses(), activeStatuses(),
		int(delivery.Delivered), int(delivery.Delivered),
	).Row()

	if err := row.Scan(
		&response.ActiveCouriers,
		&response.ActiveDeliveries,
		&response.DeliveredToday,
		&response.AvgDeliveryMinutes,
	); err != nil {
		return GetDashboardMetricsQueryResponse{}, err
	}

	return response, nil
}

func activeStatuses() []int {
	return []int{
		int(delivery.Pending),
		int(delivery.Assigned),
		int(delivery.InTransit),
	}
}
