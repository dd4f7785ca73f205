package queries

import (
	"errors"

	"geozone/internal/pkg/guard"
)

var ErrGetDashboardMetricsQueryIsNotConstructed = errors.New(
	"GetDashboardMetricsQuery must be created via NewGetDashboardMetricsQuery constructor",
)

// GetDashboardMetricsQuery retrieves the aggregate platform snapshot the
// periodic dashboard broadcast pushes to subscribers.
type GetDashboardMetricsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardMetricsQuery creates a parameterless dashboard metrics
// query.
func NewGetDashboardMetricsQuery() GetDashboardMetricsQuery {
	return GetDashboardMetricsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardMetricsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardMetricsQueryIsNotConstructed)
}

// GetDashboardMetricsQueryResponse is the dashboard read model: in-flight
// work and today's completion statistics.
type GetDashboardMetricsQueryResponse struct {
	ActiveCouriers     int
	ActiveDeliveries   int
	DeliveredToday     int
	AvgDeliveryMinutes float64
}
