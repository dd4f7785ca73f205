// Package jobs provides scheduled background tasks for the geofencing
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3:
//
// 1. DashboardBroadcastJob - every 5 seconds, recomputes the platform
// dashboard snapshot and publishes it to the dashboard topic. The broadcast
// happens whether or not anyone is subscribed; with zero subscribers it is
// a cheap publish, not a skip.
//
// 2. BoundaryScanJob - every 5 seconds, runs the boundary alert detector
// over every active zone's in-flight deliveries and publishes an alert
// event per detection.
//
// Jobs are managed through JobManager, which starts and stops them together
// with the process. A failed tick is logged; the next tick proceeds
// normally.
package jobs
