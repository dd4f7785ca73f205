package cmd

import (
	"log/slog"

	"geozone/internal/adapters/out/postgres"
	"geozone/internal/core/application/usecases/commands"
	"geozone/internal/core/application/usecases/queries"
	"geozone/internal/core/domain/services"
	"geozone/internal/hub"
	"geozone/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, domain services, and use case handlers
// together. The hub is created here so its lifecycle is tied to the process,
// not to ambient global state.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	eventHub   *hub.Hub
	logger     *slog.Logger
}

// NewCompositionRoot creates the composition root over an open database
// connection.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		eventHub:   hub.NewHub(logger),
		logger:     logger,
	}
}

// EventHub returns the process-wide distribution hub.
func (c *CompositionRoot) EventHub() *hub.Hub {
	return c.eventHub
}

func (c *CompositionRoot) CreateCreateZoneCommandHandler() commands.CreateZoneCommandHandler {
	var f commands.ZoneUoWFactory = FuncZoneUoWFactory(func() commands.ZoneUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateZoneCommandHandler(f, c.eventHub)
}

func (c *CompositionRoot) CreateUpdateZoneCommandHandler() commands.UpdateZoneCommandHandler {
	var f commands.ZoneUoWFactory = FuncZoneUoWFactory(func() commands.ZoneUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateZoneCommandHandler(f, c.eventHub)
}

func (c *CompositionRoot) CreateRemoveZoneCommandHandler() commands.RemoveZoneCommandHandler {
	var f commands.ZoneUoWFactory = FuncZoneUoWFactory(func() commands.ZoneUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveZoneCommandHandler(f, c.eventHub)
}

func (c *CompositionRoot) CreateUpdateLocationCommandHandler() commands.UpdateLocationCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateLocationCommandHandler(
		f, services.NewZoneSuggester(), c.eventHub, c.config.SuggestMaxDistanceKm)
}

func (c *CompositionRoot) CreateSuggestZonesQueryHandler() queries.SuggestZonesQueryHandler {
	return queries.NewSuggestZonesQueryHandler(
		c.uowFactory.Create().ZoneRepository(), services.NewZoneSuggester())
}

func (c *CompositionRoot) CreateCheckBoundaryQueryHandler() queries.CheckBoundaryQueryHandler {
	return queries.NewCheckBoundaryQueryHandler(
		c.uowFactory.Create().ZoneRepository(),
		services.NewBoundaryDetector(),
		c.config.BoundaryBufferKm)
}

func (c *CompositionRoot) CreateGetDashboardMetricsQueryHandler() queries.GetDashboardMetricsQueryHandler {
	return queries.NewGetDashboardMetricsQueryHandler(c.gormDB)
}

// CreateJobManager builds the scheduled jobs over non-transactional
// repositories; each tick is a read pass plus hub publishes.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	reader := c.uowFactory.Create()

	dashboardJob := jobs.NewDashboardBroadcastJob(
		c.CreateGetDashboardMetricsQueryHandler(), c.eventHub, c.logger)

	scanJob := jobs.NewBoundaryScanJob(
		reader.ZoneRepository(),
		reader.DeliveryRepository(),
		services.NewBoundaryDetector(),
		c.eventHub,
		c.config.BoundaryBufferKm,
		c.logger)

	return jobs.NewJobManager(dashboardJob, scanJob)
}

type FuncZoneUoWFactory func() commands.ZoneUoW

func (f FuncZoneUoWFactory) Create() commands.ZoneUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
