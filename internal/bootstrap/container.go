package bootstrap

import (
	"log"

	"bookmarkhub-be/internal/aggregate"
	"bookmarkhub-be/internal/config"
	"bookmarkhub-be/internal/controller"
	"bookmarkhub-be/internal/guard"
	"bookmarkhub-be/internal/partition"
	"bookmarkhub-be/internal/pkg/logger"
	"bookmarkhub-be/internal/repository/unitofwork"
	"bookmarkhub-be/internal/service"
	pktNats "bookmarkhub-be/pkg/nats"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	BookmarkController    controller.IBookmarkController
	SpaceController       controller.ISpaceController
	MaintenanceController controller.IMaintenanceController

	// Exposed for cmd entry points
	MaintenanceService service.IMaintenanceService
	Logger             logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus (optional; the stores work without it)
	var eventPublisher *pktNats.Publisher
	if cfg.Nats.Enabled {
		p, err := pktNats.NewPublisher(cfg.Nats.URL)
		if err != nil {
			log.Printf("Warn: NATS publisher unavailable, events disabled: %v", err)
		} else {
			eventPublisher = p
		}
	}

	// 3. Domain Components
	partitionManager := partition.NewManager(db, uowFactory, sysLogger)
	accessGuard := guard.NewGuard(uowFactory)
	aggregateIndex := aggregate.NewIndex(uowFactory, sysLogger)

	// 4. Services
	bookmarkService := service.NewBookmarkService(uowFactory, partitionManager, accessGuard, eventPublisher, sysLogger)
	spaceService := service.NewSpaceService(uowFactory, accessGuard, eventPublisher, sysLogger)
	aggregateService := service.NewAggregateService(aggregateIndex)
	maintenanceService := service.NewMaintenanceService(partitionManager, aggregateIndex, sysLogger)

	// 5. Controllers
	return &Container{
		BookmarkController:    controller.NewBookmarkController(bookmarkService, aggregateService),
		SpaceController:       controller.NewSpaceController(spaceService),
		MaintenanceController: controller.NewMaintenanceController(maintenanceService),
		MaintenanceService:    maintenanceService,
		Logger:                sysLogger,
	}
}
