package main

import (
	"context"
	"log"

	"bookmarkhub-be/internal/bootstrap"
	"bookmarkhub-be/internal/config"
	"bookmarkhub-be/pkg/database"
)

// Invoked by the external scheduler (cron or equivalent). The service owns
// the maintenance operation but no timer: this binary runs it once and exits
// non-zero on failure so the scheduler can alert.
func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	res, err := container.MaintenanceService.Run(context.Background())
	if err != nil {
		log.Fatalf("Maintenance run failed: %v", err)
	}

	log.Printf("Maintenance completed: snapshot v%d, %d partitions, took %s",
		res.SnapshotVersion, res.Partitions, res.Duration)
}
