package service

import (
	"context"
	"time"

	"bookmarkhub-be/internal/aggregate"
	"bookmarkhub-be/internal/dto"
	"bookmarkhub-be/internal/partition"
	"bookmarkhub-be/internal/pkg/logger"
)

// IMaintenanceService is the entry point for the external scheduler. It owns
// no timer of its own: cron (or an operator) calls Run, and refresh failures
// surface here, never to interactive readers.
type IMaintenanceService interface {
	Run(ctx context.Context) (*dto.RunMaintenanceResponse, error)
}

type maintenanceService struct {
	partitionManager *partition.Manager
	index            *aggregate.Index
	logger           logger.ILogger
}

func NewMaintenanceService(
	partitionManager *partition.Manager,
	index *aggregate.Index,
	log logger.ILogger,
) IMaintenanceService {
	return &maintenanceService{
		partitionManager: partitionManager,
		index:            index,
		logger:           log,
	}
}

func (c *maintenanceService) Run(ctx context.Context) (*dto.RunMaintenanceResponse, error) {
	started := time.Now()

	// Pre-create the segment for next month so month rollover never races
	// an insert. EndsAt is the first instant of the following month, which
	// AddDate is not on the last days of January.
	now := time.Now()
	for _, t := range []time.Time{now, partition.SegmentFor(now).EndsAt} {
		if err := c.partitionManager.EnsurePartitionFor(ctx, t); err != nil {
			return nil, err
		}
	}

	if err := c.partitionManager.RefreshStatistics(ctx); err != nil {
		return nil, err
	}

	if err := c.index.Refresh(ctx); err != nil {
		// The prior snapshot stays valid; the failure is the maintenance
		// caller's to handle.
		if c.logger != nil {
			c.logger.Error("maintenance", "Aggregate refresh failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return nil, err
	}

	partitions, err := c.partitionManager.ListPartitions(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.RunMaintenanceResponse{
		SnapshotVersion: c.index.Version(),
		Partitions:      len(partitions),
		Duration:        time.Since(started).String(),
	}, nil
}
