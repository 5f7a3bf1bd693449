package partition

import (
	"context"
	"fmt"
	"time"

	"bookmarkhub-be/internal/entity"
	"bookmarkhub-be/internal/pkg/logger"
	"bookmarkhub-be/internal/repository/unitofwork"

	"gorm.io/gorm"
)

// Manager maps bookmark creation timestamps to calendar-month segments and
// creates them lazily. Segments bound maintenance work (per-segment partial
// indexes, per-segment ANALYZE) to recent activity; they never participate in
// dedup or reads, so a missing segment is a degraded state, not a data error.
type Manager struct {
	db         *gorm.DB
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewManager(db *gorm.DB, uowFactory unitofwork.RepositoryFactory, log logger.ILogger) *Manager {
	return &Manager{
		db:         db,
		uowFactory: uowFactory,
		logger:     log,
	}
}

// SegmentFor returns the segment covering t: name and [start, end) bounds.
func SegmentFor(t time.Time) entity.BookmarkPartition {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	return entity.BookmarkPartition{
		Name:     fmt.Sprintf("bookmarks_y%04dm%02d", start.Year(), int(start.Month())),
		StartsAt: start,
		EndsAt:   end,
	}
}

// EnsurePartitionFor registers the covering segment if absent and, on
// Postgres, backs it with a partial index over the month's created_at range.
// Idempotent; safe to call on every insert.
func (m *Manager) EnsurePartitionFor(ctx context.Context, t time.Time) error {
	seg := SegmentFor(t)
	uow := m.uowFactory.NewUnitOfWork(ctx)

	created, err := uow.PartitionRepository().Ensure(ctx, &seg)
	if err != nil {
		return err
	}
	if !created {
		return nil
	}

	if m.db.Dialector.Name() == "postgres" {
		ddl := fmt.Sprintf(
			`CREATE INDEX IF NOT EXISTS %s_created_idx ON bookmarks (created_at) WHERE created_at >= '%s' AND created_at < '%s'`,
			seg.Name,
			seg.StartsAt.Format("2006-01-02"),
			seg.EndsAt.Format("2006-01-02"),
		)
		if err := m.db.WithContext(ctx).Exec(ddl).Error; err != nil {
			return fmt.Errorf("create segment index %s: %w", seg.Name, err)
		}
	}

	if m.logger != nil {
		m.logger.Info("partition", "Created bookmark segment", map[string]interface{}{
			"name":      seg.Name,
			"starts_at": seg.StartsAt,
			"ends_at":   seg.EndsAt,
		})
	}
	return nil
}

func (m *Manager) ListPartitions(ctx context.Context) ([]*entity.BookmarkPartition, error) {
	uow := m.uowFactory.NewUnitOfWork(ctx)
	return uow.PartitionRepository().FindAll(ctx)
}

// RefreshStatistics re-analyzes the bookmark tables so the planner keeps up
// with recent segments. No-op outside Postgres.
func (m *Manager) RefreshStatistics(ctx context.Context) error {
	if m.db.Dialector.Name() != "postgres" {
		return nil
	}
	for _, table := range []string{"bookmarks", "user_bookmarks", "user_spaces", "space_bookmarks"} {
		if err := m.db.WithContext(ctx).Exec("ANALYZE " + table).Error; err != nil {
			return fmt.Errorf("analyze %s: %w", table, err)
		}
	}
	return nil
}
