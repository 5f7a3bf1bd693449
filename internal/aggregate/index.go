package aggregate

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"bookmarkhub-be/internal/apperr"
	"bookmarkhub-be/internal/entity"
	"bookmarkhub-be/internal/pkg/logger"
	"bookmarkhub-be/internal/repository/specification"
	"bookmarkhub-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// Snapshot is one fully-materialized aggregate build. Rows live in a go-cache
// store keyed by user id; the snapshot as a whole is immutable once built.
type Snapshot struct {
	Version int64
	BuiltAt time.Time
	rows    *cache.Cache
}

func (s *Snapshot) RowsFor(userId uuid.UUID) []*entity.AggregateRow {
	if v, found := s.rows.Get(userId.String()); found {
		return v.([]*entity.AggregateRow)
	}
	return []*entity.AggregateRow{}
}

// Index precomputes the user → bookmarks → spaces join. Refresh rebuilds the
// whole snapshot and swaps it in atomically: readers hold either the old or
// the new snapshot in full, never a partial mix.
type Index struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger

	current   atomic.Pointer[Snapshot]
	version   atomic.Int64
	refreshMu sync.Mutex
}

func NewIndex(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) *Index {
	return &Index{
		uowFactory: uowFactory,
		logger:     log,
	}
}

// Refresh recomputes the aggregate from current store state. Overlapping
// refreshes are wasted work, so a refresh that finds another one running
// returns ErrUnavailable rather than queueing. A failed build leaves the
// prior snapshot untouched.
func (i *Index) Refresh(ctx context.Context) error {
	if !i.refreshMu.TryLock() {
		return apperr.Unavailable("aggregate refresh already in progress")
	}
	defer i.refreshMu.Unlock()

	started := time.Now()
	uow := i.uowFactory.NewUnitOfWork(ctx)

	associations, err := uow.UserBookmarkRepository().FindAllActive(ctx)
	if err != nil {
		return err
	}

	rowsByUser, err := i.buildRows(ctx, uow, associations)
	if err != nil {
		return err
	}

	store := cache.New(cache.NoExpiration, 0)
	total := 0
	for userId, rows := range rowsByUser {
		store.Set(userId.String(), rows, cache.NoExpiration)
		total += len(rows)
	}

	snap := &Snapshot{
		Version: i.version.Add(1),
		BuiltAt: time.Now(),
		rows:    store,
	}
	i.current.Store(snap)

	if i.logger != nil {
		i.logger.Info("aggregate", "Snapshot refreshed", map[string]interface{}{
			"version":  snap.Version,
			"users":    len(rowsByUser),
			"rows":     total,
			"duration": time.Since(started).String(),
		})
	}
	return nil
}

// Query reads the latest completed snapshot. Results may be stale relative to
// writes after the last Refresh; callers that cannot tolerate staleness use
// QueryLive.
func (i *Index) Query(userId uuid.UUID) ([]*entity.AggregateRow, error) {
	snap := i.current.Load()
	if snap == nil {
		return nil, apperr.Unavailable("no aggregate snapshot has completed yet")
	}
	return snap.RowsFor(userId), nil
}

// QueryLive bypasses the snapshot and composes the four stores directly.
func (i *Index) QueryLive(ctx context.Context, userId uuid.UUID) ([]*entity.AggregateRow, error) {
	uow := i.uowFactory.NewUnitOfWork(ctx)

	associations, err := uow.UserBookmarkRepository().FindActiveByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	rowsByUser, err := i.buildRows(ctx, uow, associations)
	if err != nil {
		return nil, err
	}
	if rows, ok := rowsByUser[userId]; ok {
		return rows, nil
	}
	return []*entity.AggregateRow{}, nil
}

// Version reports the version of the snapshot readers currently see, zero
// when none has completed.
func (i *Index) Version() int64 {
	if snap := i.current.Load(); snap != nil {
		return snap.Version
	}
	return 0
}

// buildRows joins active associations with bookmark records, active space
// memberships and active spaces. The space list on a row is every active
// membership of that bookmark in a still-active space, regardless of who owns
// the space.
func (i *Index) buildRows(ctx context.Context, uow unitofwork.UnitOfWork, associations []*entity.UserBookmark) (map[uuid.UUID][]*entity.AggregateRow, error) {
	result := make(map[uuid.UUID][]*entity.AggregateRow)
	if len(associations) == 0 {
		return result, nil
	}

	bookmarkIdSet := make(map[uuid.UUID]struct{})
	for _, a := range associations {
		bookmarkIdSet[a.BookmarkId] = struct{}{}
	}
	bookmarkIds := make([]uuid.UUID, 0, len(bookmarkIdSet))
	for id := range bookmarkIdSet {
		bookmarkIds = append(bookmarkIds, id)
	}

	bookmarks, err := uow.BookmarkRepository().FindAll(ctx, specification.ByIDs{IDs: bookmarkIds})
	if err != nil {
		return nil, err
	}
	bookmarkById := make(map[uuid.UUID]*entity.Bookmark, len(bookmarks))
	for _, b := range bookmarks {
		bookmarkById[b.Id] = b
	}

	memberships, err := uow.SpaceBookmarkRepository().FindActiveByBookmarkIDs(ctx, bookmarkIds)
	if err != nil {
		return nil, err
	}

	spaceIdSet := make(map[uuid.UUID]struct{})
	for _, m := range memberships {
		spaceIdSet[m.SpaceId] = struct{}{}
	}
	spaceRefById := make(map[uuid.UUID]entity.SpaceRef)
	if len(spaceIdSet) > 0 {
		spaceIds := make([]uuid.UUID, 0, len(spaceIdSet))
		for id := range spaceIdSet {
			spaceIds = append(spaceIds, id)
		}
		spaces, err := uow.SpaceRepository().FindAll(ctx, specification.ByIDs{IDs: spaceIds})
		if err != nil {
			return nil, err
		}
		for _, s := range spaces {
			spaceRefById[s.Id] = entity.SpaceRef{
				SpaceId:     s.Id,
				SpaceName:   s.SpaceName,
				Description: s.Description,
			}
		}
	}

	spacesByBookmark := make(map[uuid.UUID][]entity.SpaceRef)
	for _, m := range memberships {
		// Memberships of tombstoned spaces stay in the store but have no
		// entry here, which is exactly the active-filter join.
		if ref, ok := spaceRefById[m.SpaceId]; ok {
			spacesByBookmark[m.BookmarkId] = append(spacesByBookmark[m.BookmarkId], ref)
		}
	}

	for _, a := range associations {
		b, ok := bookmarkById[a.BookmarkId]
		if !ok {
			continue
		}
		spaces := spacesByBookmark[a.BookmarkId]
		if spaces == nil {
			spaces = []entity.SpaceRef{}
		}
		result[a.UserId] = append(result[a.UserId], &entity.AggregateRow{
			UserId:      a.UserId,
			BookmarkId:  b.Id,
			Title:       b.Title,
			Description: b.Description,
			ImageURL:    b.ImageURL,
			SourceURL:   b.SourceURL,
			SourceType:  b.SourceType,
			CreatedAt:   b.CreatedAt,
			Spaces:      spaces,
		})
	}
	return result, nil
}
