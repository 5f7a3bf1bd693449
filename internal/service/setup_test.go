package service

import (
	"testing"

	"bookmarkhub-be/internal/aggregate"
	"bookmarkhub-be/internal/guard"
	"bookmarkhub-be/internal/model"
	"bookmarkhub-be/internal/partition"
	"bookmarkhub-be/internal/repository/unitofwork"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testServices struct {
	db         *gorm.DB
	uowFactory unitofwork.RepositoryFactory
	index      *aggregate.Index

	bookmarks   IBookmarkService
	spaces      ISpaceService
	aggregates  IAggregateService
	maintenance IMaintenanceService
}

func setupServices(t *testing.T) *testServices {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&model.Bookmark{},
		&model.UserBookmark{},
		&model.UserSpace{},
		&model.SpaceBookmark{},
		&model.BookmarkPartition{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	partitionManager := partition.NewManager(db, uowFactory, nil)
	accessGuard := guard.NewGuard(uowFactory)
	index := aggregate.NewIndex(uowFactory, nil)

	return &testServices{
		db:          db,
		uowFactory:  uowFactory,
		index:       index,
		bookmarks:   NewBookmarkService(uowFactory, partitionManager, accessGuard, nil, nil),
		spaces:      NewSpaceService(uowFactory, accessGuard, nil, nil),
		aggregates:  NewAggregateService(index),
		maintenance: NewMaintenanceService(partitionManager, index, nil),
	}
}
