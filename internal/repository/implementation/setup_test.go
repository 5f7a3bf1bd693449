package implementation

import (
	"testing"

	"bookmarkhub-be/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
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
	return db
}
