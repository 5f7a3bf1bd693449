package integration

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"bookmarkhub-be/internal/entity"
	"bookmarkhub-be/internal/repository/specification"
	"bookmarkhub-be/internal/repository/unitofwork"
	"bookmarkhub-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.BookmarkRepository())
	assert.NotNil(t, uow.UserBookmarkRepository())
	assert.NotNil(t, uow.SpaceRepository())
	assert.NotNil(t, uow.SpaceBookmarkRepository())
	assert.NotNil(t, uow.PartitionRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Bookmark Repository", func(t *testing.T) {
		count, err := uow.BookmarkRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Bookmark count: %d", count)
	})

	t.Run("Check Space Repository", func(t *testing.T) {
		count, err := uow.SpaceRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Space count: %d", count)
	})

	t.Run("Check Partition Registry", func(t *testing.T) {
		partitions, err := uow.PartitionRepository().FindAll(context.Background())
		assert.NoError(t, err)
		t.Logf("Registered segments: %d", len(partitions))
	})
}

// Racing inserts of one source URL must converge on a single id: exactly one
// goroutine creates the row, every other one reads the winner's id back.
func TestConcurrentInsertDedup(t *testing.T) {
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	ctx := context.Background()

	sourceURL := "https://example.com/race/" + uuid.NewString()
	t.Cleanup(func() {
		gormDB.Exec("DELETE FROM bookmarks WHERE source_url = ?", sourceURL)
	})

	const writers = 10
	ids := make([]uuid.UUID, writers)
	dedups := make([]bool, writers)
	errs := make([]error, writers)

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b := entity.Bookmark{
				Id:         uuid.New(),
				Title:      "Race Page",
				SourceURL:  sourceURL,
				SourceType: "article",
				CreatedAt:  time.Now(),
			}
			uow := uowFactory.NewUnitOfWork(ctx)
			dedups[i], errs[i] = uow.BookmarkRepository().InsertOrGet(ctx, &b)
			ids[i] = b.Id
		}(i)
	}
	wg.Wait()

	winners := 0
	for i := 0; i < writers; i++ {
		assert.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i])
		if !dedups[i] {
			winners++
		}
	}
	assert.Equal(t, 1, winners)

	count, err := uowFactory.NewUnitOfWork(ctx).BookmarkRepository().
		Count(ctx, specification.BySourceURL{SourceURL: sourceURL})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
