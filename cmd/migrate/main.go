package main

import (
	"log"
	"os"

	"bookmarkhub-be/internal/model"
	"bookmarkhub-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting Authoritative GORM Migration...")

	// 3. Pre-Migration: Extensions (Things GORM AutoMigrate doesn't do)
	log.Println("Step 1: Setting up Extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models
	log.Println("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.User{},
		&model.Bookmark{},
		&model.UserBookmark{},
		&model.UserSpace{},
		&model.SpaceBookmark{},
		&model.BookmarkPartition{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Post-Migration: the active-join view used for ad-hoc inspection.
	// The unique index on bookmarks.source_url is authoritative for dedup:
	// time-range segments are realized as partial indexes (see the partition
	// manager) precisely so that the global uniqueness guarantee survives.
	log.Println("Step 3: Creating Views...")

	postMigrationSQL := []string{
		`CREATE OR REPLACE VIEW active_bookmarks_with_spaces AS
		 SELECT ub.user_id, b.id AS bookmark_id, b.title, b.description, b.image_url, b.source_url, b.source_type, b.created_at,
		        us.id AS space_id, us.space_name, us.description AS space_description
		 FROM user_bookmarks ub
		 JOIN bookmarks b ON b.id = ub.bookmark_id
		 LEFT JOIN space_bookmarks sb ON sb.bookmark_id = b.id AND sb.deleted_at IS NULL
		 LEFT JOIN user_spaces us ON us.id = sb.space_id AND us.deleted_at IS NULL
		 WHERE ub.deleted_at IS NULL;`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("Success: Database migration completed successfully via GORM.")
}
