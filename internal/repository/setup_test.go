package repository

import (
	"testing"

	"waxclub/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory store with the same TranslateError setting
// the production connection uses, so duplicate-key behavior matches.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Club{},
		&models.Membership{},
		&models.Invitation{},
		&models.Post{},
		&models.Comment{},
		&models.Vote{},
		&models.Album{},
		&models.AlbumGenre{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}
