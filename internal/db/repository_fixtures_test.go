package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/sproutworks/ecopods/internal/models"
	"gorm.io/gorm"
)

func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "ecopods-repo-test.db")
	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return database
}

func createTestUser(t *testing.T, repos *Repositories, email string) models.User {
	t.Helper()

	user := models.User{
		Name:      "Test User",
		Email:     email,
		Points:    0,
		CreatedAt: time.Now().UTC(),
	}
	if err := repos.Users.Create(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func buildTestOrder(id string, owner models.User, createdAt time.Time) models.Order {
	return models.Order{
		ID:         id,
		CreatedAt:  createdAt,
		OwnerEmail: owner.Email,
		User:       owner,
		WasteType:  "newspaper",
		Quantity:   2.5,
		Seed:       "tulsi",
		Pods:       10,
		Express:    false,
		PickupDate: "2026-09-15",
		Amount:     89,
		Paid:       true,
		Status:     models.StatusPlaced,
		Timeline: []models.TimelineEntry{
			{Status: models.StatusPlaced, At: createdAt},
		},
	}
}
