package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/sproutworks/ecopods/internal/models"
)

func TestOpenSQLiteCreatesCaseInsensitiveUserEmailUniqueIndex(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "ecopods-email-index.db")
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

	firstUser := models.User{
		Name:      "Asha",
		Email:     "QA-Test@EcoPods.Local",
		CreatedAt: time.Now().UTC(),
	}
	if err := database.Create(&firstUser).Error; err != nil {
		t.Fatalf("create first user: %v", err)
	}

	secondUser := models.User{
		Name:      "Asha Again",
		Email:     "qa-test@ecopods.local",
		CreatedAt: time.Now().UTC(),
	}
	if err := database.Create(&secondUser).Error; err == nil {
		t.Fatalf("expected duplicate normalized email insert to fail")
	}
}
