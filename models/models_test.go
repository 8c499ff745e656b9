package models

import (
	"testing"

	"gallery/db"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB points db.Instance at a fresh in-memory SQLite database.
// Connections are capped at one so every goroutine sees the same database.
func setupTestDB(t *testing.T) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	db.Instance = gdb
	Init()
	t.Cleanup(func() { sqlDB.Close() })
}

func createTestUser(t *testing.T, name string) User {
	t.Helper()
	user, err := UserCreate(name, name+"@example.com", "secret123")
	require.NoError(t, err)
	return user
}

func createTestPhoto(t *testing.T, owner User) Photo {
	t.Helper()
	photo := Photo{Src: "photos/" + owner.Name + ".jpg", UserID: owner.ID}
	require.NoError(t, db.Instance.Create(&photo).Error)
	return photo
}
