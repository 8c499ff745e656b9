package services

import (
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"gallery/config"
	"gallery/db"
	"gallery/models"
	"gallery/storage"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTest wires a fresh in-memory database and a disk bucket in a temp dir.
func setupTest(t *testing.T) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	db.Instance = gdb
	models.Init()
	config.DEFAULT_BUCKET_DIR = t.TempDir()
	storage.Init()
	t.Cleanup(func() { sqlDB.Close() })
}

func testUser(t *testing.T, name string) *models.User {
	t.Helper()
	user, err := Register(name, name+"@example.com", "secret123")
	require.NoError(t, err)
	return user
}

func testAdmin(t *testing.T, name string) *models.User {
	t.Helper()
	user := testUser(t, name)
	require.NoError(t, db.Instance.Model(user).Update("role", models.RoleAdmin).Error)
	user.Role = models.RoleAdmin
	return user
}

func pngUpload(content string) PhotoUpload {
	return PhotoUpload{
		ContentType: "image/png",
		Size:        int64(len(content)),
		Content:     strings.NewReader(content),
	}
}

// storedBlobCount counts actual files under the test bucket
func storedBlobCount(t *testing.T) int {
	t.Helper()
	count := 0
	err := filepath.WalkDir(config.DEFAULT_BUCKET_DIR, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			count++
		}
		return nil
	})
	require.NoError(t, err)
	return count
}
