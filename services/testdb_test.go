package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"blog-platform/config"
	"blog-platform/models"
)

// newTestDB opens a private in-memory database with foreign keys enforced,
// migrated and seeded like production.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, config.Migrate(db))
	require.NoError(t, config.SeedRoles(db))
	return db
}

func createTestUser(t *testing.T, users UserService, username string) *models.User {
	t.Helper()

	user, err := users.Create(models.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "secret1",
		FullName: "Test " + username,
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
