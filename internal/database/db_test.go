package database

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/daylist-io/daylist/internal/models"
)

func TestOpenSQLiteInMemory(t *testing.T) {
	db, err := Open(Config{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, AutoMigrate(db))

	for _, table := range []string{"users", "tasks", "projects", "teams", "team_memberships", "calendar_events", "conversations", "messages"} {
		require.True(t, db.Migrator().HasTable(table), "expected table %s", table)
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(Config{Driver: "oracle"})
	require.Error(t, err)
}

func TestAutoMigrateIsIdempotent(t *testing.T) {
	db, err := Open(Config{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, AutoMigrate(db))
	require.NoError(t, AutoMigrate(db))

	user := models.User{ID: "user-1", Email: "a@example.com", HashedPassword: "x"}
	require.NoError(t, db.Create(&user).Error)

	require.NoError(t, AutoMigrate(db))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}
