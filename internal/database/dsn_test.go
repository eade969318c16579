package database

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildPostgresDSN(t *testing.T) {
	dsn, err := buildPostgresDSN(Config{
		Driver:   "postgres",
		Host:     "db.internal",
		Port:     5433,
		User:     "daylist",
		Password: "pw",
		Name:     "daylist",
	})
	require.NoError(t, err)
	require.Equal(t, "host=db.internal port=5433 user=daylist dbname=daylist password=pw sslmode=disable", dsn)
}

func TestBuildPostgresDSNDefaults(t *testing.T) {
	dsn, err := buildPostgresDSN(Config{User: "u", Name: "n"})
	require.NoError(t, err)
	require.Contains(t, dsn, "host=localhost")
	require.Contains(t, dsn, "port=5432")
}

func TestBuildPostgresDSNRequiresUserAndName(t *testing.T) {
	_, err := buildPostgresDSN(Config{Host: "h"})
	require.Error(t, err)
}

func TestBuildPostgresDSNHonoursOverride(t *testing.T) {
	dsn, err := buildPostgresDSN(Config{DSN: "postgres://u:p@h/db"})
	require.NoError(t, err)
	require.Equal(t, "postgres://u:p@h/db", dsn)
}

func TestBuildSQLiteDSN(t *testing.T) {
	dsn, err := buildSQLiteDSN(Config{DSN: "file:custom.db?_foreign_keys=1"})
	require.NoError(t, err)
	require.Equal(t, "file:custom.db?_foreign_keys=1", dsn)

	dsn, err = buildSQLiteDSN(Config{Path: ":memory:"})
	require.NoError(t, err)
	require.Equal(t, memorySQLiteDSN, dsn)

	dsn, err = buildSQLiteDSN(Config{Path: t.TempDir() + "/data/daylist.sqlite"})
	require.NoError(t, err)
	require.Contains(t, dsn, "_journal_mode=WAL")
	require.Contains(t, dsn, "_foreign_keys=1")
	require.Contains(t, dsn, "_busy_timeout=5000")
}

func TestBuildMySQLDSN(t *testing.T) {
	dsn, err := buildMySQLDSN(Config{
		Driver:   "mysql",
		Host:     "db.internal",
		Port:     3307,
		User:     "daylist",
		Password: "pw",
		Name:     "daylist",
	})
	require.NoError(t, err)
	require.Equal(t, "daylist:pw@tcp(db.internal:3307)/daylist?charset=utf8mb4&parseTime=True&loc=Local", dsn)
}

func TestBuildMySQLDSNRequiresUserAndName(t *testing.T) {
	_, err := buildMySQLDSN(Config{Host: "h"})
	require.Error(t, err)
}
