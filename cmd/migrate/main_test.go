package main

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendwise/internal/config"
	"spendwise/internal/database"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{Database: database.Config{
		Driver: database.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "migrate.db"),
	}}
}

func TestRun_UpDownVersion(t *testing.T) {
	cfg := testConfig(t)

	require.NoError(t, run(cfg, []string{"version"}))
	require.NoError(t, run(cfg, []string{"up"}))
	require.NoError(t, run(cfg, []string{"up"}), "re-running up is a no-op")

	m, err := database.NewMigrator(&cfg.Database)
	require.NoError(t, err)
	version, dirty, err := m.Version()
	database.CloseMigrator(m)
	require.NoError(t, err)
	assert.False(t, dirty)
	assert.Equal(t, uint(3), version)

	require.NoError(t, run(cfg, []string{"down", "2"}))

	m, err = database.NewMigrator(&cfg.Database)
	require.NoError(t, err)
	version, _, err = m.Version()
	database.CloseMigrator(m)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
}

func TestRun_RejectsBadInput(t *testing.T) {
	cfg := testConfig(t)

	tests := [][]string{
		nil,
		{"sideways"},
		{"down", "abc"},
		{"down", "0"},
	}
	for _, args := range tests {
		t.Run(fmt.Sprint(args), func(t *testing.T) {
			assert.Error(t, run(cfg, args))
		})
	}
}
