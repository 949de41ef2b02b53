// Package testutil provides test helpers for setting up in-memory databases,
// creating fixtures, and making assertions.
package testutil

import (
	"fmt"
	"testing"

	"spendwise/internal/database"

	"gorm.io/gorm"
)

// SetupTestDB creates a private in-memory SQLite database migrated with the
// same embedded migrations the server runs.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Each test gets its own named database. The shared cache lets the
	// migrator's separate connection see it while gorm holds it open.
	cfg := &database.Config{
		Driver: database.DriverSQLite,
		Path:   fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", nextID()),
	}

	mgr, err := database.NewManager(cfg)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := mgr.RunMigrations(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return mgr.DB()
}

// TeardownTestDB closes the underlying database connection.
func TeardownTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Errorf("failed to get underlying DB for teardown: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Errorf("failed to close test database: %v", err)
	}
}
