package database

import (
	"testing"

	"github.com/PavaniTiago/advisor-api/internal/config"
	"github.com/PavaniTiago/advisor-api/internal/domain/entities"
)

func TestPrepareSeedsOnce(t *testing.T) {
	db, err := Open(config.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := Prepare(db); err != nil {
			t.Fatalf("prepare #%d: %v", i+1, err)
		}
	}
	var count int64
	if err := db.Model(&entities.User{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Fatalf("users=%d, want 3 (seed must not be duplicated)", count)
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := Open("mysql", "dsn"); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}

func TestSetupDatabaseRequiresURL(t *testing.T) {
	if _, err := SetupDatabase(config.Config{DatabaseDriver: config.DriverSQLite}); err == nil {
		t.Fatalf("expected error without DATABASE_URL")
	}
}
