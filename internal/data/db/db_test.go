package db

import (
	"path/filepath"
	"testing"

	types "github.com/yungbote/kinetic-backend/internal/domain"
	"github.com/yungbote/kinetic-backend/internal/platform/logger"
)

func TestOpen_SQLiteMigrates(t *testing.T) {
	db, err := Open(logger.Nop(), Config{
		Driver:     DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "kinetic.db"),
		Silent:     true,
	})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	for _, model := range []any{&types.GenerationRun{}, &types.MusicTrack{}, &types.UserPlan{}} {
		if !db.Migrator().HasTable(model) {
			t.Fatalf("missing table for %T", model)
		}
	}
}

func TestOpen_RejectsUnknownDriver(t *testing.T) {
	if _, err := Open(logger.Nop(), Config{Driver: "mysql"}); err == nil {
		t.Fatalf("expected error")
	}
	if _, err := Open(logger.Nop(), Config{Driver: DriverPostgres}); err == nil {
		t.Fatalf("expected missing dsn error")
	}
}
