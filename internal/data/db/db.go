package db

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/yungbote/kinetic-backend/internal/platform/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Driver     string
	DSN        string
	SQLitePath string
	// Silent disables gorm's SQL logging.
	Silent bool
}

// Open connects with the configured driver and migrates every table.
func Open(log *logger.Logger, cfg Config) (*gorm.DB, error) {
	serviceLog := log.With("service", "Database")

	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))
	if driver == "" {
		driver = DriverPostgres
	}
	gcfg := &gorm.Config{DisableForeignKeyConstraintWhenMigrating: true}
	if cfg.Silent {
		gcfg.Logger = gormLogger.Default.LogMode(gormLogger.Silent)
	}

	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		if strings.TrimSpace(cfg.DSN) == "" {
			return nil, fmt.Errorf("missing POSTGRES_DSN")
		}
		dialector = postgres.Open(cfg.DSN)
	case DriverSQLite:
		path := strings.TrimSpace(cfg.SQLitePath)
		if path == "" {
			path = "kinetic.db"
		}
		dialector = sqlite.Open(path)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}

	serviceLog.Info("Connecting to database...", "driver", driver)
	db, err := gorm.Open(dialector, gcfg)
	if err != nil {
		serviceLog.Error("Failed to connect to database", "driver", driver, "error", err)
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}
	if err := AutoMigrateAll(db); err != nil {
		serviceLog.Error("Auto migration failed", "error", err)
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	if driver == DriverPostgres {
		if err := EnsureIndexes(db); err != nil {
			return nil, err
		}
	}
	serviceLog.Info("Database ready", "driver", driver)
	return db, nil
}
