package database

import (
	"fmt"
	"time"

	"github.com/PavaniTiago/advisor-api/internal/config"
	"github.com/PavaniTiago/advisor-api/internal/infrastructure/database/migrations"
	"github.com/PavaniTiago/advisor-api/internal/infrastructure/seed"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupDatabase abre a conexão, aplica as migrações e popula um banco vazio com o seed
func SetupDatabase(cfg config.Config) (*gorm.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not defined in the environment")
	}

	db, err := Open(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if err := Prepare(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Open conecta ao banco com as opções de performance da API.
// Com TranslateError, violações de unicidade chegam como gorm.ErrDuplicatedKey.
func Open(driver, dsn string) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		// Skip default transaction for better performance
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Error),
	}

	var dialector gorm.Dialector
	switch driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(dsn)
	case config.DriverPostgres, "":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if driver == config.DriverSQLite {
		// SQLite serializa escritas; uma conexão evita "database is locked"
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(50)
		sqlDB.SetConnMaxLifetime(time.Hour)
		RegisterMiddlewares(db)
	}
	return db, nil
}

// Prepare roda migrações, índices e seed
func Prepare(db *gorm.DB) error {
	if err := migrations.Migrate(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := migrations.AddIndexes(db); err != nil {
		return fmt.Errorf("failed to add indexes: %w", err)
	}
	ds, err := seed.Load()
	if err != nil {
		return err
	}
	if err := migrations.Seed(db, ds); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}
	return nil
}
