package database

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/PavaniTiago/nr01-risk-api/internal/config"
	"github.com/PavaniTiago/nr01-risk-api/internal/infrastructure/database/migrations"
	"github.com/PavaniTiago/nr01-risk-api/internal/infrastructure/logger"
)

const sqlitePrefix = "sqlite://"

func SetupDatabase(cfg *config.Config, log *logger.Logger) (*gorm.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not defined in the environment")
	}

	var (
		db  *gorm.DB
		err error
	)

	// sqlite://arquivo.db para desenvolvimento local
	if strings.HasPrefix(cfg.DatabaseURL, sqlitePrefix) {
		db, err = OpenSQLite(strings.TrimPrefix(cfg.DatabaseURL, sqlitePrefix))
		if err != nil {
			return nil, err
		}
	} else {
		// Configure GORM with performance optimizations
		gormConfig := &gorm.Config{
			// Skip default transaction for better performance
			SkipDefaultTransaction: true,
			// Prepare statements for better performance
			PrepareStmt: true,
			// Configure logger to reduce overhead
			Logger: gormlogger.Default.LogMode(gormlogger.Error),
		}

		db, err = gorm.Open(postgres.Open(PostgresDSN(cfg.DatabaseURL, cfg.DBTimezone)), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}

		// Configure connection pool for better performance
		sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
		sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
		sqlDB.SetConnMaxLifetime(time.Hour) // Reuse connections for up to an hour
	}

	if err := Prepare(db, log); err != nil {
		return nil, err
	}

	log.Info("Banco de dados pronto", "dialect", db.Dialector.Name())
	return db, nil
}

// OpenSQLite abre um banco SQLite (arquivo ou ":memory:")
func OpenSQLite(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// SQLite não suporta escritas concorrentes
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// Prepare aplica migrations e índices
func Prepare(db *gorm.DB, log *logger.Logger) error {
	// Apply database migrations and indexes
	if err := migrations.Migrate(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Add indexes for better query performance
	if err := migrations.AddIndexes(db); err != nil {
		return fmt.Errorf("failed to add indexes: %w", err)
	}

	// Add optimized performance indexes
	if err := migrations.OptimizePerformanceIndexes(db, log); err != nil {
		return fmt.Errorf("failed to add optimized indexes: %w", err)
	}

	return nil
}
