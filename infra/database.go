package infra

import (
	"fmt"
	"time"

	"github.com/amirasaad/globalremit/infra/repository"
	"github.com/amirasaad/globalremit/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDBConnection opens the configured SQL database and migrates the schema.
func NewDBConnection(
	cnf *config.DB,
	appEnv string,
) (*gorm.DB, error) {
	if cnf.Url == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set for driver %q", cnf.Driver)
	}

	var dialector gorm.Dialector
	switch cnf.Driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cnf.Url)
	case config.DriverPostgres:
		dialector = postgres.Open(cnf.Url)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cnf.Driver)
	}

	logMode := logger.Silent
	if appEnv == "development" {
		logMode = logger.Warn
	}

	connection, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	maxOpen := cnf.MaxOpenConns
	if cnf.Driver == config.DriverSQLite {
		maxOpen = 1
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxOpen)
	if cnf.MaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cnf.MaxLifetime)
	} else {
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	if err := connection.AutoMigrate(repository.Models()...); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return connection, nil
}
