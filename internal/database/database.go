package database

import (
	"strings"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// Registers the pure-Go "sqlite" database/sql driver used below.
	_ "modernc.org/sqlite"
)

// Connect opens postgres for postgres:// DSNs and sqlite for anything else,
// so local development and tests run without a database server.
func Connect(dsn string, logger *zap.Logger) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		logger.Info("connecting to postgres")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	logger.Info("using sqlite", zap.String("dsn", dsn))
	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}
