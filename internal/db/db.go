package db

import (
	"fmt"
	"log/slog"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/matchpicks/supportbot/internal/models"
)

var conn *gorm.DB

// Init opens the database and runs migrations. The DSN is the SQLite file
// path; WAL parameters are appended unless the caller already set query
// parameters.
func Init(dsn string) error {
	if !strings.Contains(dsn, "?") {
		dsn += "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"
	}

	var err error
	conn, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}

	// SQLite works best with a single writer; cap the pool accordingly.
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := conn.AutoMigrate(&models.User{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	// Partial index GORM doesn't auto-create: the push job selects only rows
	// that have both a country and a chatroom.
	conn.Exec("CREATE INDEX IF NOT EXISTS idx_users_country ON users(country) WHERE country IS NOT NULL")

	slog.Info("database ready", "driver", "sqlite")
	return nil
}

func Conn() *gorm.DB {
	return conn
}

// Ping reports whether the store is reachable; used by the health endpoint.
func Ping() bool {
	if conn == nil {
		return false
	}
	sqlDB, err := conn.DB()
	if err != nil {
		return false
	}
	return sqlDB.Ping() == nil
}
