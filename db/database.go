// Package db owns the sqlite handle behind the key-value blob store.
package db

import (
	"fmt"
	"log"

	"justice_lab_go/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Initialize opens the blob store and prepares its schema. The store is a
// single table of keyed JSON blobs, so the migration lives here instead of
// at the call site.
func Initialize(dbPath string, environment string) error {
	logLevel := logger.Info
	if environment == "production" {
		logLevel = logger.Warn
	}

	// WAL plus a busy timeout: request handlers and the journal export
	// read and rewrite the same few blob keys concurrently
	dsn := dbPath + "?_journal_mode=WAL&_busy_timeout=5000"

	handle, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to open blob store: %w", err)
	}
	if err := handle.AutoMigrate(&models.StorageBlob{}); err != nil {
		return fmt.Errorf("failed to migrate blob store: %w", err)
	}

	DB = handle
	log.Println("Blob store ready (WAL mode enabled)")
	return nil
}

// Close closes the blob store connection
func Close() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	return sqlDB.Close()
}
