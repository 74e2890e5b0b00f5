// database/bootstrap.go
package database

import (
	"fmt"
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"vitisense/entities"
)

// Open opens (or creates) the SQLite file and migrates the key-value table.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.AutoMigrate(&entities.StoredValue{}); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}

func OpenSQLite(path string) *gorm.DB {
	db, err := Open(path)
	if err != nil {
		log.Fatalf("%v", err)
	}
	return db
}
