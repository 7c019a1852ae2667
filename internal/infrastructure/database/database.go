package database

import (
	"stoxify-backend/internal/domain"
	"stoxify-backend/internal/infrastructure/store"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open opens a GORM DB from DSN (Postgres pooler URL).
// PreferSimpleProtocol disables prepared statement caching to avoid 42P05
// ("prepared statement already exists") behind connection poolers.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
}

// AutoMigrate runs migrations for the user table and the snapshot store.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.User{}, &store.Snapshot{})
}
