package database

import (
	"fmt"
	"time"

	"greencouncil-api/internal/domain/blog"
	"greencouncil-api/internal/domain/events"
	"greencouncil-api/internal/domain/members"
	"greencouncil-api/internal/domain/resources"
	"greencouncil-api/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the shared pooled connection. The pool is bounded: requests
// beyond the open-connection cap wait for a free connection instead of piling
// up new ones.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Migrate creates or updates all tables and indexes. Safe to run repeatedly.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// staff accounts
		&users.User{},
		&users.VerificationToken{},

		// localized content
		&blog.Post{},
		&blog.PostTranslation{},
		&events.Event{},
		&events.EventTranslation{},
		&resources.Resource{},
		&resources.ResourceTranslation{},

		// membership registry
		&members.Member{},
	)
}

// Close releases the pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
