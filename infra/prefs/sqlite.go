package prefs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/CrestNiraj12/terminalfeed/domain"
)

// Preference is one stored key/value row.
type Preference struct {
	Scope string `gorm:"primaryKey;size:128"`
	Name  string `gorm:"primaryKey;size:128"`
	Value string `gorm:"not null"`
}

// SQLiteStore keeps preferences in a SQLite database through GORM.
type SQLiteStore struct {
	db    *gorm.DB
	scope string
}

// NewSQLiteStore opens (or creates) the database at path and migrates the schema.
func NewSQLiteStore(path, scope string) (*SQLiteStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}
	if err := db.AutoMigrate(&Preference{}); err != nil {
		return nil, fmt.Errorf("migrating preferences: %w", err)
	}
	return &SQLiteStore{db: db, scope: scope}, nil
}

// Get returns the value stored for key in this store's scope.
func (s *SQLiteStore) Get(ctx context.Context, key string) (string, error) {
	var p Preference
	err := s.db.WithContext(ctx).
		Where("scope = ? AND name = ?", s.scope, key).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", domain.ErrPreferenceNotFound
	}
	if err != nil {
		return "", fmt.Errorf("reading preference %q: %w", key, err)
	}
	return p.Value, nil
}

// Set upserts key=value.
func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	p := Preference{Scope: s.scope, Name: key, Value: value}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "scope"}, {Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&p).Error
	if err != nil {
		return fmt.Errorf("writing preference %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying connection pool.
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
