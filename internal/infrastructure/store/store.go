// Package store is the persistence gateway: whole-object JSON snapshots of
// the portfolio ledger and the watchlist registry, one row per (user, key).
// Every mutating operation upstream overwrites the full snapshot; there is
// no incremental persistence.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"stoxify-backend/internal/domain"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	keyPortfolio  = "portfolio"
	keyWatchlists = "watchlists"
)

// ErrPersistence wraps gateway write failures so callers can distinguish
// them from provider or validation errors.
var ErrPersistence = errors.New("persistence failure")

// Snapshot is one persisted whole-object state blob.
type Snapshot struct {
	UserID    uuid.UUID      `gorm:"column:user_id;type:uuid;primaryKey"`
	Key       string         `gorm:"column:key;primaryKey"`
	Data      datatypes.JSON `gorm:"column:data;not null"`
	UpdatedAt time.Time
}

func (Snapshot) TableName() string {
	return "Snapshots"
}

// Store reads and writes snapshots through GORM.
type Store struct {
	DB *gorm.DB
}

// LoadPortfolio returns the user's ledger snapshot, or nil when the user
// has no prior state. Absence is not an error.
func (s *Store) LoadPortfolio(ctx context.Context, userID uuid.UUID) (*domain.Portfolio, error) {
	var p domain.Portfolio
	ok, err := s.load(ctx, userID, keyPortfolio, &p)
	if err != nil || !ok {
		return nil, err
	}
	if p.Items == nil {
		p.Items = []domain.Holding{}
	}
	return &p, nil
}

// SavePortfolio overwrites the user's ledger snapshot.
func (s *Store) SavePortfolio(ctx context.Context, userID uuid.UUID, p *domain.Portfolio) error {
	return s.save(ctx, userID, keyPortfolio, p)
}

// LoadWatchlists returns the user's registry snapshot, or nil when the
// user has no prior state.
func (s *Store) LoadWatchlists(ctx context.Context, userID uuid.UUID) (*domain.WatchlistState, error) {
	var w domain.WatchlistState
	ok, err := s.load(ctx, userID, keyWatchlists, &w)
	if err != nil || !ok {
		return nil, err
	}
	if w.Watchlists == nil {
		w.Watchlists = []domain.Watchlist{}
	}
	return &w, nil
}

// SaveWatchlists overwrites the user's registry snapshot.
func (s *Store) SaveWatchlists(ctx context.Context, userID uuid.UUID, w *domain.WatchlistState) error {
	return s.save(ctx, userID, keyWatchlists, w)
}

// Reset deletes both snapshots (logout / account reset).
func (s *Store) Reset(ctx context.Context, userID uuid.UUID) error {
	err := s.DB.WithContext(ctx).
		Where("user_id = ? AND key IN ?", userID, []string{keyPortfolio, keyWatchlists}).
		Delete(&Snapshot{}).Error
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

func (s *Store) load(ctx context.Context, userID uuid.UUID, key string, out interface{}) (bool, error) {
	var row Snapshot
	err := s.DB.WithContext(ctx).
		Where("user_id = ? AND key = ?", userID, key).
		First(&row).Error
	if err == gorm.ErrRecordNotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if err := json.Unmarshal(row.Data, out); err != nil {
		return false, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return true, nil
}

func (s *Store) save(ctx context.Context, userID uuid.UUID, key string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	row := Snapshot{UserID: userID, Key: key, Data: datatypes.JSON(b)}
	err = s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
