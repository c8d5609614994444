package snapshot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNoSnapshot is returned when the named slot has never been written.
var ErrNoSnapshot = errors.New("snapshot not found")

// Store persists named snapshot slots. Each slot holds one opaque payload
// and is overwritten in full on every save.
type Store interface {
	// Save writes the payload to the named slot, replacing any previous content.
	Save(ctx context.Context, name string, payload []byte) error
	// Load returns the current payload of the named slot, or ErrNoSnapshot.
	Load(ctx context.Context, name string) ([]byte, error)
}

// Slot is the database row backing one snapshot slot.
type Slot struct {
	Name      string `gorm:"primaryKey;size:64"`
	Payload   []byte
	UpdatedAt time.Time
}

// TableName fixes the table name regardless of GORM pluralization settings.
func (Slot) TableName() string {
	return "snapshot_slots"
}

type dbStore struct {
	db *gorm.DB
}

// NewStore creates a database-backed snapshot store and ensures the
// backing table exists.
func NewStore(db *gorm.DB) (Store, error) {
	if err := db.AutoMigrate(&Slot{}); err != nil {
		return nil, fmt.Errorf("failed to migrate snapshot table: %w", err)
	}
	return &dbStore{db: db}, nil
}

func (s *dbStore) Save(ctx context.Context, name string, payload []byte) error {
	slot := Slot{Name: name, Payload: payload, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&slot).Error
	if err != nil {
		return fmt.Errorf("failed to save snapshot %q: %w", name, err)
	}
	return nil
}

func (s *dbStore) Load(ctx context.Context, name string) ([]byte, error) {
	var slot Slot
	err := s.db.WithContext(ctx).First(&slot, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot %q: %w", name, err)
	}
	return slot.Payload, nil
}
