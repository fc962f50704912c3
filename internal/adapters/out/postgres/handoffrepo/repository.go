package handoffrepo

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormHandoffRepository implements ports.HandoffChannel using GORM.
type GormHandoffRepository struct {
	db *gorm.DB
}

// NewGormHandoffRepository creates a new GORM hand-off repository.
func NewGormHandoffRepository(db *gorm.DB) *GormHandoffRepository {
	return &GormHandoffRepository{db: db}
}

// Put inserts the slot or overwrites the payload of an existing one.
func (r *GormHandoffRepository) Put(ctx context.Context, key string, payload []byte) error {
	if key == "" {
		return errs.NewValueIsRequiredError("key")
	}
	if payload == nil {
		payload = []byte{}
	}

	dto := HandoffSlotDTO{
		ID:      uuid.New(),
		Key:     key,
		Payload: payload,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slot_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&dto).Error
	if err != nil {
		return fmt.Errorf("upsert handoff slot %s: %w", key, err)
	}
	return nil
}

// Get returns ports.ErrHandoffSlotEmpty when no row exists for key.
func (r *GormHandoffRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var dto HandoffSlotDTO
	if err := r.db.WithContext(ctx).First(&dto, "slot_key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrHandoffSlotEmpty
		}
		return nil, fmt.Errorf("get handoff slot %s: %w", key, err)
	}
	return dto.Payload, nil
}
