// Package handoffrepo stores hand-off slots in a PostgreSQL table, one row per key.
package handoffrepo

import (
	"time"

	"github.com/google/uuid"
)

// HandoffSlotDTO is a row of the handoff_slots table. The payload is stored as
// received so that readers can detect and recover from malformed documents.
type HandoffSlotDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Key       string    `gorm:"column:slot_key;type:varchar(128);uniqueIndex;not null"`
	Payload   []byte    `gorm:"type:bytea;not null"`
	UpdatedAt time.Time
}

// TableName overrides GORM's pluralised default.
func (HandoffSlotDTO) TableName() string {
	return "handoff_slots"
}
