// Package cursorrepo keeps the per-store round-robin dispatch cursor in
// Postgres so that rotation survives restarts and is shared between replicas.
package cursorrepo

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CursorDTO is the "dispatch_cursors" row.
type CursorDTO struct {
	StoreID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position int64     `gorm:"not null;default:0"`
}

func (CursorDTO) TableName() string {
	return "dispatch_cursors"
}

// GormDispatchCursor implements ports.DispatchCursor with a single upsert.
// Inside a transaction the row lock serialises concurrent dispatch runs for
// the same store until commit.
type GormDispatchCursor struct {
	db *gorm.DB
}

func NewGormDispatchCursor(db *gorm.DB) *GormDispatchCursor {
	return &GormDispatchCursor{db: db}
}

// Reserve advances the store's cursor by n and returns the previous position.
func (c *GormDispatchCursor) Reserve(ctx context.Context, storeID kernel.UUID, n int64) (int64, error) {
	if err := storeID.Validate(); err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, errs.NewValueIsOutOfRangeError("n", n, 1, "unbounded")
	}

	var position int64
	err := c.db.WithContext(ctx).Raw(`
		INSERT INTO dispatch_cursors (store_id, position)
		VALUES (?, ?)
		ON CONFLICT (store_id) DO UPDATE SET position = dispatch_cursors.position + EXCLUDED.position
		RETURNING position
	`, storeID.Bytes(), n).Scan(&position).Error
	if err != nil {
		return 0, errs.NewStoreUnavailableError("reserve dispatch cursor", err)
	}

	return position - n, nil
}
