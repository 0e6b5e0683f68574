// Package menurepo persists store menu items.
package menurepo

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/menu"
	"pizzeria/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormMenuRepository implements ports.MenuRepository using GORM.
type GormMenuRepository struct {
	db *gorm.DB
}

func NewGormMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

// Add inserts the item or replaces an existing item with the same id.
func (r *GormMenuRepository) Add(ctx context.Context, item *menu.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "price", "prep_minutes", "available"}),
			Where: clause.Where{Exprs: []clause.Expression{
				clause.Expr{SQL: "menu_items.store_id = excluded.store_id"},
			}},
		}).
		Create(&dto)
	if result.Error != nil {
		return errs.NewStoreUnavailableError("add menu item", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewConcurrencyConflictError("menu item", item.ID(), "store "+item.StoreID().String())
	}
	return nil
}

func (r *GormMenuRepository) GetMany(
	ctx context.Context,
	storeID kernel.UUID,
	ids []kernel.UUID,
) (map[kernel.UUID]*menu.Item, error) {
	items := make(map[kernel.UUID]*menu.Item, len(ids))
	if len(ids) == 0 {
		return items, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var dtos []MenuItemDTO
	err := r.db.WithContext(ctx).
		Where("store_id = ? AND id IN ?", storeID.Bytes(), raw).
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewStoreUnavailableError("get menu items", err)
	}

	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items[item.ID()] = item
	}
	return items, nil
}
