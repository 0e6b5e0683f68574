package menurepo

import (
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/menu"

	"github.com/google/uuid"
)

// MenuItemDTO is the "menu_items" row. Order items join on it for their
// preparation time.
type MenuItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	StoreID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"not null"`
	Price       int64     `gorm:"not null"`
	PrepMinutes int       `gorm:"not null"`
	Available   bool      `gorm:"not null"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(item *menu.Item) MenuItemDTO {
	return MenuItemDTO{
		ID:          item.ID().Bytes(),
		StoreID:     item.StoreID().Bytes(),
		Name:        item.Name(),
		Price:       item.Price().Amount(),
		PrepMinutes: item.PrepMinutes(),
		Available:   item.IsAvailable(),
	}
}

func toDomain(dto MenuItemDTO) (*menu.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return menu.NewItem(id, storeID, dto.Name, price, dto.PrepMinutes, dto.Available)
}
