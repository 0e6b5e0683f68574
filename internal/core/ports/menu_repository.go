package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for menu items.
type MenuRepository interface {
	Add(ctx context.Context, item *menu.Item) error

	// GetMany returns the items of the store among ids, keyed by id. Unknown ids
	// are simply absent from the result.
	GetMany(ctx context.Context, storeID kernel.UUID, ids []kernel.UUID) (map[kernel.UUID]*menu.Item, error)
}
