package queries

import (
	"context"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/menu"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// kitchenStatuses are the statuses the kitchen is working on.
var kitchenStatuses = []order.Status{order.Accepted, order.Preparing}

// loadKitchenTickets aggregates the prep time of the store's active kitchen
// orders in one pass, oldest order first.
func loadKitchenTickets(ctx context.Context, db *gorm.DB, storeID kernel.UUID) ([]services.KitchenTicket, error) {
	codes := make([]int64, 0, len(kitchenStatuses))
	for _, s := range kitchenStatuses {
		codes = append(codes, int64(s))
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.created_at,
			CAST(COALESCE(SUM(COALESCE(m.prep_minutes, ?) * i.quantity), 0) AS bigint) AS prep_time
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		LEFT JOIN menu_items m ON m.id = i.menu_item_id
		WHERE o.store_id = ? AND o.status = ANY(?)
		GROUP BY o.id, o.status, o.created_at
		ORDER BY o.created_at, o.id
	`, menu.DefaultPrepMinutes, storeID.Bytes(), pq.Array(codes)).Rows()
	if err != nil {
		return nil, errs.NewStoreUnavailableError("load kitchen orders", err)
	}
	defer rows.Close()

	tickets := make([]services.KitchenTicket, 0)
	for rows.Next() {
		var (
			id        uuid.UUID
			status    int
			createdAt time.Time
			prepTime  int
		)
		if err = rows.Scan(&id, &status, &createdAt, &prepTime); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		tickets = append(tickets, services.KitchenTicket{
			OrderID:   orderID,
			Status:    order.Status(status),
			PrepTime:  prepTime,
			CreatedAt: createdAt.UTC(),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return tickets, nil
}
