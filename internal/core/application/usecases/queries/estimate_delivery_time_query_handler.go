package queries

import (
	"context"
	"time"

	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EstimateDeliveryTimeQueryHandler resolves preparation times from the menu and
// hands them to the delivery time estimator.
type EstimateDeliveryTimeQueryHandler struct {
	db        *gorm.DB
	estimator services.DeliveryTimeEstimator
	clock     func() time.Time
}

// NewEstimateDeliveryTimeQueryHandler builds the handler; a nil clock means time.Now.
func NewEstimateDeliveryTimeQueryHandler(
	db *gorm.DB,
	estimator services.DeliveryTimeEstimator,
	clock func() time.Time,
) EstimateDeliveryTimeQueryHandler {
	if clock == nil {
		clock = time.Now
	}
	return EstimateDeliveryTimeQueryHandler{db: db, estimator: estimator, clock: clock}
}

func (h EstimateDeliveryTimeQueryHandler) Handle(
	ctx context.Context,
	query EstimateDeliveryTimeQuery,
) (services.DeliveryEstimate, error) {
	if err := query.Validate(); err != nil {
		return services.DeliveryEstimate{}, err
	}

	items := query.Items()
	known, err := h.menuPrepTimes(ctx, query, items)
	if err != nil {
		return services.DeliveryEstimate{}, err
	}

	prepItems := make([]services.PrepItem, 0, len(items))
	for _, item := range items {
		prep := h.estimator.DefaultPrepMinutes()
		switch {
		case item.PrepMinutes != nil:
			prep = *item.PrepMinutes
		case item.MenuItemID != nil:
			if minutes, ok := known[item.MenuItemID.Bytes()]; ok {
				prep = minutes
			}
		}
		prepItems = append(prepItems, services.PrepItem{PrepMinutes: prep, Quantity: item.Quantity})
	}

	return h.estimator.Estimate(prepItems, h.clock()), nil
}

func (h EstimateDeliveryTimeQueryHandler) menuPrepTimes(
	ctx context.Context,
	query EstimateDeliveryTimeQuery,
	items []EstimateItem,
) (map[uuid.UUID]int, error) {
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		if item.MenuItemID != nil && item.PrepMinutes == nil {
			ids = append(ids, item.MenuItemID.Bytes())
		}
	}

	known := make(map[uuid.UUID]int, len(ids))
	if len(ids) == 0 {
		return known, nil
	}

	tx := h.db.WithContext(ctx).Table("menu_items").Select("id, prep_minutes").Where("id IN ?", ids)
	if storeID, ok := query.StoreID(); ok {
		tx = tx.Where("store_id = ?", storeID.Bytes())
	}

	rows, err := tx.Rows()
	if err != nil {
		return nil, errs.NewStoreUnavailableError("load menu prep times", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var minutes int
		if err = rows.Scan(&id, &minutes); err != nil {
			return nil, err
		}
		known[id] = minutes
	}

	return known, rows.Err()
}
