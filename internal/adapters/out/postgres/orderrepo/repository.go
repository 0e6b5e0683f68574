package orderrepo

import (
	"context"
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/menu"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker collects the orders written through the repository so that
// their events can be published once the transaction commits.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order together with its line items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConcurrencyConflictError("order", aggregate.ID(), "absent")
		}
		return errs.NewStoreUnavailableError("add order", err)
	}

	aggregate.MarkPersisted()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes status and delivery timestamps with a compare-and-set on the
// status the order was loaded with.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	expected := aggregate.ExpectedStatus()

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expected)).
		Updates(map[string]any{
			"status":             dto.Status,
			"estimated_delivery": dto.EstimatedDelivery,
			"actual_delivery":    dto.ActualDelivery,
			"updated_at":         time.Now().UTC(),
		})
	if result.Error != nil {
		return errs.NewStoreUnavailableError("update order", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return errs.NewStoreUnavailableError("update order", err)
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID())
		}
		return errs.NewConcurrencyConflictError("order", aggregate.ID(), expected.String())
	}

	aggregate.MarkPersisted()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its line items.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, errs.NewStoreUnavailableError("get order", err)
	}

	orders, err := r.withItems(ctx, []OrderDTO{dto})
	if err != nil {
		return nil, err
	}
	return orders[0], nil
}

// FindByStoreAndStatuses returns the store's orders in statuses, oldest first.
func (r *GormOrderRepository) FindByStoreAndStatuses(
	ctx context.Context,
	storeID kernel.UUID,
	statuses []order.Status,
	limit int,
) ([]*order.Order, error) {
	if len(statuses) == 0 {
		return []*order.Order{}, nil
	}

	codes := make([]int64, 0, len(statuses))
	for _, s := range statuses {
		codes = append(codes, int64(s))
	}

	tx := r.db.WithContext(ctx).
		Where("store_id = ? AND status = ANY(?)", storeID.Bytes(), pq.Array(codes)).
		Order("created_at, id")
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var dtos []OrderDTO
	if err := tx.Find(&dtos).Error; err != nil {
		return nil, errs.NewStoreUnavailableError("find orders by status", err)
	}

	return r.withItems(ctx, dtos)
}

// FindStale returns the store's PENDING orders created before cutoff, oldest first.
func (r *GormOrderRepository) FindStale(ctx context.Context, storeID kernel.UUID, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("store_id = ? AND status = ? AND created_at < ?", storeID.Bytes(), int(order.Pending), cutoff.UTC()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewStoreUnavailableError("find stale orders", err)
	}

	return r.withItems(ctx, dtos)
}

// withItems loads the line items of dtos, joined with their menu items'
// preparation times, and maps everything to aggregates.
func (r *GormOrderRepository) withItems(ctx context.Context, dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	if len(dtos) == 0 {
		return orders, nil
	}

	ids := make([]uuid.UUID, 0, len(dtos))
	for _, dto := range dtos {
		ids = append(ids, dto.ID)
	}

	var rows []itemRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			i.order_id,
			i.menu_item_id,
			i.name,
			i.quantity,
			i.unit_price,
			COALESCE(m.prep_minutes, ?) AS prep_minutes
		FROM order_items i
		LEFT JOIN menu_items m ON m.id = i.menu_item_id
		WHERE i.order_id IN ?
		ORDER BY i.order_id, i.position
	`, menu.DefaultPrepMinutes, ids).Scan(&rows).Error
	if err != nil {
		return nil, errs.NewStoreUnavailableError("load order items", err)
	}

	byOrder := make(map[uuid.UUID][]itemRow, len(dtos))
	for _, row := range rows {
		byOrder[row.OrderID] = append(byOrder[row.OrderID], row)
	}

	for _, dto := range dtos {
		o, err := toDomain(dto, byOrder[dto.ID])
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
