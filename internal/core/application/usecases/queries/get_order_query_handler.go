package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/delivery"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/menu"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads orders straight from the tables.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order or an ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	id := query.OrderID()

	var (
		res                  GetOrderQueryResponse
		rawUser, rawStore    uuid.UUID
		status               int
		estimated, delivered sql.NullTime
	)
	row := db.Raw(`
		SELECT
			user_id,
			store_id,
			status,
			subtotal,
			tax,
			delivery_fee,
			total,
			created_at,
			estimated_delivery,
			actual_delivery,
			special_instructions
		FROM orders
		WHERE id = ?
	`, id.Bytes()).Row()
	err := row.Scan(
		&rawUser, &rawStore, &status,
		&res.Subtotal, &res.Tax, &res.DeliveryFee, &res.Total,
		&res.CreatedAt, &estimated, &delivered,
		&res.SpecialInstructions,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", id)
		}
		return GetOrderQueryResponse{}, errs.NewStoreUnavailableError("get order", err)
	}

	res.ID = id
	if res.UserID, err = kernel.UUIDFromBytes(rawUser[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if res.StoreID, err = kernel.UUIDFromBytes(rawStore[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	res.Status = order.Status(status)
	res.CreatedAt = res.CreatedAt.UTC()
	res.EstimatedDelivery = nullTime(estimated)
	res.ActualDelivery = nullTime(delivered)

	if res.Items, err = h.items(ctx, id); err != nil {
		return GetOrderQueryResponse{}, err
	}
	for _, item := range res.Items {
		res.PrepTime += item.PrepMinutes * item.Quantity
	}

	if res.Assignment, err = h.assignment(ctx, id); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return res, nil
}

func (h GetOrderQueryHandler) items(ctx context.Context, orderID kernel.UUID) ([]OrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.menu_item_id,
			i.name,
			i.quantity,
			i.unit_price,
			COALESCE(m.prep_minutes, ?)
		FROM order_items i
		LEFT JOIN menu_items m ON m.id = i.menu_item_id
		WHERE i.order_id = ?
		ORDER BY i.position
	`, menu.DefaultPrepMinutes, orderID.Bytes()).Rows()
	if err != nil {
		return nil, errs.NewStoreUnavailableError("get order items", err)
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var item OrderItemResponse
		var menuItemID uuid.UUID
		if err = rows.Scan(&menuItemID, &item.Name, &item.Quantity, &item.UnitPrice, &item.PrepMinutes); err != nil {
			return nil, err
		}
		if item.MenuItemID, err = kernel.UUIDFromBytes(menuItemID[:]); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (h GetOrderQueryHandler) assignment(ctx context.Context, orderID kernel.UUID) (*AssignmentResponse, error) {
	var (
		res             AssignmentResponse
		rawID, rawAgent uuid.UUID
		status          int
		agentName       sql.NullString
		deliveryTime    sql.NullTime
	)
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.agent_id,
			g.name,
			a.status,
			a.assigned_at,
			a.pickup_time,
			a.delivery_time,
			a.notes
		FROM delivery_assignments a
		LEFT JOIN delivery_agents g ON g.id = a.agent_id
		WHERE a.order_id = ?
	`, orderID.Bytes()).Row().Scan(
		&rawID, &rawAgent, &agentName, &status,
		&res.AssignedAt, &res.PickupTime, &deliveryTime, &res.Notes,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.NewStoreUnavailableError("get order assignment", err)
	}

	if res.ID, err = kernel.UUIDFromBytes(rawID[:]); err != nil {
		return nil, err
	}
	if res.AgentID, err = kernel.UUIDFromBytes(rawAgent[:]); err != nil {
		return nil, err
	}
	res.AgentName = agentName.String
	res.Status = delivery.Status(status)
	res.AssignedAt = res.AssignedAt.UTC()
	res.PickupTime = res.PickupTime.UTC()
	res.DeliveryTime = nullTime(deliveryTime)
	return &res, nil
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}
