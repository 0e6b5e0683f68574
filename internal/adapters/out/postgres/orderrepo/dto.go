// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Orders live in "orders", their line items in
// "order_items"; preparation times are always read from "menu_items".
package orderrepo

import (
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The (store_id, status, created_at) index serves the kitchen, dispatch and
// reaper reads.
type OrderDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID `gorm:"type:uuid;index;not null"`
	StoreID             uuid.UUID `gorm:"type:uuid;not null;index:idx_orders_store_status_created,priority:1"`
	Status              int       `gorm:"not null;index:idx_orders_store_status_created,priority:2"`
	Subtotal            int64     `gorm:"not null"`
	Tax                 int64     `gorm:"not null"`
	DeliveryFee         int64     `gorm:"not null"`
	Total               int64     `gorm:"not null"`
	CreatedAt           time.Time `gorm:"not null;index:idx_orders_store_status_created,priority:3"`
	UpdatedAt           time.Time
	EstimatedDelivery   *time.Time
	ActualDelivery      *time.Time
	SpecialInstructions string

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one line item. Position keeps the order the customer listed them in.
type OrderItemDTO struct {
	ID         uint      `gorm:"primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Position   int       `gorm:"not null"`
	MenuItemID uuid.UUID `gorm:"type:uuid;not null"`
	Name       string    `gorm:"not null"`
	Quantity   int       `gorm:"not null"`
	UnitPrice  int64     `gorm:"not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// itemRow is an order item joined with its menu item's preparation time.
type itemRow struct {
	OrderID     uuid.UUID
	MenuItemID  uuid.UUID
	Name        string
	Quantity    int
	UnitPrice   int64
	PrepMinutes int
}

func fromDomain(o *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(o.Items()))
	for i, item := range o.Items() {
		items = append(items, OrderItemDTO{
			OrderID:    o.ID().Bytes(),
			Position:   i,
			MenuItemID: item.MenuItemID().Bytes(),
			Name:       item.Name(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().Amount(),
		})
	}

	return OrderDTO{
		ID:                  o.ID().Bytes(),
		UserID:              o.UserID().Bytes(),
		StoreID:             o.StoreID().Bytes(),
		Status:              int(o.Status()),
		Subtotal:            o.Subtotal().Amount(),
		Tax:                 o.Tax().Amount(),
		DeliveryFee:         o.DeliveryFee().Amount(),
		Total:               o.Total().Amount(),
		CreatedAt:           o.CreatedAt(),
		EstimatedDelivery:   o.EstimatedDelivery(),
		ActualDelivery:      o.ActualDelivery(),
		SpecialInstructions: o.SpecialInstructions(),
		Items:               items,
	}
}

func toDomain(dto OrderDTO, rows []itemRow) (*order.Order, error) {
	ids := make([]kernel.UUID, 0, 3)
	for _, raw := range []uuid.UUID{dto.ID, dto.UserID, dto.StoreID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	items := make([]order.LineItem, 0, len(rows))
	for _, row := range rows {
		menuItemID, err := kernel.UUIDFromBytes(row.MenuItemID[:])
		if err != nil {
			return nil, err
		}
		price, err := kernel.NewMoney(row.UnitPrice)
		if err != nil {
			return nil, err
		}
		item, err := order.NewLineItem(menuItemID, row.Name, row.Quantity, price, row.PrepMinutes)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	amounts := make([]kernel.Money, 0, 4)
	for _, raw := range []int64{dto.Subtotal, dto.Tax, dto.DeliveryFee, dto.Total} {
		m, err := kernel.NewMoney(raw)
		if err != nil {
			return nil, err
		}
		amounts = append(amounts, m)
	}

	return order.RestoreOrder(order.Snapshot{
		ID:                  ids[0],
		UserID:              ids[1],
		StoreID:             ids[2],
		Items:               items,
		Status:              order.Status(dto.Status),
		Subtotal:            amounts[0],
		Tax:                 amounts[1],
		DeliveryFee:         amounts[2],
		Total:               amounts[3],
		CreatedAt:           dto.CreatedAt,
		EstimatedDelivery:   utc(dto.EstimatedDelivery),
		ActualDelivery:      utc(dto.ActualDelivery),
		SpecialInstructions: dto.SpecialInstructions,
	})
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
