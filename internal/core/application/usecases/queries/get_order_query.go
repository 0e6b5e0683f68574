package queries

import (
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/delivery"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New("GetOrderQuery must be created via NewGetOrderQuery constructor")

// GetOrderQuery reads one order with its line items and delivery assignment.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// GetOrderQueryResponse is the order read model. Money is in cents.
type GetOrderQueryResponse struct {
	ID                  kernel.UUID
	UserID              kernel.UUID
	StoreID             kernel.UUID
	Status              order.Status
	Items               []OrderItemResponse
	Subtotal            int64
	Tax                 int64
	DeliveryFee         int64
	Total               int64
	PrepTime            int
	CreatedAt           time.Time
	EstimatedDelivery   *time.Time
	ActualDelivery      *time.Time
	SpecialInstructions string
	Assignment          *AssignmentResponse
}

type OrderItemResponse struct {
	MenuItemID  kernel.UUID
	Name        string
	Quantity    int
	UnitPrice   int64
	PrepMinutes int
}

type AssignmentResponse struct {
	ID           kernel.UUID
	AgentID      kernel.UUID
	AgentName    string
	Status       delivery.Status
	AssignedAt   time.Time
	PickupTime   time.Time
	DeliveryTime *time.Time
	Notes        string
}
