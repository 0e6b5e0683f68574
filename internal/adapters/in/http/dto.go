package http

import (
	"time"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/agent"
	"pizzeria/internal/core/domain/model/delivery"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/menu"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
)

// Error is the body of every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type NewMenuItem struct {
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	PrepMinutes int    `json:"prepMinutes"`
	Available   *bool  `json:"available"`
}

type MenuItem struct {
	ID          kernel.UUID `json:"id"`
	StoreID     kernel.UUID `json:"storeId"`
	Name        string      `json:"name"`
	Price       int64       `json:"price"`
	PrepMinutes int         `json:"prepMinutes"`
	Available   bool        `json:"available"`
}

type NewAgent struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type AgentActivation struct {
	Active *bool `json:"active"`
}

type Agent struct {
	ID        kernel.UUID  `json:"id"`
	StoreID   *kernel.UUID `json:"storeId,omitempty"`
	Name      string       `json:"name"`
	Phone     string       `json:"phone,omitempty"`
	Active    bool         `json:"active"`
	CreatedAt time.Time    `json:"createdAt"`
}

type NewOrderItem struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

type NewOrder struct {
	UserID              string         `json:"userId"`
	Items               []NewOrderItem `json:"items"`
	SpecialInstructions string         `json:"specialInstructions"`
}

type StatusTransition struct {
	Status string `json:"status"`
}

type OrderItem struct {
	MenuItemID  kernel.UUID `json:"menuItemId"`
	Name        string      `json:"name"`
	Quantity    int         `json:"quantity"`
	UnitPrice   int64       `json:"unitPrice"`
	PrepMinutes int         `json:"prepMinutes"`
}

type Order struct {
	ID                  kernel.UUID  `json:"id"`
	UserID              kernel.UUID  `json:"userId"`
	StoreID             kernel.UUID  `json:"storeId"`
	Status              order.Status `json:"status"`
	Items               []OrderItem  `json:"items"`
	Subtotal            int64        `json:"subtotal"`
	Tax                 int64        `json:"tax"`
	DeliveryFee         int64        `json:"deliveryFee"`
	Total               int64        `json:"total"`
	PrepTime            int          `json:"prepTime"`
	CreatedAt           time.Time    `json:"createdAt"`
	EstimatedDelivery   *time.Time   `json:"estimatedDelivery,omitempty"`
	ActualDelivery      *time.Time   `json:"actualDelivery,omitempty"`
	SpecialInstructions string       `json:"specialInstructions,omitempty"`
	Assignment          *Assignment  `json:"assignment,omitempty"`
}

type Assignment struct {
	ID           kernel.UUID     `json:"id"`
	OrderID      kernel.UUID     `json:"orderId"`
	StoreID      *kernel.UUID    `json:"storeId,omitempty"`
	AgentID      kernel.UUID     `json:"agentId"`
	AgentName    string          `json:"agentName,omitempty"`
	Status       delivery.Status `json:"status"`
	AssignedAt   time.Time       `json:"assignedAt"`
	PickupTime   time.Time       `json:"pickupTime"`
	DeliveryTime *time.Time      `json:"deliveryTime,omitempty"`
	Notes        string          `json:"notes,omitempty"`
}

type KitchenWorkload struct {
	StoreID       kernel.UUID            `json:"storeId"`
	ActiveOrders  int                    `json:"activeOrders"`
	TotalPrepTime int                    `json:"totalPrepTime"`
	AvgPrepTime   float64                `json:"avgPrepTime"`
	WorkloadLevel services.WorkloadLevel `json:"workloadLevel"`
}

type EstimateItem struct {
	MenuItemID  *string `json:"menuItemId"`
	PrepMinutes *int    `json:"prepMinutes"`
	Quantity    int     `json:"quantity"`
}

// AutomationRequest carries the parameters of every automation action; each
// action reads the fields it needs.
type AutomationRequest struct {
	Action            string         `json:"action"`
	StoreID           *string        `json:"storeId"`
	OrderID           *string        `json:"orderId"`
	Status            string         `json:"status"`
	Notes             string         `json:"notes"`
	OrderItems        []EstimateItem `json:"orderItems"`
	StaleAfterMinutes *int           `json:"staleAfterMinutes"`
}

type AutoAssignResult struct {
	Assigned    int          `json:"assigned"`
	Assignments []Assignment `json:"assignments"`
}

type DeliveryEstimate struct {
	PreparationTime   int       `json:"preparationTime"`
	DeliveryTime      int       `json:"deliveryTime"`
	TotalEstimate     int       `json:"totalEstimate"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
}

type QueueEntry struct {
	Position          int          `json:"position"`
	OrderID           kernel.UUID  `json:"orderId"`
	Status            order.Status `json:"status"`
	EstimatedPrepTime int          `json:"estimatedPrepTime"`
	CreatedAt         time.Time    `json:"createdAt"`
}

type KitchenQueue struct {
	OriginalQueueLength int          `json:"originalQueueLength"`
	OptimizedQueue      []QueueEntry `json:"optimizedQueue"`
}

type AutoCancelResult struct {
	Cancelled int           `json:"cancelled"`
	OrderIDs  []kernel.UUID `json:"orderIds"`
}

func toMenuItem(item *menu.Item) MenuItem {
	return MenuItem{
		ID:          item.ID(),
		StoreID:     item.StoreID(),
		Name:        item.Name(),
		Price:       item.Price().Amount(),
		PrepMinutes: item.PrepMinutes(),
		Available:   item.IsAvailable(),
	}
}

func toAgent(a *agent.Agent) Agent {
	storeID := a.StoreID()
	return Agent{
		ID:        a.ID(),
		StoreID:   &storeID,
		Name:      a.Name(),
		Phone:     a.Phone(),
		Active:    a.IsActive(),
		CreatedAt: a.CreatedAt(),
	}
}

func toAgentList(agents []queries.ListAgentsQueryResponse) []Agent {
	res := make([]Agent, 0, len(agents))
	for _, a := range agents {
		res = append(res, Agent{
			ID:        a.ID,
			Name:      a.Name,
			Phone:     a.Phone,
			Active:    a.Active,
			CreatedAt: a.CreatedAt,
		})
	}
	return res
}

func toOrder(o *order.Order) Order {
	items := make([]OrderItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItem{
			MenuItemID:  item.MenuItemID(),
			Name:        item.Name(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Amount(),
			PrepMinutes: item.PrepMinutes(),
		})
	}

	return Order{
		ID:                  o.ID(),
		UserID:              o.UserID(),
		StoreID:             o.StoreID(),
		Status:              o.Status(),
		Items:               items,
		Subtotal:            o.Subtotal().Amount(),
		Tax:                 o.Tax().Amount(),
		DeliveryFee:         o.DeliveryFee().Amount(),
		Total:               o.Total().Amount(),
		PrepTime:            o.PrepTime(),
		CreatedAt:           o.CreatedAt(),
		EstimatedDelivery:   o.EstimatedDelivery(),
		ActualDelivery:      o.ActualDelivery(),
		SpecialInstructions: o.SpecialInstructions(),
	}
}

func toOrderView(o queries.GetOrderQueryResponse) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItem(item))
	}

	res := Order{
		ID:                  o.ID,
		UserID:              o.UserID,
		StoreID:             o.StoreID,
		Status:              o.Status,
		Items:               items,
		Subtotal:            o.Subtotal,
		Tax:                 o.Tax,
		DeliveryFee:         o.DeliveryFee,
		Total:               o.Total,
		PrepTime:            o.PrepTime,
		CreatedAt:           o.CreatedAt,
		EstimatedDelivery:   o.EstimatedDelivery,
		ActualDelivery:      o.ActualDelivery,
		SpecialInstructions: o.SpecialInstructions,
	}
	if a := o.Assignment; a != nil {
		res.Assignment = &Assignment{
			ID:           a.ID,
			OrderID:      o.ID,
			AgentID:      a.AgentID,
			AgentName:    a.AgentName,
			Status:       a.Status,
			AssignedAt:   a.AssignedAt,
			PickupTime:   a.PickupTime,
			DeliveryTime: a.DeliveryTime,
			Notes:        a.Notes,
		}
	}
	return res
}

func toAssignment(a *delivery.Assignment) Assignment {
	storeID := a.StoreID()
	return Assignment{
		ID:           a.ID(),
		OrderID:      a.OrderID(),
		StoreID:      &storeID,
		AgentID:      a.AgentID(),
		Status:       a.Status(),
		AssignedAt:   a.AssignedAt(),
		PickupTime:   a.PickupTime(),
		DeliveryTime: a.DeliveryTime(),
		Notes:        a.Notes(),
	}
}

func toAutoAssignResult(res commands.AutoAssignResult) AutoAssignResult {
	assignments := make([]Assignment, 0, len(res.Assignments))
	for _, a := range res.Assignments {
		assignments = append(assignments, toAssignment(a))
	}
	return AutoAssignResult{Assigned: res.Assigned, Assignments: assignments}
}

func toWorkload(res queries.KitchenWorkloadQueryResponse) KitchenWorkload {
	return KitchenWorkload{
		StoreID:       res.StoreID,
		ActiveOrders:  res.ActiveOrders,
		TotalPrepTime: res.TotalPrepTime,
		AvgPrepTime:   res.AvgPrepTime,
		WorkloadLevel: res.Level,
	}
}

func toKitchenQueue(res queries.OptimizeKitchenQueueQueryResponse) KitchenQueue {
	queue := make([]QueueEntry, 0, len(res.OptimizedQueue))
	for _, e := range res.OptimizedQueue {
		queue = append(queue, QueueEntry{
			Position:          e.Position,
			OrderID:           e.OrderID,
			Status:            e.Status,
			EstimatedPrepTime: e.PrepTime,
			CreatedAt:         e.CreatedAt,
		})
	}
	return KitchenQueue{OriginalQueueLength: res.OriginalQueueLength, OptimizedQueue: queue}
}

func toDeliveryEstimate(e services.DeliveryEstimate) DeliveryEstimate {
	return DeliveryEstimate{
		PreparationTime:   e.PreparationTime,
		DeliveryTime:      e.DeliveryTime,
		TotalEstimate:     e.TotalEstimate,
		EstimatedDelivery: e.EstimatedDelivery,
	}
}
