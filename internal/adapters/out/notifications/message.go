package notifications

import (
	"time"

	"pizzeria/internal/core/domain/model/order"
)

// StatusChangedMessage is the JSON payload of an order status notification.
// From is empty for a freshly placed order.
type StatusChangedMessage struct {
	OrderID    string    `json:"orderId"`
	UserID     string    `json:"userId"`
	StoreID    string    `json:"storeId"`
	From       string    `json:"from,omitempty"`
	To         string    `json:"to"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurredAt"`
}

func newStatusChangedMessage(e order.StatusChanged) StatusChangedMessage {
	msg := StatusChangedMessage{
		OrderID:    e.OrderID.String(),
		UserID:     e.UserID.String(),
		StoreID:    e.StoreID.String(),
		To:         e.To.String(),
		Message:    e.Message(),
		OccurredAt: e.OccurredAt.UTC(),
	}
	if e.From != order.Unknown {
		msg.From = e.From.String()
	}
	return msg
}
