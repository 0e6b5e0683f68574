package notifications

import (
	"context"
	"log/slog"

	"pizzeria/internal/core/domain/model/order"
)

// LogPublisher writes events to the structured log. It stands in for Kafka in
// local setups.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger.With("component", "notifications")}
}

func (p *LogPublisher) Publish(ctx context.Context, events []order.StatusChanged) error {
	for _, e := range events {
		msg := newStatusChangedMessage(e)
		p.logger.InfoContext(ctx, "order status changed",
			slog.String("order_id", msg.OrderID),
			slog.String("user_id", msg.UserID),
			slog.String("store_id", msg.StoreID),
			slog.String("from", msg.From),
			slog.String("to", msg.To),
			slog.String("message", msg.Message))
	}
	return nil
}
