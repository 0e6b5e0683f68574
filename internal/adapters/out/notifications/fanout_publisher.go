package notifications

import (
	"context"
	"errors"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
)

// Fanout hands every batch to all publishers, even when one of them fails.
type Fanout []ports.EventPublisher

func (f Fanout) Publish(ctx context.Context, events []order.StatusChanged) error {
	var problems []error
	for _, p := range f {
		if err := p.Publish(ctx, events); err != nil {
			problems = append(problems, err)
		}
	}
	return errors.Join(problems...)
}
