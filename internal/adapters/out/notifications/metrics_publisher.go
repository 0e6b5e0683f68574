package notifications

import (
	"context"

	"pizzeria/internal/core/domain/model/order"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsPublisher counts transitions by edge.
type MetricsPublisher struct {
	transitions *prometheus.CounterVec
}

// NewMetricsPublisher registers pizzeria_order_transitions_total with reg.
func NewMetricsPublisher(reg prometheus.Registerer) (*MetricsPublisher, error) {
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pizzeria",
		Name:      "order_transitions_total",
		Help:      "Order status changes by source and target status.",
	}, []string{"from", "to"})

	if err := reg.Register(transitions); err != nil {
		return nil, err
	}
	return &MetricsPublisher{transitions: transitions}, nil
}

func (p *MetricsPublisher) Publish(_ context.Context, events []order.StatusChanged) error {
	for _, e := range events {
		p.transitions.WithLabelValues(e.From.String(), e.To.String()).Inc()
	}
	return nil
}
