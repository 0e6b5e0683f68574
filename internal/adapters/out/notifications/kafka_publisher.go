package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

// messageWriter is the part of *kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes one message per event, keyed by user id so that a
// customer's notifications stay ordered within a partition.
type KafkaPublisher struct {
	writer messageWriter
}

// NewKafkaWriter builds an asynchronous writer for the order status topic.
// WriteMessages only enqueues; delivery failures are reported to logger.
func NewKafkaWriter(brokers []string, topic string, logger *slog.Logger) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
		Async:                  true,
		Completion:             deliveryReport(logger, topic),
	}
}

func deliveryReport(logger *slog.Logger, topic string) func([]kafka.Message, error) {
	logger = logger.With("component", "kafka_publisher", "topic", topic)
	return func(messages []kafka.Message, err error) {
		if err == nil {
			return
		}
		keys := make([]string, 0, len(messages))
		for _, m := range messages {
			keys = append(keys, string(m.Key))
		}
		logger.Error("Failed to deliver status changed messages",
			"count", len(messages), "keys", keys, "error", err)
	}
}

// NewKafkaPublisher parses a comma separated broker list. A nil logger means
// slog.Default.
func NewKafkaPublisher(brokers, topic string, logger *slog.Logger) (*KafkaPublisher, error) {
	var addrs []string
	for _, b := range strings.Split(brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			addrs = append(addrs, b)
		}
	}
	if len(addrs) == 0 {
		return nil, errs.NewValueIsRequiredError("kafka brokers")
	}
	if strings.TrimSpace(topic) == "" {
		return nil, errs.NewValueIsRequiredError("kafka topic")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return newKafkaPublisher(NewKafkaWriter(addrs, topic, logger)), nil
}

func newKafkaPublisher(writer messageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

func (p *KafkaPublisher) Publish(ctx context.Context, events []order.StatusChanged) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		value, err := json.Marshal(newStatusChangedMessage(e))
		if err != nil {
			return fmt.Errorf("failed to marshal status changed event: %w", err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(e.UserID.String()),
			Value: value,
			Time:  e.OccurredAt,
		})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("failed to produce %d status changed messages: %w", len(msgs), err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
