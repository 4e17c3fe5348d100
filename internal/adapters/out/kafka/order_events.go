// Package kafka publishes order lifecycle events to the message broker.
// Events are emitted after the owning transaction commits; consumers see only
// durable state.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// StatusChangedEvent is the wire payload of one order status change.
// Keyed by order id, so all events of one order land on the same partition
// in order.
type StatusChangedEvent struct {
	OrderID    string `json:"orderId"`
	SellerID   string `json:"sellerId"`
	OperatorID string `json:"operatorId,omitempty"`
	JREID      string `json:"jreId,omitempty"`
	Status     string `json:"status"`
	OccurredAt string `json:"occurredAt"`
}

// messageWriter abstracts kafka.Writer for testability.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderEventPublisher writes status-changed events to a Kafka topic.
type OrderEventPublisher struct {
	writer messageWriter
}

// NewOrderEventPublisher creates a publisher for the given brokers and topic.
// bootstrap can be a comma-separated list of host:port.
func NewOrderEventPublisher(bootstrap string, topic string) *OrderEventPublisher {
	var brokers []string
	for _, a := range strings.Split(bootstrap, ",") {
		a = strings.TrimSpace(a)
		if a != "" {
			brokers = append(brokers, a)
		}
	}
	return &OrderEventPublisher{writer: &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
	}}
}

// NewOrderEventPublisherWith is only for tests to inject a fake writer.
func NewOrderEventPublisherWith(w messageWriter) *OrderEventPublisher {
	return &OrderEventPublisher{writer: w}
}

// PublishStatusChanged emits one event for the order's current state.
func (p *OrderEventPublisher) PublishStatusChanged(ctx context.Context, aggregate *order.Order) error {
	msg, err := buildStatusChangedMessage(aggregate)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, msg)
}

// Close flushes pending messages and releases the writer.
func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}

func buildStatusChangedMessage(aggregate *order.Order) (kafka.Message, error) {
	event := StatusChangedEvent{
		OrderID:    aggregate.ID().String(),
		SellerID:   aggregate.SellerID(),
		OperatorID: aggregate.OperatorID(),
		JREID:      aggregate.JREID(),
		Status:     aggregate.Status().String(),
		OccurredAt: aggregate.UpdatedAt().UTC().Format(time.RFC3339),
	}

	value, err := json.Marshal(&event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal status event: %w", err)
	}

	return kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
	}, nil
}
