package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// OrderEventPublisher pushes order status changes to the message broker.
// Publishing happens after the owning transaction commits; a publish failure
// is logged and never fails the command that caused it.
type OrderEventPublisher interface {
	// PublishStatusChanged emits one status-changed event for the order's
	// current state.
	PublishStatusChanged(ctx context.Context, aggregate *order.Order) error
}
