package commands

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// publishStatusChanged emits a status-changed event after a committed
// transition. Publishing is best effort: failures are logged and never undo
// or fail the command that caused them.
func publishStatusChanged(ctx context.Context, publisher ports.OrderEventPublisher, aggregate *order.Order) {
	if publisher == nil {
		return
	}

	if err := publisher.PublishStatusChanged(ctx, aggregate); err != nil {
		slog.Warn("failed to publish order status change",
			"orderId", aggregate.ID().String(),
			"status", aggregate.Status().String(),
			"error", err)
	}
}
