package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// MarkBatchDispatchedCommandHandler stamps dispatchedAt on every selected
// order inside a single transaction. One invalid order fails the whole batch:
// either every selected order moves to Dispatched or none does.
type MarkBatchDispatchedCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewMarkBatchDispatchedCommandHandler creates a handler for batch dispatch.
func NewMarkBatchDispatchedCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) MarkBatchDispatchedCommandHandler {
	return MarkBatchDispatchedCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the batch dispatch command.
func (h MarkBatchDispatchedCommandHandler) Handle(ctx context.Context, command MarkBatchDispatchedCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()
	now := time.Now().UTC()

	dispatched := make([]*order.Order, 0, len(command.OrderIDs()))
	for _, orderID := range command.OrderIDs() {
		aggregate, err := ordersRepo.Get(ctx, orderID)
		if err != nil {
			return err
		}

		if !aggregate.IsOwnedBy(command.SellerID()) {
			return errs.NewNotAuthorizedError(command.SellerID(), orderID.String())
		}

		if err = aggregate.MarkDispatched(now); err != nil {
			return err
		}

		if err = ordersRepo.Update(ctx, aggregate); err != nil {
			return err
		}

		dispatched = append(dispatched, aggregate)
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	for _, aggregate := range dispatched {
		publishStatusChanged(ctx, h.publisher, aggregate)
	}
	return nil
}
