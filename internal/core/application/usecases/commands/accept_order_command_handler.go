package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// AcceptOrderCommandHandler moves a requested order into assortment on the
// seller's behalf. Verifies ownership before mutating and publishes the
// status change after commit.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the accept command. Loads the order, checks the acting
// seller owns it, applies the Requested to Assortment transition, and commits.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, command AcceptOrderCommand) error {
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

	aggregate, err := ordersRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if !aggregate.IsOwnedBy(command.SellerID()) {
		return errs.NewNotAuthorizedError(command.SellerID(), command.OrderID().String())
	}

	if err = aggregate.Accept(time.Now().UTC()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishStatusChanged(ctx, h.publisher, aggregate)
	return nil
}
