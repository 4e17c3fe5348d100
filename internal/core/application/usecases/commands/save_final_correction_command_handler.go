package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// SaveFinalCorrectionCommandHandler writes the seller's final weight and
// piece figures and moves the order to ReadyToDispatch. The Assorted display
// stage is skipped when the seller corrects straight out of assortment.
type SaveFinalCorrectionCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewSaveFinalCorrectionCommandHandler creates a handler for final corrections.
func NewSaveFinalCorrectionCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) SaveFinalCorrectionCommandHandler {
	return SaveFinalCorrectionCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the final correction command.
func (h SaveFinalCorrectionCommandHandler) Handle(ctx context.Context, command SaveFinalCorrectionCommand) error {
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

	if err = aggregate.ApplyFinalCorrection(command.Weight(), command.Pieces(), time.Now().UTC()); err != nil {
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
