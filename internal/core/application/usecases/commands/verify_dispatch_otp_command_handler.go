package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/otp"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/telemetry"
)

// VerifyDispatchOtpCommandHandler validates an entered code and, on success,
// commits the handover: the credential flips to verified and every order
// matching (seller, Assigned, operator, runner) moves to PickedUp, in one
// transaction. Observers never see one effect without the other.
//
// The validation checks short-circuit in a fixed order, each with its own
// error class: missing session, malformed code, missing record, expired
// (deletes the record), already used (no deletion, preserves the audit
// trail), hash mismatch.
type VerifyDispatchOtpCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
	gate       *DispatchGate
}

// NewVerifyDispatchOtpCommandHandler creates a handler for OTP verification.
func NewVerifyDispatchOtpCommandHandler(
	uowFactory UoWFactory,
	publisher ports.OrderEventPublisher,
	gate *DispatchGate,
) VerifyDispatchOtpCommandHandler {
	return VerifyDispatchOtpCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		gate:       gate,
	}
}

// Handle processes the verification command.
//
// When the matching-orders query comes back empty the transaction rolls back
// and the credential stays pending, so the same code can be retried once
// orders are assigned (it still dies at its 10-minute expiry).
func (h VerifyDispatchOtpCommandHandler) Handle(ctx context.Context, command VerifyDispatchOtpCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	code, err := otp.ParseCode(command.EnteredCode())
	if err != nil {
		return err
	}

	groupKey, _, _ := services.GroupKey(command.OperatorID(), command.JREID())
	if !h.gate.TryAcquire(groupKey) {
		return ErrDispatchInFlight
	}
	defer h.gate.Release(groupKey)

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	otpRepo := uow.OtpRepository()
	now := time.Now().UTC()

	record, err := otpRepo.Get(ctx, command.OtpID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			telemetry.OtpVerifyTotal.WithLabelValues(telemetry.OutcomeNotFound).Inc()
		}
		return err
	}

	if record.IsExpired(now) {
		if err = otpRepo.Delete(ctx, record.ID()); err != nil {
			return err
		}
		if err = uow.Commit(ctx); err != nil {
			return errs.NewTransientError("delete expired dispatch otp", err)
		}

		telemetry.OtpVerifyTotal.WithLabelValues(telemetry.OutcomeExpired).Inc()
		return errs.NewCredentialExpiredError(record.ID())
	}

	if record.IsVerified() {
		telemetry.OtpVerifyTotal.WithLabelValues(telemetry.OutcomeAlreadyUsed).Inc()
		return errs.NewCredentialAlreadyUsedError(record.ID())
	}

	if !record.Matches(code) {
		telemetry.OtpVerifyTotal.WithLabelValues(telemetry.OutcomeMismatch).Inc()
		return errs.NewValueIsInvalidErrorWithCause("otp", fmt.Errorf("entered code does not match"))
	}

	ordersRepo := uow.OrderRepository()

	orders, err := ordersRepo.GetAllAssignedForRunner(
		ctx, command.SellerID(), command.OperatorID(), command.JREID())
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		telemetry.OtpVerifyTotal.WithLabelValues(telemetry.OutcomeNoOrders).Inc()
		return ErrNoAssignedOrdersFound
	}

	if err = record.MarkVerified(command.SellerID(), now); err != nil {
		return err
	}
	if err = otpRepo.Update(ctx, record); err != nil {
		return err
	}

	pickedUp := make([]*order.Order, 0, len(orders))
	for _, aggregate := range orders {
		if err = aggregate.PickUp(command.JREID(), command.SellerID(), record.ID(), now); err != nil {
			return err
		}
		if err = ordersRepo.Update(ctx, aggregate); err != nil {
			return err
		}
		pickedUp = append(pickedUp, aggregate)
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.NewTransientError("commit dispatch handover", err)
	}

	telemetry.OtpVerifyTotal.WithLabelValues(telemetry.OutcomeVerified).Inc()
	telemetry.OrdersPickedUpTotal.Add(float64(len(pickedUp)))

	for _, aggregate := range pickedUp {
		publishStatusChanged(ctx, h.publisher, aggregate)
	}
	return nil
}
