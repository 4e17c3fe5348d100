package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/otp"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/telemetry"
)

// ErrNoAssignedOrdersFound is returned when no orders in Assigned status
// match the requested (seller, operator, runner) group.
var ErrNoAssignedOrdersFound = errors.New("no assigned orders found for this group")

// DispatchOtpSession is what the issuing caller gets back. It carries the
// credential's document id and the group summary but never the plaintext
// code, which travels out-of-band inside the stored message.
type DispatchOtpSession struct {
	GroupKey    string
	OperatorID  string
	JREID       string
	OtpID       string
	JREMobile   string
	OrdersCount int
	Summary     services.DispatchSummary
}

// SendDispatchOtpCommandHandler issues a one-time code for a pickup group.
//
// The handler loads the group's assigned orders, resolves the runner's
// mobile, generates and hashes a 6-digit code, and persists the credential
// record with its dispatch-details snapshot. Re-issuing for the same mobile
// overwrites the previous record: the earlier code becomes invalid with no
// explicit signal (last write wins).
type SendDispatchOtpCommandHandler struct {
	uowFactory UoWFactory
	resolver   ContactResolver
	gate       *DispatchGate
}

// NewSendDispatchOtpCommandHandler creates a handler for OTP issuance.
func NewSendDispatchOtpCommandHandler(
	uowFactory UoWFactory,
	resolver ContactResolver,
	gate *DispatchGate,
) SendDispatchOtpCommandHandler {
	return SendDispatchOtpCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
		gate:       gate,
	}
}

// Handle processes the issuance command.
//
// The runner's mobile must resolve and normalize to exactly 10 digits before
// anything is written; a malformed mobile fails validation with no store
// write. A concurrent issue or verify for the same group key is rejected
// with ErrDispatchInFlight.
func (h SendDispatchOtpCommandHandler) Handle(
	ctx context.Context,
	command SendDispatchOtpCommand,
) (DispatchOtpSession, error) {
	if err := command.Validate(); err != nil {
		return DispatchOtpSession{}, err
	}

	groupKey, operatorID, jreID := services.GroupKey(command.OperatorID(), command.JREID())
	if !h.gate.TryAcquire(groupKey) {
		return DispatchOtpSession{}, ErrDispatchInFlight
	}
	defer h.gate.Release(groupKey)

	contact, err := h.resolver.Resolve(ctx, command.JREID())
	if err != nil {
		return DispatchOtpSession{}, err
	}
	if !contact.Found {
		return DispatchOtpSession{}, errs.NewObjectNotFoundError("jreId", command.JREID())
	}

	mobile, err := kernel.NewMobile(contact.Mobile)
	if err != nil {
		return DispatchOtpSession{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return DispatchOtpSession{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetAllAssignedForRunner(
		ctx, command.SellerID(), command.OperatorID(), command.JREID())
	if err != nil {
		return DispatchOtpSession{}, err
	}
	if len(orders) == 0 {
		return DispatchOtpSession{}, ErrNoAssignedOrdersFound
	}

	summary, err := services.NewMetricsCalculator().Summarize(orders)
	if err != nil {
		return DispatchOtpSession{}, err
	}

	code, err := otp.NewCode()
	if err != nil {
		return DispatchOtpSession{}, err
	}

	record, err := otp.NewRecord(mobile, code, otp.DispatchDetails{
		GroupKey:     groupKey,
		OperatorID:   operatorID,
		JREID:        jreID,
		OrdersCount:  len(orders),
		TotalItems:   summary.TotalItems,
		TotalWeight:  summary.TotalGrossWeight,
		TotalPackets: summary.TotalPackets,
	}, time.Now().UTC())
	if err != nil {
		return DispatchOtpSession{}, err
	}

	if err = uow.OtpRepository().Put(ctx, record); err != nil {
		return DispatchOtpSession{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return DispatchOtpSession{}, err
	}

	telemetry.OtpIssuedTotal.Inc()

	return DispatchOtpSession{
		GroupKey:    groupKey,
		OperatorID:  operatorID,
		JREID:       jreID,
		OtpID:       record.ID(),
		JREMobile:   mobile.E164(),
		OrdersCount: len(orders),
		Summary:     summary,
	}, nil
}
