package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrSendDispatchOtpCommandIsNotConstructed = errors.New(
		"SendDispatchOtpCommand must be created via NewSendDispatchOtpCommand constructor",
	)
	ErrJREIDIsRequired = errors.New("jre id is required")
)

// SendDispatchOtpCommand asks for a one-time code authorizing handover of a
// pickup group to a runner. The group is derived server-side from the
// seller's assigned orders for the (operator, runner) pair; the operator id
// may be empty for orders routed without an operator.
//
// Example:
//
//	cmd, err := NewSendDispatchOtpCommand(sellerID, operatorID, jreID)
//	if err != nil {
//	    return fmt.Errorf("invalid otp request: %w", err)
//	}
//
//	session, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrDispatchInFlight) {
//	    // another issue/verify for the same group is still running
//	    return err
//	}
type SendDispatchOtpCommand struct { //nolint:recvcheck //using for validation
	sellerID   string
	operatorID string
	jreID      string

	guard guard.ConstructorGuard
}

// NewSendDispatchOtpCommand creates a command to issue a dispatch OTP.
func NewSendDispatchOtpCommand(sellerID, operatorID, jreID string) (SendDispatchOtpCommand, error) {
	cmd := SendDispatchOtpCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSellerID(sellerID),
		cmd.setJREID(jreID),
	); err != nil {
		return SendDispatchOtpCommand{}, err
	}

	cmd.operatorID = operatorID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSendDispatchOtpCommandIsNotConstructed if validation fails.
func (c SendDispatchOtpCommand) Validate() error {
	return c.guard.Validate(ErrSendDispatchOtpCommandIsNotConstructed)
}

// SellerID returns the acting seller's identifier.
func (c SendDispatchOtpCommand) SellerID() string {
	return c.sellerID
}

// OperatorID returns the group's operator id, possibly empty.
func (c SendDispatchOtpCommand) OperatorID() string {
	return c.operatorID
}

// JREID returns the runner the code is issued for.
func (c SendDispatchOtpCommand) JREID() string {
	return c.jreID
}

func (c *SendDispatchOtpCommand) setSellerID(sellerID string) error {
	if sellerID == "" {
		return ErrSellerIDIsRequired
	}

	c.sellerID = sellerID
	return nil
}

func (c *SendDispatchOtpCommand) setJREID(jreID string) error {
	if jreID == "" {
		return ErrJREIDIsRequired
	}

	c.jreID = jreID
	return nil
}
