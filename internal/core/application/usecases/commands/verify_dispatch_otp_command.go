package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrVerifyDispatchOtpCommandIsNotConstructed = errors.New(
		"VerifyDispatchOtpCommand must be created via NewVerifyDispatchOtpCommand constructor",
	)
	ErrSessionIsRequired = errors.New("dispatch session is required")
)

// VerifyDispatchOtpCommand carries the runner-supplied code back against an
// issued session. The entered code is kept raw here; the handler enforces
// the 6-digit format so a malformed code fails before any store access.
type VerifyDispatchOtpCommand struct { //nolint:recvcheck //using for validation
	sellerID    string
	operatorID  string
	jreID       string
	otpID       string
	enteredCode string

	guard guard.ConstructorGuard
}

// NewVerifyDispatchOtpCommand creates a command to verify a dispatch OTP.
// The otp id identifies the session issued by SendDispatchOtp; an absent id
// means there is no session to verify against.
func NewVerifyDispatchOtpCommand(
	sellerID, operatorID, jreID, otpID, enteredCode string,
) (VerifyDispatchOtpCommand, error) {
	cmd := VerifyDispatchOtpCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSellerID(sellerID),
		cmd.setJREID(jreID),
		cmd.setOtpID(otpID),
	); err != nil {
		return VerifyDispatchOtpCommand{}, err
	}

	cmd.operatorID = operatorID
	cmd.enteredCode = enteredCode
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrVerifyDispatchOtpCommandIsNotConstructed if validation fails.
func (c VerifyDispatchOtpCommand) Validate() error {
	return c.guard.Validate(ErrVerifyDispatchOtpCommandIsNotConstructed)
}

// SellerID returns the verifying seller's identifier.
func (c VerifyDispatchOtpCommand) SellerID() string {
	return c.sellerID
}

// OperatorID returns the group's operator id, possibly empty.
func (c VerifyDispatchOtpCommand) OperatorID() string {
	return c.operatorID
}

// JREID returns the runner collecting the group.
func (c VerifyDispatchOtpCommand) JREID() string {
	return c.jreID
}

// OtpID returns the credential's document id from the issued session.
func (c VerifyDispatchOtpCommand) OtpID() string {
	return c.otpID
}

// EnteredCode returns the runner-supplied code as entered.
func (c VerifyDispatchOtpCommand) EnteredCode() string {
	return c.enteredCode
}

func (c *VerifyDispatchOtpCommand) setSellerID(sellerID string) error {
	if sellerID == "" {
		return ErrSellerIDIsRequired
	}

	c.sellerID = sellerID
	return nil
}

func (c *VerifyDispatchOtpCommand) setJREID(jreID string) error {
	if jreID == "" {
		return ErrJREIDIsRequired
	}

	c.jreID = jreID
	return nil
}

func (c *VerifyDispatchOtpCommand) setOtpID(otpID string) error {
	if otpID == "" {
		return ErrSessionIsRequired
	}

	c.otpID = otpID
	return nil
}
