package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRejectOrderCommandIsNotConstructed = errors.New(
	"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
)

// RejectOrderCommand represents a seller declining a buyer's request.
// Rejection is terminal: the order never re-enters the flow.
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	sellerID string

	guard guard.ConstructorGuard
}

// NewRejectOrderCommand creates a command to reject a requested order.
func NewRejectOrderCommand(orderID kernel.UUID, sellerID string) (RejectOrderCommand, error) {
	cmd := RejectOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSellerID(sellerID),
	); err != nil {
		return RejectOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRejectOrderCommandIsNotConstructed if validation fails.
func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

// OrderID returns the target order's unique identifier.
func (c RejectOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SellerID returns the acting seller's identifier.
func (c RejectOrderCommand) SellerID() string {
	return c.sellerID
}

func (c *RejectOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RejectOrderCommand) setSellerID(sellerID string) error {
	if sellerID == "" {
		return ErrSellerIDIsRequired
	}

	c.sellerID = sellerID
	return nil
}
