package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrAcceptOrderCommandIsNotConstructed = errors.New(
		"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
	)
	ErrSellerIDIsRequired = errors.New("seller id is required")
)

// AcceptOrderCommand represents a seller accepting a buyer's request,
// moving the order into assortment.
//
// Example:
//
//	cmd, err := NewAcceptOrderCommand(orderID, sellerID)
//	if err != nil {
//	    return fmt.Errorf("invalid accept request: %w", err)
//	}
//
//	handler := NewAcceptOrderCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to accept order: %w", err)
//	}
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	sellerID string

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command to accept a requested order.
// Validates that the order ID is constructed and the seller id is present.
func NewAcceptOrderCommand(orderID kernel.UUID, sellerID string) (AcceptOrderCommand, error) {
	cmd := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSellerID(sellerID),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAcceptOrderCommandIsNotConstructed if validation fails.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the target order's unique identifier.
func (c AcceptOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SellerID returns the acting seller's identifier.
func (c AcceptOrderCommand) SellerID() string {
	return c.sellerID
}

func (c *AcceptOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AcceptOrderCommand) setSellerID(sellerID string) error {
	if sellerID == "" {
		return ErrSellerIDIsRequired
	}

	c.sellerID = sellerID
	return nil
}
