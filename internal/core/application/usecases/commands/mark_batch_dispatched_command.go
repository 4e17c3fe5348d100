package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrMarkBatchDispatchedCommandIsNotConstructed = errors.New(
		"MarkBatchDispatchedCommand must be created via NewMarkBatchDispatchedCommand constructor",
	)
	ErrOrderIDsAreRequired = errors.New("at least one order id is required")
)

// MarkBatchDispatchedCommand marks a multi-selected set of ready-to-dispatch
// orders as dispatched in one transaction.
type MarkBatchDispatchedCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID
	sellerID string

	guard guard.ConstructorGuard
}

// NewMarkBatchDispatchedCommand creates a command to dispatch a batch of
// orders. The batch must be non-empty and every id must be constructed.
func NewMarkBatchDispatchedCommand(orderIDs []kernel.UUID, sellerID string) (MarkBatchDispatchedCommand, error) {
	cmd := MarkBatchDispatchedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderIDs(orderIDs),
		cmd.setSellerID(sellerID),
	); err != nil {
		return MarkBatchDispatchedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkBatchDispatchedCommandIsNotConstructed if validation fails.
func (c MarkBatchDispatchedCommand) Validate() error {
	return c.guard.Validate(ErrMarkBatchDispatchedCommandIsNotConstructed)
}

// OrderIDs returns a copy of the selected order ids.
func (c MarkBatchDispatchedCommand) OrderIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.orderIDs...)
}

// SellerID returns the acting seller's identifier.
func (c MarkBatchDispatchedCommand) SellerID() string {
	return c.sellerID
}

func (c *MarkBatchDispatchedCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return ErrOrderIDsAreRequired
	}

	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.orderIDs = append([]kernel.UUID(nil), orderIDs...)
	return nil
}

func (c *MarkBatchDispatchedCommand) setSellerID(sellerID string) error {
	if sellerID == "" {
		return ErrSellerIDIsRequired
	}

	c.sellerID = sellerID
	return nil
}
