package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrSaveFinalCorrectionCommandIsNotConstructed = errors.New(
		"SaveFinalCorrectionCommand must be created via NewSaveFinalCorrectionCommand constructor",
	)
	ErrOrderWeightIsInvalid = errors.New("order weight must be greater than 0")
	ErrOrderPieceIsInvalid  = errors.New("order piece count must be greater than 0")
)

// SaveFinalCorrectionCommand records the seller's final weight and piece
// count after assortment, marking the order ready to dispatch.
//
// Example:
//
//	cmd, err := NewSaveFinalCorrectionCommand(orderID, sellerID, 12.345, 2)
//	if err != nil {
//	    return fmt.Errorf("invalid correction: %w", err)
//	}
//
//	handler := NewSaveFinalCorrectionCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to save correction: %w", err)
//	}
type SaveFinalCorrectionCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	sellerID string
	weight   float64
	pieces   int

	guard guard.ConstructorGuard
}

// NewSaveFinalCorrectionCommand creates a command to record a final
// correction. Weight and piece count must both be positive.
func NewSaveFinalCorrectionCommand(
	orderID kernel.UUID,
	sellerID string,
	weight float64,
	pieces int,
) (SaveFinalCorrectionCommand, error) {
	cmd := SaveFinalCorrectionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSellerID(sellerID),
		cmd.setWeight(weight),
		cmd.setPieces(pieces),
	); err != nil {
		return SaveFinalCorrectionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSaveFinalCorrectionCommandIsNotConstructed if validation fails.
func (c SaveFinalCorrectionCommand) Validate() error {
	return c.guard.Validate(ErrSaveFinalCorrectionCommandIsNotConstructed)
}

// OrderID returns the target order's unique identifier.
func (c SaveFinalCorrectionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SellerID returns the acting seller's identifier.
func (c SaveFinalCorrectionCommand) SellerID() string {
	return c.sellerID
}

// Weight returns the corrected order weight in grams.
func (c SaveFinalCorrectionCommand) Weight() float64 {
	return c.weight
}

// Pieces returns the corrected piece count.
func (c SaveFinalCorrectionCommand) Pieces() int {
	return c.pieces
}

func (c *SaveFinalCorrectionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SaveFinalCorrectionCommand) setSellerID(sellerID string) error {
	if sellerID == "" {
		return ErrSellerIDIsRequired
	}

	c.sellerID = sellerID
	return nil
}

func (c *SaveFinalCorrectionCommand) setWeight(weight float64) error {
	if weight <= 0 {
		return ErrOrderWeightIsInvalid
	}

	c.weight = weight
	return nil
}

func (c *SaveFinalCorrectionCommand) setPieces(pieces int) error {
	if pieces <= 0 {
		return ErrOrderPieceIsInvalid
	}

	c.pieces = pieces
	return nil
}
