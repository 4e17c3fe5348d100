// Package ports defines the outbound contracts between the application core
// and infrastructure: repositories, the unit of work, the runner directory,
// the contact cache, and event publishing. Adapters implement these
// interfaces, enabling dependency inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByStatus retrieves a seller's orders in the given status,
	// most recently updated first.
	GetAllByStatus(ctx context.Context, sellerID string, status order.Status) ([]*order.Order, error)

	// GetAllAssigned retrieves all of a seller's orders currently assigned to
	// runners, in assignment order. Used to build the pickup group view.
	GetAllAssigned(ctx context.Context, sellerID string) ([]*order.Order, error)

	// GetAllAssignedForRunner retrieves a seller's assigned orders routed
	// through the given operator to the given runner. Inside a verification
	// transaction the rows are locked for update, so concurrent verifications
	// of the same group serialize.
	GetAllAssignedForRunner(ctx context.Context, sellerID, operatorID, jreID string) ([]*order.Order, error)
}
