package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
		"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
	)
	ErrSellerIDIsRequired = errors.New("seller id is required")
)

// GetOrdersByStatusQuery retrieves a seller's orders in one lifecycle status.
//
// Example:
//
//	query, err := NewGetOrdersByStatusQuery(sellerID, order.ReadyToDispatch)
//	if err != nil {
//	    return fmt.Errorf("invalid query: %w", err)
//	}
//
//	orders, err := handler.Handle(ctx, query)
type GetOrdersByStatusQuery struct {
	sellerID string
	status   order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query for one seller and status.
func NewGetOrdersByStatusQuery(sellerID string, status order.Status) (GetOrdersByStatusQuery, error) {
	if sellerID == "" {
		return GetOrdersByStatusQuery{}, ErrSellerIDIsRequired
	}
	if err := status.Validate(); err != nil {
		return GetOrdersByStatusQuery{}, err
	}

	return GetOrdersByStatusQuery{
		sellerID: sellerID,
		status:   status,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByStatusQueryIsNotConstructed if validation fails.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// SellerID returns the owning seller's identifier.
func (q GetOrdersByStatusQuery) SellerID() string {
	return q.sellerID
}

// Status returns the lifecycle status being filtered on.
func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}

// OrderResponse is the read-model projection of one order, with its derived
// valuation metrics attached.
type OrderResponse struct {
	ID            string
	SellerID      string
	OperatorID    string
	JREID         string
	ProductName   string
	Category      string
	Specification string
	NetWt         float64
	GrossWt       float64
	OrderWeight   float64
	OrderPiece    int
	Status        string
	FineWeight    float64
	TotalMC       float64
	UpdatedAt     time.Time
}
