package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrGetAssignedOrderGroupsQueryIsNotConstructed = errors.New(
	"GetAssignedOrderGroupsQuery must be created via NewGetAssignedOrderGroupsQuery constructor",
)

// GetAssignedOrderGroupsQuery retrieves the seller's assigned orders grouped
// by (operator, runner), with per-group totals and resolved runner contacts.
// This is the view the pickup screen drives the OTP handover from.
type GetAssignedOrderGroupsQuery struct {
	sellerID string

	guard guard.ConstructorGuard
}

// NewGetAssignedOrderGroupsQuery creates a query for one seller's groups.
func NewGetAssignedOrderGroupsQuery(sellerID string) (GetAssignedOrderGroupsQuery, error) {
	if sellerID == "" {
		return GetAssignedOrderGroupsQuery{}, ErrSellerIDIsRequired
	}

	return GetAssignedOrderGroupsQuery{
		sellerID: sellerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAssignedOrderGroupsQueryIsNotConstructed if validation fails.
func (q GetAssignedOrderGroupsQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignedOrderGroupsQueryIsNotConstructed)
}

// SellerID returns the owning seller's identifier.
func (q GetAssignedOrderGroupsQuery) SellerID() string {
	return q.sellerID
}

// GroupResponse is one pickup group: the orders routed through one operator
// to one runner, with accumulated totals and the runner's contact details
// (empty when the registration is missing).
type GroupResponse struct {
	GroupKey          string
	OperatorID        string
	JREID             string
	JREPrimaryMobile  string
	JREOperatorNumber string
	TotalItems        int
	TotalFineWeight   float64
	TotalMC           float64
	Orders            []OrderResponse
}
