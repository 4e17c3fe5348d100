package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Two independent tracks share the same status field. The order flow covers the
// physical movement of goods, the payment flow covers settlement after delivery:
//
//	Requested ──> Assortment ──> Assorted ──> RTD ──> Assigned ──> PickedUp ──> InWarehouse ──> Dispatched ──> Delivered
//	    │
//	    └──> Rejected (terminal)
//
//	Delivered ──> buyerPaid ──> paymentDispatchedtoOperator ──> paymentDispatchedtoSeller ──> paymentDeliveredToSeller
//
// Final correction may move Assortment directly to RTD without persisting
// Assorted, and batch dispatch moves RTD directly to Dispatched. Rejected and
// paymentDeliveredToSeller are terminal.
//
// Status is a value object that validates state transitions and provides the
// exact string literals persisted by the store.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Requested is the initial status of a buyer request awaiting seller review.
	Requested

	// Assortment indicates the seller accepted the request and is assorting goods.
	Assortment

	// Assorted indicates assortment finished. The final-correction handler never
	// persists this value itself; it exists because other surfaces query it.
	Assorted

	// ReadyToDispatch ("RTD") indicates final-corrected orders awaiting pickup.
	ReadyToDispatch

	// Assigned indicates a runner (JRE) has been assigned to collect the order.
	Assigned

	// PickedUp indicates the runner physically collected the goods from the
	// seller. This transition is gated by OTP verification.
	PickedUp

	// InWarehouse indicates the goods were received at the warehouse.
	InWarehouse

	// Dispatched indicates the goods left for the buyer.
	Dispatched

	// Delivered indicates the buyer received the goods. Last order-flow state.
	Delivered

	// Rejected indicates the seller declined the buyer request. Terminal.
	Rejected

	// BuyerPaid enters the payment flow once the buyer has settled.
	BuyerPaid

	// PaymentDispatchedToOperator indicates funds moved to the operator.
	PaymentDispatchedToOperator

	// PaymentDispatchedToSeller indicates funds moved toward the seller.
	PaymentDispatchedToSeller

	// PaymentDeliveredToSeller indicates the seller received payment. Terminal.
	PaymentDeliveredToSeller
)

// statusStrings maps each Status to the literal persisted by the store.
// The casing of the payment-flow literals is part of the stored contract.
func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                     "Unknown",
		Requested:                   "Requested",
		Assortment:                  "Assortment",
		Assorted:                    "Assorted",
		ReadyToDispatch:             "RTD",
		Assigned:                    "Assigned",
		PickedUp:                    "PickedUp",
		InWarehouse:                 "InWarehouse",
		Dispatched:                  "Dispatched",
		Delivered:                   "Delivered",
		Rejected:                    "Rejected",
		BuyerPaid:                   "buyerPaid",
		PaymentDispatchedToOperator: "paymentDispatchedtoOperator",
		PaymentDispatchedToSeller:   "paymentDispatchedtoSeller",
		PaymentDeliveredToSeller:    "paymentDeliveredToSeller",
	}
}

// validTransitions is the closed transition relation for both tracks:
// adjacent chain steps, the Requested rejection, the final-correction and
// batch-dispatch shortcuts, and the Delivered->buyerPaid bridge. Nothing else.
func validTransitions() map[Status][]Status {
	return map[Status][]Status{
		Requested:                   {Assortment, Rejected},
		Assortment:                  {Assorted, ReadyToDispatch},
		Assorted:                    {ReadyToDispatch},
		ReadyToDispatch:             {Assigned, Dispatched},
		Assigned:                    {PickedUp},
		PickedUp:                    {InWarehouse},
		InWarehouse:                 {Dispatched},
		Dispatched:                  {Delivered},
		Delivered:                   {BuyerPaid},
		BuyerPaid:                   {PaymentDispatchedToOperator},
		PaymentDispatchedToOperator: {PaymentDispatchedToSeller},
		PaymentDispatchedToSeller:   {PaymentDeliveredToSeller},
		Rejected:                    {},
		PaymentDeliveredToSeller:    {},
	}
}

// StatusFromString parses a persisted status literal into its Status value.
// Returns an error for any string outside the closed enumeration, which keeps
// free-text statuses from entering the domain.
func StatusFromString(s string) (Status, error) {
	for status, str := range statusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"orderStatus", fmt.Errorf("%q is not a known status", s))
}

// String returns the persisted literal for the status, or "Unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks the Status is a member of the closed enumeration.
// Unknown (0) and any other value are invalid.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderStatus", fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := statusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderStatus", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// CanTransitionTo reports whether to is reachable from s in one step.
func (s Status) CanTransitionTo(to Status) bool {
	for _, next := range validTransitions()[s] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a single-step transition.
//
// Returns:
//   - (to, nil) when the transition is in the closed relation
//   - (0, error) otherwise, including stage skips and reverse transitions
func (s Status) TransitionTo(to Status) (Status, error) {
	if err := to.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(to) {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"orderStatus",
			fmt.Errorf("transition %s -> %s is not allowed", s.String(), to.String()),
		)
	}
	return to, nil
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s.Validate() == nil && len(validTransitions()[s]) == 0
}

// IsPaymentFlow reports whether the status belongs to the settlement track.
func (s Status) IsPaymentFlow() bool {
	switch s {
	case BuyerPaid, PaymentDispatchedToOperator, PaymentDispatchedToSeller, PaymentDeliveredToSeller:
		return true
	default:
		return false
	}
}
