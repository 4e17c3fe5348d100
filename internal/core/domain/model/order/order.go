package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrStageAlreadySet is returned when a transition would overwrite a stage
	// timestamp. Stage timestamps are written exactly once.
	ErrStageAlreadySet = errors.New("stage timestamp is already set")
)

// Variant is one size/quantity entry of an order's selected variants.
// The slice order is meaningful and preserved through persistence.
type Variant struct {
	Size     string
	Quantity int
}

// Details groups the classification fields of an order.
type Details struct {
	ProductName   string
	Category      string
	ProductSource string
	Specification string
}

// Specs groups the raw physical and financial inputs of an order. All metric
// derivations (fine weight, making-charge total) read from here; the values
// themselves are never recomputed.
type Specs struct {
	NetWt                 float64
	GrossWt               float64
	Purity                float64
	Wastage               float64
	SpecificationMC       float64
	SpecificationGramRate float64
	SpecificationWt       float64
	SetMc                 float64
	NetGramMc             float64
}

// StageTimes holds the per-stage timestamps of an order. A nil entry means the
// order has not reached that stage. Each entry is written exactly once, by the
// transition that owns it.
type StageTimes struct {
	AssignedAt          *time.Time
	PickedUpAt          *time.Time
	WarehouseReceivedAt *time.Time
	DispatchedAt        *time.Time
	DeliveredAt         *time.Time
	BuyerPaidAt         *time.Time
	PaymentDispatchedAt *time.Time
	PaymentToSellerAt   *time.Time
	PaymentCompletedAt  *time.Time
}

// Order is the aggregate root for one physical/logical line item moving through
// fulfillment. It owns the status state machine: every transition goes through
// a method that validates the step, stamps the owning stage timestamp exactly
// once, and bumps updatedAt.
//
// Invariants:
//   - status is always a member of the closed Status enumeration
//   - a stage timestamp, once set, is immutable
//   - orders are created only via NewOrder or RestoreOrder
type Order struct {
	id           kernel.UUID
	sellerID     string
	operatorID   string
	jreID        string
	details      Details
	specs        Specs
	variants     []Variant
	orderWeight  float64
	orderPiece   int
	status       Status
	stages       StageTimes
	pickedUpBy   string
	verifiedBy   string
	otpReference string
	otpVerified  bool
	updatedAt    time.Time

	isConstructed bool
}

// Snapshot is the flat representation of an Order used to move aggregates in
// and out of persistence without exposing mutable internals.
type Snapshot struct {
	ID           kernel.UUID
	SellerID     string
	OperatorID   string
	JREID        string
	Details      Details
	Specs        Specs
	Variants     []Variant
	OrderWeight  float64
	OrderPiece   int
	Status       Status
	Stages       StageTimes
	PickedUpBy   string
	VerifiedBy   string
	OTPReference string
	OTPVerified  bool
	UpdatedAt    time.Time
}

// NewOrder creates an order entering the system as a fresh buyer request.
// The order starts in Requested status with no runner assigned.
//
// Parameters:
//   - id: unique identifier (must be a constructed UUID)
//   - sellerID: owning seller (required)
//   - operatorID: intermediary operator, may be empty until assignment
//   - details: classification fields
//   - specs: raw physical/financial inputs
//   - variants: ordered size/quantity selections
func NewOrder(
	id kernel.UUID,
	sellerID string,
	operatorID string,
	details Details,
	specs Specs,
	variants []Variant,
) (*Order, error) {
	o := &Order{
		status:        Requested,
		isConstructed: true,
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	if sellerID == "" {
		return nil, errs.NewValueIsRequiredError("sellerId")
	}
	if details.ProductName == "" {
		return nil, errs.NewValueIsRequiredError("productName")
	}

	o.id = id
	o.sellerID = sellerID
	o.operatorID = operatorID
	o.details = details
	o.specs = specs
	o.variants = append([]Variant(nil), variants...)
	return o, nil
}

// RestoreOrder reconstructs an order from a persistence snapshot.
// The snapshot's status must be a valid enum member; stage timestamps and
// verification fields are taken as-is.
func RestoreOrder(s Snapshot) (*Order, error) {
	if err := s.ID.Validate(); err != nil {
		return nil, err
	}
	if s.SellerID == "" {
		return nil, errs.NewValueIsRequiredError("sellerId")
	}
	if err := s.Status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            s.ID,
		sellerID:      s.SellerID,
		operatorID:    s.OperatorID,
		jreID:         s.JREID,
		details:       s.Details,
		specs:         s.Specs,
		variants:      append([]Variant(nil), s.Variants...),
		orderWeight:   s.OrderWeight,
		orderPiece:    s.OrderPiece,
		status:        s.Status,
		stages:        s.Stages,
		pickedUpBy:    s.PickedUpBy,
		verifiedBy:    s.VerifiedBy,
		otpReference:  s.OTPReference,
		otpVerified:   s.OTPVerified,
		updatedAt:     s.UpdatedAt,
		isConstructed: true,
	}, nil
}

// Snapshot returns the flat representation for persistence. Mutating the
// returned value does not affect the aggregate.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:           o.id,
		SellerID:     o.sellerID,
		OperatorID:   o.operatorID,
		JREID:        o.jreID,
		Details:      o.details,
		Specs:        o.specs,
		Variants:     append([]Variant(nil), o.variants...),
		OrderWeight:  o.orderWeight,
		OrderPiece:   o.orderPiece,
		Status:       o.status,
		Stages:       o.stages,
		PickedUpBy:   o.pickedUpBy,
		VerifiedBy:   o.verifiedBy,
		OTPReference: o.otpReference,
		OTPVerified:  o.otpVerified,
		UpdatedAt:    o.updatedAt,
	}
}

// Validate ensures the Order was constructed through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// SellerID returns the owning seller's identifier.
func (o *Order) SellerID() string {
	return o.sellerID
}

// OperatorID returns the intermediary operator's identifier, possibly empty.
func (o *Order) OperatorID() string {
	return o.operatorID
}

// JREID returns the assigned runner's identifier, empty when unassigned.
func (o *Order) JREID() string {
	return o.jreID
}

// Details returns the classification fields.
func (o *Order) Details() Details {
	return o.details
}

// Specs returns the raw physical/financial inputs.
func (o *Order) Specs() Specs {
	return o.specs
}

// Variants returns a copy of the ordered size/quantity selections.
func (o *Order) Variants() []Variant {
	return append([]Variant(nil), o.variants...)
}

// OrderWeight returns the final-corrected weight, 0 before correction.
func (o *Order) OrderWeight() float64 {
	return o.orderWeight
}

// OrderPiece returns the final-corrected piece count, 0 before correction.
func (o *Order) OrderPiece() int {
	return o.orderPiece
}

// Quantity returns the piece count used for group aggregation, defaulting to 1
// when no correction has been recorded.
func (o *Order) Quantity() int {
	if o.orderPiece > 0 {
		return o.orderPiece
	}
	return 1
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Stages returns a copy of the stage timestamps.
func (o *Order) Stages() StageTimes {
	return o.stages
}

// PickedUpBy returns the runner who collected the goods, empty before pickup.
func (o *Order) PickedUpBy() string {
	return o.pickedUpBy
}

// VerifiedBy returns the seller who verified the pickup OTP, empty before pickup.
func (o *Order) VerifiedBy() string {
	return o.verifiedBy
}

// OTPVerified reports whether the pickup handover was OTP-verified.
func (o *Order) OTPVerified() bool {
	return o.otpVerified
}

// OTPReference returns the id of the OTP record that authorized pickup.
func (o *Order) OTPReference() string {
	return o.otpReference
}

// UpdatedAt returns the time of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsOwnedBy reports whether the given seller owns this order.
func (o *Order) IsOwnedBy(sellerID string) bool {
	return o.sellerID == sellerID
}

// Accept moves a buyer request into assortment.
//
// Valid only from Requested. Sets updatedAt.
func (o *Order) Accept(now time.Time) error {
	return o.applyTransition(Assortment, now)
}

// Reject declines a buyer request. Terminal.
//
// Valid only from Requested. Sets updatedAt.
func (o *Order) Reject(now time.Time) error {
	return o.applyTransition(Rejected, now)
}

// ApplyFinalCorrection records the seller's final weight and piece count and
// marks the order ready to dispatch.
//
// Valid from Assortment or Assorted; the Assorted display stage is skipped
// when the seller corrects straight out of assortment. Writes orderWeight and
// orderPiece alongside the transition.
func (o *Order) ApplyFinalCorrection(weight float64, pieces int, now time.Time) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderWeight", fmt.Errorf("%v is not greater than 0", weight))
	}
	if pieces <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderPiece", fmt.Errorf("%d is not greater than 0", pieces))
	}

	if err := o.applyTransition(ReadyToDispatch, now); err != nil {
		return err
	}
	o.orderWeight = weight
	o.orderPiece = pieces
	return nil
}

// AssignRunner assigns a JRE to collect the order.
//
// Valid only from ReadyToDispatch. Writes jreId and stamps assignedAt.
func (o *Order) AssignRunner(jreID string, now time.Time) error {
	if jreID == "" {
		return errs.NewValueIsRequiredError("jreId")
	}
	if err := o.applyStagedTransition(Assigned, &o.stages.AssignedAt, now); err != nil {
		return err
	}
	o.jreID = jreID
	return nil
}

// MarkDispatched marks a final-corrected order as dispatched in a batch.
//
// Valid only from ReadyToDispatch. Stamps dispatchedAt.
func (o *Order) MarkDispatched(now time.Time) error {
	return o.applyStagedTransition(Dispatched, &o.stages.DispatchedAt, now)
}

// PickUp records the OTP-verified physical handover of goods to the runner.
//
// Valid only from Assigned. Stamps pickedUpAt and writes the verification
// audit fields: pickedUpBy (the runner), verifiedBy (the seller who entered
// the code), otpVerified, and otpReference (the credential's document id).
func (o *Order) PickUp(runnerID, verifierID, otpReference string, now time.Time) error {
	if runnerID == "" {
		return errs.NewValueIsRequiredError("jreId")
	}
	if verifierID == "" {
		return errs.NewValueIsRequiredError("sellerId")
	}

	if err := o.applyStagedTransition(PickedUp, &o.stages.PickedUpAt, now); err != nil {
		return err
	}
	o.pickedUpBy = runnerID
	o.verifiedBy = verifierID
	o.otpVerified = true
	o.otpReference = otpReference
	return nil
}

// ReceiveInWarehouse records arrival of goods at the warehouse.
func (o *Order) ReceiveInWarehouse(now time.Time) error {
	return o.applyStagedTransition(InWarehouse, &o.stages.WarehouseReceivedAt, now)
}

// Dispatch records the goods leaving the warehouse toward the buyer.
func (o *Order) Dispatch(now time.Time) error {
	return o.applyStagedTransition(Dispatched, &o.stages.DispatchedAt, now)
}

// Deliver records the buyer receiving the goods.
func (o *Order) Deliver(now time.Time) error {
	return o.applyStagedTransition(Delivered, &o.stages.DeliveredAt, now)
}

// MarkBuyerPaid enters the payment flow once the buyer has settled.
func (o *Order) MarkBuyerPaid(now time.Time) error {
	return o.applyStagedTransition(BuyerPaid, &o.stages.BuyerPaidAt, now)
}

// DispatchPaymentToOperator records funds moving to the operator.
func (o *Order) DispatchPaymentToOperator(now time.Time) error {
	return o.applyStagedTransition(PaymentDispatchedToOperator, &o.stages.PaymentDispatchedAt, now)
}

// DispatchPaymentToSeller records funds moving toward the seller.
func (o *Order) DispatchPaymentToSeller(now time.Time) error {
	return o.applyStagedTransition(PaymentDispatchedToSeller, &o.stages.PaymentToSellerAt, now)
}

// CompletePayment records the seller receiving payment. Terminal.
func (o *Order) CompletePayment(now time.Time) error {
	return o.applyStagedTransition(PaymentDeliveredToSeller, &o.stages.PaymentCompletedAt, now)
}

// applyTransition performs a validated status change and bumps updatedAt.
func (o *Order) applyTransition(to Status, now time.Time) error {
	newStatus, err := o.status.TransitionTo(to)
	if err != nil {
		return err
	}
	o.status = newStatus
	o.updatedAt = now
	return nil
}

// applyStagedTransition performs a validated status change that owns a stage
// timestamp. The timestamp write happens first so an already-set stage blocks
// the transition before any state changes.
func (o *Order) applyStagedTransition(to Status, slot **time.Time, now time.Time) error {
	if *slot != nil {
		return ErrStageAlreadySet
	}
	if err := o.applyTransition(to, now); err != nil {
		return err
	}
	t := now
	*slot = &t
	return nil
}
