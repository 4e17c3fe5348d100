// Package order provides domain entities and business logic for jewelry order
// fulfillment. It implements the Order aggregate root with lifecycle management
// and a two-track status state machine.
//
// The package includes:
//   - Order: the aggregate root managing identity, raw inputs, stage timestamps,
//     and lifecycle transitions
//   - Status: a closed enumeration covering both the order flow (Requested
//     through Delivered, with Rejected as a terminal branch) and the payment
//     flow (buyerPaid through paymentDeliveredToSeller)
//
// Key business rules:
//   - Every status change goes through a validated transition; skips and
//     reverse transitions are rejected
//   - Each stage timestamp is written exactly once, by the transition that
//     owns it, and is immutable afterwards
//   - The Assigned -> PickedUp transition carries the OTP verification audit
//     fields and is only ever performed by the dispatch verifier
//
// The package follows the same aggregate conventions as the rest of the domain
// model: private fields, constructor validation, and persistence through flat
// snapshots.
package order
