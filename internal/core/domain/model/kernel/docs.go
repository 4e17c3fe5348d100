// Package kernel contains shared value objects used across the fulfillment
// domain model.
//
// The package includes:
//   - UUID: an immutable identifier wrapping github.com/google/uuid
//   - Mobile: a normalized 10-digit Indian mobile number with E.164 formatting
//   - Rounding helpers for weight (3 decimals) and money (2 decimals)
//
// All value objects are immutable, validate themselves on construction, and
// expose a Validate method so zero values coming from persistence or external
// input are caught before use.
package kernel
