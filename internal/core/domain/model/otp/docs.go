// Package otp contains the Record aggregate for one-time dispatch
// credentials.
//
// A record binds a bcrypt-hashed 6-digit code to a runner's mobile number and
// the secure-dispatch use case. Codes expire 10 minutes after issuance and can
// be redeemed exactly once; re-issuing for the same mobile overwrites the
// previous record.
package otp
