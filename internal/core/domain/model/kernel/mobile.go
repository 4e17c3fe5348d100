package kernel

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// mobileDigits is the exact number of digits a valid Indian mobile number
// carries after normalization.
const mobileDigits = 10

// countryCallingPrefix is prepended when formatting a mobile for use as part
// of a credential document id.
const countryCallingPrefix = "+91"

// Mobile is a value object representing a runner's mobile number.
//
// A Mobile is constructed from free-form input (which may contain spaces,
// dashes, or a country prefix), normalized to its digits, and is only valid
// when exactly 10 digits remain. The zero value is invalid.
//
// Example:
//
//	mobile, err := kernel.NewMobile("98765 43210")
//	if err != nil {
//	    // not a dialable 10-digit number
//	}
//	mobile.E164() // "+919876543210"
type Mobile struct {
	digits string
}

// NewMobile normalizes raw input to digits and validates the 10-digit rule.
// Returns a ValueIsInvalidError when the normalized input is not exactly
// 10 digits long.
func NewMobile(raw string) (Mobile, error) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if len(digits) != mobileDigits {
		return Mobile{}, errs.NewValueIsInvalidErrorWithCause(
			"mobile",
			fmt.Errorf("%q does not normalize to %d digits", raw, mobileDigits),
		)
	}

	return Mobile{digits: digits}, nil
}

// Digits returns the normalized 10-digit form.
func (m Mobile) Digits() string {
	return m.digits
}

// E164 returns the number with the +91 country prefix.
func (m Mobile) E164() string {
	return countryCallingPrefix + m.digits
}

// IsEqual compares two mobiles by their normalized digits.
func (m Mobile) IsEqual(other Mobile) bool {
	return m.digits == other.digits
}

// Validate returns an error for the zero value.
func (m Mobile) Validate() error {
	if m.digits == "" {
		return errs.NewValueIsRequiredError("mobile must be created via NewMobile")
	}
	return nil
}
