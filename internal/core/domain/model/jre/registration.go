// Package jre contains the read model for jewelry runner executive (JRE)
// registrations. Registrations are maintained by an external onboarding
// system; this service only reads them to resolve a runner's contact mobile.
package jre

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// NoJRE is the sentinel runner id used for orders that were assigned without
// a registered runner. It never resolves to a contact.
const NoJRE = "No JRE"

// Registration is a runner's directory entry.
type Registration struct {
	ID             string
	PrimaryMobile  kernel.Mobile
	OperatorNumber string
	VehicleNumber  string
}

// NewRegistration validates and builds a directory entry.
func NewRegistration(id string, primaryMobile kernel.Mobile, operatorNumber, vehicleNumber string) (Registration, error) {
	if id == "" {
		return Registration{}, errs.NewValueIsRequiredError("jreId")
	}
	if err := primaryMobile.Validate(); err != nil {
		return Registration{}, err
	}

	return Registration{
		ID:             id,
		PrimaryMobile:  primaryMobile,
		OperatorNumber: operatorNumber,
		VehicleNumber:  vehicleNumber,
	}, nil
}

// Contact is the resolved contact projection cached per runner id. Found
// distinguishes a resolved mobile from a cached negative lookup, so repeated
// misses do not hit the directory again.
type Contact struct {
	JREID          string
	Mobile         string
	OperatorNumber string
	Found          bool
}
