// Package telemetry exposes the service's Prometheus instruments. Counters
// are registered on the default registry and served through the /metrics
// endpoint.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Verify outcome label values.
const (
	OutcomeVerified    = "verified"
	OutcomeExpired     = "expired"
	OutcomeAlreadyUsed = "already_used"
	OutcomeMismatch    = "mismatch"
	OutcomeNotFound    = "not_found"
	OutcomeNoOrders    = "no_orders"
)

var (
	// OtpIssuedTotal counts dispatch credentials issued.
	OtpIssuedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fulfillment_dispatch_otp_issued_total",
		Help: "Number of dispatch OTP credentials issued.",
	})

	// OtpVerifyTotal counts verification attempts by outcome.
	OtpVerifyTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fulfillment_dispatch_otp_verify_total",
		Help: "Number of dispatch OTP verification attempts by outcome.",
	}, []string{"outcome"})

	// OrdersPickedUpTotal counts orders transitioned to PickedUp by verified
	// handovers.
	OrdersPickedUpTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fulfillment_orders_picked_up_total",
		Help: "Number of orders picked up through verified dispatch handovers.",
	})
)
