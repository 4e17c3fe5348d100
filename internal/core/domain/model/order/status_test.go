package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	cases := map[order.Status]string{
		order.Requested:                   "Requested",
		order.Assortment:                  "Assortment",
		order.Assorted:                    "Assorted",
		order.ReadyToDispatch:             "RTD",
		order.Assigned:                    "Assigned",
		order.PickedUp:                    "PickedUp",
		order.InWarehouse:                 "InWarehouse",
		order.Dispatched:                  "Dispatched",
		order.Delivered:                   "Delivered",
		order.Rejected:                    "Rejected",
		order.BuyerPaid:                   "buyerPaid",
		order.PaymentDispatchedToOperator: "paymentDispatchedtoOperator",
		order.PaymentDispatchedToSeller:   "paymentDispatchedtoSeller",
		order.PaymentDeliveredToSeller:    "paymentDeliveredToSeller",
		order.Unknown:                     "Unknown",
		order.Status(99):                  "Unknown",
	}

	for status, expected := range cases {
		assert.Equal(t, expected, status.String())
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("round_trips_every_valid_literal", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Requested, order.Assortment, order.Assorted, order.ReadyToDispatch,
			order.Assigned, order.PickedUp, order.InWarehouse, order.Dispatched,
			order.Delivered, order.Rejected, order.BuyerPaid,
			order.PaymentDispatchedToOperator, order.PaymentDispatchedToSeller,
			order.PaymentDeliveredToSeller,
		} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects_free_text", func(t *testing.T) {
		_, err := order.StatusFromString("shipped")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_wrong_casing", func(t *testing.T) {
		// "BuyerPaid" is not the persisted literal; the store spells it "buyerPaid".
		_, err := order.StatusFromString("BuyerPaid")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.Assigned.Validate())
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(42).Validate())
}

func TestStatus_TransitionTo(t *testing.T) {
	type step struct {
		from order.Status
		to   order.Status
	}

	valid := []step{
		{order.Requested, order.Assortment},
		{order.Requested, order.Rejected},
		{order.Assortment, order.Assorted},
		{order.Assortment, order.ReadyToDispatch},
		{order.Assorted, order.ReadyToDispatch},
		{order.ReadyToDispatch, order.Assigned},
		{order.ReadyToDispatch, order.Dispatched},
		{order.Assigned, order.PickedUp},
		{order.PickedUp, order.InWarehouse},
		{order.InWarehouse, order.Dispatched},
		{order.Dispatched, order.Delivered},
		{order.Delivered, order.BuyerPaid},
		{order.BuyerPaid, order.PaymentDispatchedToOperator},
		{order.PaymentDispatchedToOperator, order.PaymentDispatchedToSeller},
		{order.PaymentDispatchedToSeller, order.PaymentDeliveredToSeller},
	}

	for _, s := range valid {
		got, err := s.from.TransitionTo(s.to)
		require.NoError(t, err, "%s -> %s", s.from, s.to)
		assert.Equal(t, s.to, got)
	}

	invalid := []step{
		// skipping stages
		{order.Requested, order.ReadyToDispatch},
		{order.Assortment, order.Assigned},
		{order.Assigned, order.InWarehouse},
		{order.ReadyToDispatch, order.PickedUp},
		// reverse transitions
		{order.PickedUp, order.Assigned},
		{order.Delivered, order.Dispatched},
		{order.Assortment, order.Requested},
		// terminal states
		{order.Rejected, order.Assortment},
		{order.PaymentDeliveredToSeller, order.BuyerPaid},
		// rejection is only available from Requested
		{order.Assortment, order.Rejected},
		{order.Assigned, order.Rejected},
		// cross-track jumps
		{order.Assigned, order.BuyerPaid},
		{order.BuyerPaid, order.Delivered},
	}

	for _, s := range invalid {
		_, err := s.from.TransitionTo(s.to)
		require.Error(t, err, "%s -> %s should be rejected", s.from, s.to)
	}
}

func TestStatus_TransitionTo_InvalidTarget(t *testing.T) {
	_, err := order.Requested.TransitionTo(order.Unknown)
	require.Error(t, err)

	_, err = order.Requested.TransitionTo(order.Status(77))
	require.Error(t, err)
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Rejected.IsTerminal())
	assert.True(t, order.PaymentDeliveredToSeller.IsTerminal())
	assert.False(t, order.Delivered.IsTerminal())
	assert.False(t, order.Unknown.IsTerminal())
}

func TestStatus_IsPaymentFlow(t *testing.T) {
	assert.True(t, order.BuyerPaid.IsPaymentFlow())
	assert.True(t, order.PaymentDeliveredToSeller.IsPaymentFlow())
	assert.False(t, order.Delivered.IsPaymentFlow())
	assert.False(t, order.Requested.IsPaymentFlow())
}
