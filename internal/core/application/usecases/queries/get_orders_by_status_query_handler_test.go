package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetOrdersByStatusQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	query, err := queries.NewGetOrdersByStatusQuery("seller-1", order.Requested)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		"seller-1",
		"OP1",
		order.Details{ProductName: "Gold Ring", Category: "Rings"},
		order.Specs{NetWt: 10, Purity: 91.6, Wastage: 2, NetGramMc: 500},
		[]order.Variant{{Size: "12", Quantity: 2}},
	)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("GetAllByStatus", mock.Anything, "seller-1", order.Requested).
		Return([]*order.Order{o}, nil).Once()

	h := queries.NewGetOrdersByStatusQueryHandler(repo)
	responses, err := h.Handle(ctx, query)
	require.NoError(t, err)
	require.Len(t, responses, 1)

	response := responses[0]
	assert.Equal(t, o.ID().String(), response.ID)
	assert.Equal(t, "Gold Ring", response.ProductName)
	assert.Equal(t, "Requested", response.Status)
	assert.Equal(t, 9.36, response.FineWeight)
	assert.Equal(t, 5000.0, response.TotalMC)
	repo.AssertExpectations(t)
}

func TestNewGetOrdersByStatusQuery_Invalid(t *testing.T) {
	_, err := queries.NewGetOrdersByStatusQuery("", order.Requested)
	assert.ErrorIs(t, err, queries.ErrSellerIDIsRequired)

	_, err = queries.NewGetOrdersByStatusQuery("seller-1", order.Status(99))
	assert.Error(t, err)
}
