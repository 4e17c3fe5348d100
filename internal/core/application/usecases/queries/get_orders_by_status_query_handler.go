package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// GetOrdersByStatusQueryHandler builds the status-filtered order list.
// Metrics are derived on every read; they are views, never persisted.
type GetOrdersByStatusQueryHandler struct {
	ordersRepo ports.OrderRepository
}

// NewGetOrdersByStatusQueryHandler creates a handler for status-filtered
// order queries.
func NewGetOrdersByStatusQueryHandler(ordersRepo ports.OrderRepository) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{ordersRepo: ordersRepo}
}

// Handle executes the query, returning matching orders with metrics attached.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.ordersRepo.GetAllByStatus(ctx, query.SellerID(), query.Status())
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(orders))
	for _, aggregate := range orders {
		response, err := toOrderResponse(aggregate)
		if err != nil {
			return nil, err
		}
		responses = append(responses, response)
	}

	return responses, nil
}

func toOrderResponse(aggregate *order.Order) (OrderResponse, error) {
	metrics, err := services.NewMetricsCalculator().Calculate(aggregate)
	if err != nil {
		return OrderResponse{}, err
	}

	details := aggregate.Details()
	specs := aggregate.Specs()

	return OrderResponse{
		ID:            aggregate.ID().String(),
		SellerID:      aggregate.SellerID(),
		OperatorID:    aggregate.OperatorID(),
		JREID:         aggregate.JREID(),
		ProductName:   details.ProductName,
		Category:      details.Category,
		Specification: details.Specification,
		NetWt:         specs.NetWt,
		GrossWt:       specs.GrossWt,
		OrderWeight:   aggregate.OrderWeight(),
		OrderPiece:    aggregate.OrderPiece(),
		Status:        aggregate.Status().String(),
		FineWeight:    metrics.FineWeight,
		TotalMC:       metrics.TotalMC,
		UpdatedAt:     aggregate.UpdatedAt(),
	}, nil
}
