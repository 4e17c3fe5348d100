package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// GetAssignedOrderGroupsQueryHandler partitions the seller's assigned orders
// into pickup groups and decorates each group with accumulated metrics and
// the runner's resolved contact.
type GetAssignedOrderGroupsQueryHandler struct {
	ordersRepo ports.OrderRepository
	resolver   *ContactResolver
}

// NewGetAssignedOrderGroupsQueryHandler creates a handler for the pickup
// group view.
func NewGetAssignedOrderGroupsQueryHandler(
	ordersRepo ports.OrderRepository,
	resolver *ContactResolver,
) GetAssignedOrderGroupsQueryHandler {
	return GetAssignedOrderGroupsQueryHandler{
		ordersRepo: ordersRepo,
		resolver:   resolver,
	}
}

// Handle executes the query. Groups keep the first-seen order of their keys;
// every assigned order appears in exactly one group.
func (h GetAssignedOrderGroupsQueryHandler) Handle(
	ctx context.Context,
	query GetAssignedOrderGroupsQuery,
) ([]GroupResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.ordersRepo.GetAllAssigned(ctx, query.SellerID())
	if err != nil {
		return nil, err
	}

	groups, err := services.NewOrderGrouper().Partition(orders)
	if err != nil {
		return nil, err
	}

	responses := make([]GroupResponse, 0, len(groups))
	for _, group := range groups {
		contact, err := h.resolver.Resolve(ctx, group.Orders[0].JREID())
		if err != nil {
			return nil, err
		}

		response := GroupResponse{
			GroupKey:          group.Key,
			OperatorID:        group.OperatorID,
			JREID:             group.JREID,
			JREPrimaryMobile:  contact.Mobile,
			JREOperatorNumber: contact.OperatorNumber,
			Orders:            make([]OrderResponse, 0, len(group.Orders)),
		}

		for _, aggregate := range group.Orders {
			orderResponse, err := toOrderResponse(aggregate)
			if err != nil {
				return nil, err
			}

			response.TotalItems += aggregate.Quantity()
			response.TotalFineWeight += orderResponse.FineWeight
			response.TotalMC += orderResponse.TotalMC
			response.Orders = append(response.Orders, orderResponse)
		}

		response.TotalFineWeight = kernel.RoundWeight(response.TotalFineWeight)
		response.TotalMC = kernel.RoundMoney(response.TotalMC)
		responses = append(responses, response)
	}

	return responses, nil
}
