package services

import (
	"fulfillment/internal/core/domain/model/jre"
	"fulfillment/internal/core/domain/model/order"
)

// UnknownOperator is the label substituted for orders that carry no
// operator id.
const UnknownOperator = "Unknown Operator"

// Group is a pickup group: all assigned orders routed through the same
// operator to the same runner, handed over together against one credential.
type Group struct {
	// Key is "<operatorId>_<jreId>", with sentinel labels substituted for
	// missing ids.
	Key        string
	OperatorID string
	JREID      string
	Orders     []*order.Order
}

// GroupKey builds the pickup group key for an operator and runner pair,
// substituting sentinel labels for missing ids.
func GroupKey(operatorID, jreID string) (key, op, runner string) {
	op = operatorID
	if op == "" {
		op = UnknownOperator
	}
	runner = jreID
	if runner == "" {
		runner = jre.NoJRE
	}
	return op + "_" + runner, op, runner
}

// OrderGrouper is a domain service that partitions assigned orders into
// pickup groups.
//
// Business rules:
//   - Every order lands in exactly one group, keyed by operator and runner.
//   - Groups and the orders inside them keep the input order, so the first
//     order seen for a pair determines the group's position.
//   - Missing ids group under the sentinel labels rather than being dropped.
type OrderGrouper struct{}

// NewOrderGrouper creates a new OrderGrouper instance.
func NewOrderGrouper() OrderGrouper {
	return OrderGrouper{}
}

// Partition splits orders into pickup groups.
func (g OrderGrouper) Partition(orders []*order.Order) ([]Group, error) {
	var (
		groups  []Group
		indexOf = make(map[string]int)
	)

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}

		key, op, runner := GroupKey(o.OperatorID(), o.JREID())
		i, ok := indexOf[key]
		if !ok {
			i = len(groups)
			indexOf[key] = i
			groups = append(groups, Group{Key: key, OperatorID: op, JREID: runner})
		}
		groups[i].Orders = append(groups[i].Orders, o)
	}

	return groups, nil
}
