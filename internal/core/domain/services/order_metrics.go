package services

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderMetrics holds the derived valuation figures for a single order.
type OrderMetrics struct {
	// TotalWastage is the combined deduction percentage: purity plus wastage
	// plus the specification making-charge percentage.
	TotalWastage float64
	// FineWeight is the pure-metal equivalent in grams, rounded to 3 decimals.
	FineWeight float64
	// TotalMC is the total making charge in currency units, rounded to
	// 2 decimals.
	TotalMC float64
}

// DispatchSummary aggregates a set of orders into the figures shown to the
// runner and embedded in the handover credential message.
type DispatchSummary struct {
	// TotalPackets is the number of orders in the set.
	TotalPackets int
	// TotalItems is the summed piece quantity across variants.
	TotalItems int
	// TotalGrossWeight is the summed gross weight in grams, rounded to
	// 3 decimals. Orders without a recorded gross weight contribute their
	// net weight instead.
	TotalGrossWeight float64
}

// MetricsCalculator is a domain service that derives valuation metrics from
// an order's recorded specifications.
//
// Business rules:
//   - totalWastage = purity + wastage + specification MC, all percentages
//   - fineWeight = netWt * totalWastage / 100, grams to 3 decimals
//   - totalMC = setMc + netGramMc*netWt + specificationGramRate*specificationWt,
//     currency to 2 decimals
//
// Absent figures are treated as zero, so an order with no specifications
// yields all-zero metrics rather than an error.
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new MetricsCalculator instance.
func NewMetricsCalculator() MetricsCalculator {
	return MetricsCalculator{}
}

// Calculate derives the valuation metrics for a single order.
func (m MetricsCalculator) Calculate(o *order.Order) (OrderMetrics, error) {
	if err := o.Validate(); err != nil {
		return OrderMetrics{}, err
	}

	specs := o.Specs()
	totalWastage := specs.Purity + specs.Wastage + specs.SpecificationMC

	return OrderMetrics{
		TotalWastage: totalWastage,
		FineWeight:   kernel.RoundWeight(specs.NetWt * totalWastage / 100),
		TotalMC: kernel.RoundMoney(specs.SetMc +
			specs.NetGramMc*specs.NetWt +
			specs.SpecificationGramRate*specs.SpecificationWt),
	}, nil
}

// Summarize aggregates a set of orders into a dispatch summary. An empty set
// yields a zero summary.
func (m MetricsCalculator) Summarize(orders []*order.Order) (DispatchSummary, error) {
	summary := DispatchSummary{TotalPackets: len(orders)}

	var grossWeight float64
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return DispatchSummary{}, err
		}

		summary.TotalItems += o.Quantity()

		specs := o.Specs()
		if specs.GrossWt > 0 {
			grossWeight += specs.GrossWt
		} else {
			grossWeight += specs.NetWt
		}
	}
	summary.TotalGrossWeight = kernel.RoundWeight(grossWeight)

	return summary, nil
}
