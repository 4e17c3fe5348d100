// Package services contains stateless domain services that operate across
// order aggregates: per-order valuation metrics, dispatch group summaries,
// and the grouping of assigned orders by operator and runner.
package services
