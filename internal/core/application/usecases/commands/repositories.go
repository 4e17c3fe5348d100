// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/jre"
	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OtpRepoFactory provides access to the OTP repository within a transaction.
	OtpRepoFactory interface {
		OtpRepository() ports.OtpRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions across the order and OTP aggregates.
	// Used by the dispatch handover commands, whose atomicity contract spans
	// the credential and every order it authorizes.
	UoW interface {
		TxManager
		OrderRepoFactory
		OtpRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)

// ContactResolver resolves a runner id to cached contact details. The dispatch
// OTP handler uses it to find the mobile the code is delivered to.
type ContactResolver interface {
	Resolve(ctx context.Context, jreID string) (jre.Contact, error)
}
