// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, then notification — notifications always run after the commit.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler names only the repositories it actually touches, which keeps
// the mocks in tests small and the transaction scope visible at a glance.
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

	// TariffRepoFactory provides access to the tariff repository within a transaction.
	TariffRepoFactory interface {
		TariffRepository() ports.TariffRepository
	}

	// IdentityResolverFactory provides access to the identity resolver within a transaction.
	IdentityResolverFactory interface {
		IdentityResolver() ports.IdentityResolver
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by advance and complete, which touch nothing but the order record.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PricingUoW manages transactions for order creation, which reads the
	// current tariff and writes the new order in one transaction.
	PricingUoW interface {
		TxManager
		OrderRepoFactory
		TariffRepoFactory
	}

	// PricingUoWFactory creates new pricing unit of work instances.
	PricingUoWFactory interface {
		Create() PricingUoW
	}

	// ClaimUoW manages transactions for the claim operation, which resolves
	// the acting courier's identity and mutates the order record under its
	// exclusive lock.
	ClaimUoW interface {
		TxManager
		OrderRepoFactory
		IdentityResolverFactory
	}

	// ClaimUoWFactory creates new claim unit of work instances.
	ClaimUoWFactory interface {
		Create() ClaimUoW
	}
)
