// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence.
package commands

import (
	"context"

	"storefront/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Handlers depend on the narrowest interface that covers the repositories they
// touch, so tests only have to fake what a handler actually uses.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CartRepoFactory provides access to the cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// InventoryRepoFactory provides access to the inventory ledger within a transaction.
	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	// OutboxRepoFactory provides access to the event outbox within a transaction.
	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// CatalogFactory provides catalog reads through the current transaction.
	CatalogFactory interface {
		ProductCatalog() ports.ProductCatalog
	}

	// OrderNumbersFactory provides the order number generator within a transaction.
	OrderNumbersFactory interface {
		OrderNumbers() ports.OrderNumberGenerator
	}

	// CartUoW manages transactions for cart mutation commands.
	CartUoW interface {
		TxManager
		CartRepoFactory
		CatalogFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// OrderUoW manages transactions for order lifecycle commands: status
	// transitions need the order itself, the inventory ledger for
	// compensation, and the outbox for events.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		InventoryRepoFactory
		OutboxRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CheckoutUoW spans every aggregate checkout touches: cart, catalog,
	// inventory, order, order numbers, and the outbox, all in one
	// transaction so the whole operation is atomic.
	CheckoutUoW interface {
		TxManager
		CartRepoFactory
		OrderRepoFactory
		InventoryRepoFactory
		OutboxRepoFactory
		CatalogFactory
		OrderNumbersFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}
)
