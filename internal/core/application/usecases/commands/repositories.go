// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// Each use case file holds the command, its validation and its handler; all
// handlers follow the same shape: validate, begin transaction, mutate, commit.
package commands

import (
	"context"

	"foodorder/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Handlers depend on the narrowest interface that covers the repositories they
// touch, so tests only have to mock what a use case actually uses.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// TokenRepoFactory provides access to the token repository within a transaction.
	TokenRepoFactory interface {
		TokenRepository() ports.TokenRepository
	}

	// AddressRepoFactory provides access to the address repository within a transaction.
	AddressRepoFactory interface {
		AddressRepository() ports.AddressRepository
	}

	// CategoryRepoFactory provides access to the category repository within a transaction.
	CategoryRepoFactory interface {
		CategoryRepository() ports.CategoryRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// MethodRepoFactory provides access to the method repository within a transaction.
	MethodRepoFactory interface {
		MethodRepository() ports.MethodRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// AuthUoW manages transactions for registration, login and logout.
	AuthUoW interface {
		TxManager
		UserRepoFactory
		TokenRepoFactory
	}

	// AuthUoWFactory creates auth unit of work instances.
	AuthUoWFactory interface {
		Create() AuthUoW
	}

	// AddressUoW manages transactions for address-only operations.
	AddressUoW interface {
		TxManager
		AddressRepoFactory
	}

	// AddressUoWFactory creates address unit of work instances.
	AddressUoWFactory interface {
		Create() AddressUoW
	}

	// CatalogUoW manages transactions for catalog writes. Product operations
	// need the category repository for referential checks.
	CatalogUoW interface {
		TxManager
		CategoryRepoFactory
		ProductRepoFactory
		MethodRepoFactory
	}

	// CatalogUoWFactory creates catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// OrderUoW manages transactions for order operations. Order commands
	// consult the address, product and method repositories for ownership and
	// referential checks within the same transaction.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		AddressRepoFactory
		ProductRepoFactory
		MethodRepoFactory
	}

	// OrderUoWFactory creates order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
