// Package ports defines the persistence contracts between the application core
// and the storage adapters.
package ports

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/address"
	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user with its role assignments and fills in the
	// store-generated identifier.
	Add(ctx context.Context, aggregate *account.User) error

	// GetByID retrieves a user with roles by identifier.
	GetByID(ctx context.Context, id uint64) (*account.User, error)

	// GetByEmail retrieves a user with roles by unique email.
	// Returns ObjectNotFoundError when no user carries the email.
	GetByEmail(ctx context.Context, email string) (*account.User, error)

	// Count returns the number of registered users.
	Count(ctx context.Context) (int64, error)
}

// TokenRepository defines the persistence contract for issued access tokens.
type TokenRepository interface {
	// Add persists a newly issued token.
	Add(ctx context.Context, aggregate *account.AccessToken) error

	// Get retrieves a token by its identifier.
	// Returns ObjectNotFoundError for revoked or never-issued tokens.
	Get(ctx context.Context, id uuid.UUID) (*account.AccessToken, error)

	// DeleteByUser revokes every token issued to the given user.
	DeleteByUser(ctx context.Context, userID uint64) error

	// DeleteExpired removes tokens that expired before the given moment and
	// reports how many rows were purged.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// AddressRepository defines the persistence contract for address entities.
type AddressRepository interface {
	// Add persists a new address and fills in the store-generated identifier.
	Add(ctx context.Context, aggregate *address.Address) error

	// Update persists changes to an existing address.
	Update(ctx context.Context, aggregate *address.Address) error

	// Get retrieves an address by identifier.
	Get(ctx context.Context, id uint64) (*address.Address, error)

	// Delete removes an address. Orders referencing it cascade at the store level.
	Delete(ctx context.Context, id uint64) error
}

// CategoryRepository defines the persistence contract for product categories.
type CategoryRepository interface {
	Add(ctx context.Context, aggregate *catalog.Category) error
	Update(ctx context.Context, aggregate *catalog.Category) error
	Get(ctx context.Context, id uint64) (*catalog.Category, error)

	// Delete removes a category. Dependent products cascade at the store level.
	Delete(ctx context.Context, id uint64) error
}

// ProductRepository defines the persistence contract for products.
type ProductRepository interface {
	Add(ctx context.Context, aggregate *catalog.Product) error
	Update(ctx context.Context, aggregate *catalog.Product) error
	Get(ctx context.Context, id uint64) (*catalog.Product, error)
	Delete(ctx context.Context, id uint64) error
}

// MethodRepository defines the persistence contract for the payment and
// delivery method lookup tables. The kind selects the backing table.
type MethodRepository interface {
	Add(ctx context.Context, aggregate *catalog.Method) error
	Update(ctx context.Context, aggregate *catalog.Method) error
	Get(ctx context.Context, kind catalog.MethodKind, id uint64) (*catalog.Method, error)
	Delete(ctx context.Context, kind catalog.MethodKind, id uint64) error
}

// OrderRepository defines the persistence contract for order aggregates.
// Line items are persisted and replaced together with the order row.
type OrderRepository interface {
	// Add persists a new order with its full line item set atomically and
	// fills in the store-generated identifier.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the order's scalar fields and total, and replaces the
	// full line item set when the aggregate's items were touched.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its line items.
	Get(ctx context.Context, id uint64) (*order.Order, error)

	// Delete detaches the order's line items and removes the order record.
	Delete(ctx context.Context, id uint64) error
}
