package queries

import (
	"context"
	"database/sql"
	"errors"

	"foodorder/internal/core/application/access"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetAddressQueryIsNotConstructed = errors.New(
	"GetAddressQuery must be created via NewGetAddressQuery constructor",
)

// GetAddressQuery retrieves one address. Clients may only read their own.
type GetAddressQuery struct {
	actor     access.Caller
	addressID uint64

	guard guard.ConstructorGuard
}

// NewGetAddressQuery creates a single-address query for the given caller.
func NewGetAddressQuery(actor access.Caller, addressID uint64) (GetAddressQuery, error) {
	if actor.IsAnonymous() {
		return GetAddressQuery{}, errs.NewValueIsRequiredError("actor")
	}
	if addressID == 0 {
		return GetAddressQuery{}, errs.NewValueIsRequiredError("addressID")
	}

	return GetAddressQuery{actor: actor, addressID: addressID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAddressQuery) Validate() error {
	return q.guard.Validate(ErrGetAddressQueryIsNotConstructed)
}

// GetAddressQueryHandler reads one address with its owner's public profile.
type GetAddressQueryHandler struct {
	db *gorm.DB
}

// NewGetAddressQueryHandler creates a handler for single-address queries.
func NewGetAddressQueryHandler(db *gorm.DB) GetAddressQueryHandler {
	return GetAddressQueryHandler{db: db}
}

// Handle executes the query. A Client asking for someone else's address gets
// an authorization failure, not a not-found.
func (h GetAddressQueryHandler) Handle(ctx context.Context, query GetAddressQuery) (AddressResponse, error) {
	if err := query.Validate(); err != nil {
		return AddressResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(addressSelect+" WHERE a.id = ?", query.addressID).Row()

	addr, err := scanAddressRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AddressResponse{}, errs.NewObjectNotFoundError("addressID", query.addressID)
		}
		return AddressResponse{}, err
	}

	if !query.actor.IsAdmin() && addr.UserID != query.actor.ID {
		return AddressResponse{}, errs.NewForbiddenError()
	}

	return addr, nil
}
