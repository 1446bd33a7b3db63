package queries

import (
	"context"
	"errors"

	"foodorder/internal/core/application/access"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetAddressesQueryIsNotConstructed = errors.New(
	"GetAddressesQuery must be created via NewGetAddressesQuery constructor",
)

const addressSelect = `
	SELECT
		a.id,
		a.city,
		a.street,
		a.house_number,
		a.apartment_number,
		a.entrance,
		a.floor,
		a.intercom,
		a.gate,
		a.comment,
		a.user_id,
		u.id,
		u.name,
		u.surname,
		u.patronymic,
		u.email,
		u.phone,
		u.date_of_birth
	FROM addresses a
	JOIN users u ON u.id = a.user_id
`

// GetAddressesQuery lists delivery addresses. Admins see every address,
// Clients only their own.
type GetAddressesQuery struct {
	actor access.Caller

	guard guard.ConstructorGuard
}

// NewGetAddressesQuery creates an address listing query for the given caller.
func NewGetAddressesQuery(actor access.Caller) (GetAddressesQuery, error) {
	if actor.IsAnonymous() {
		return GetAddressesQuery{}, errs.NewValueIsRequiredError("actor")
	}

	return GetAddressesQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAddressesQuery) Validate() error {
	return q.guard.Validate(ErrGetAddressesQueryIsNotConstructed)
}

// GetAddressesQueryHandler reads addresses with their owners' public profiles.
type GetAddressesQueryHandler struct {
	db *gorm.DB
}

// NewGetAddressesQueryHandler creates a handler for address listing queries.
func NewGetAddressesQueryHandler(db *gorm.DB) GetAddressesQueryHandler {
	return GetAddressesQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by address ID.
func (h GetAddressesQueryHandler) Handle(
	ctx context.Context,
	query GetAddressesQuery,
) ([]AddressResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := addressSelect
	args := make([]any, 0, 1)
	if !query.actor.IsAdmin() {
		sql += " WHERE a.user_id = ?"
		args = append(args, query.actor.ID)
	}
	sql += " ORDER BY a.id"

	addresses := make([]AddressResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		addr, scanErr := scanAddressRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		addresses = append(addresses, addr)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return addresses, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAddressRow(row rowScanner) (AddressResponse, error) {
	var addr AddressResponse
	err := row.Scan(
		&addr.ID,
		&addr.City,
		&addr.Street,
		&addr.HouseNumber,
		&addr.ApartmentNumber,
		&addr.Entrance,
		&addr.Floor,
		&addr.Intercom,
		&addr.Gate,
		&addr.Comment,
		&addr.UserID,
		&addr.User.ID,
		&addr.User.Name,
		&addr.User.Surname,
		&addr.User.Patronymic,
		&addr.User.Email,
		&addr.User.Phone,
		&addr.User.DateOfBirth,
	)
	if err != nil {
		return AddressResponse{}, err
	}

	return addr, nil
}
