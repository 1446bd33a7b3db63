package queries

import (
	"context"
	"database/sql"
	"errors"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetUserQueryIsNotConstructed = errors.New(
	"GetUserQuery must be created via NewGetUserQuery constructor",
)

// GetUserQuery retrieves a single user's profile with role names.
type GetUserQuery struct {
	userID uint64

	guard guard.ConstructorGuard
}

// NewGetUserQuery creates a profile query for the given user.
func NewGetUserQuery(userID uint64) (GetUserQuery, error) {
	if userID == 0 {
		return GetUserQuery{}, errs.NewValueIsRequiredError("userID")
	}

	return GetUserQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

// GetUserQueryHandler reads a user profile straight from the database.
type GetUserQueryHandler struct {
	db *gorm.DB
}

// NewGetUserQueryHandler creates a handler for profile queries.
func NewGetUserQueryHandler(db *gorm.DB) GetUserQueryHandler {
	return GetUserQueryHandler{db: db}
}

// Handle executes the query and returns the profile with its role names.
func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (UserResponse, error) {
	if err := query.Validate(); err != nil {
		return UserResponse{}, err
	}

	var user UserResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			surname,
			patronymic,
			email,
			phone,
			date_of_birth
		FROM users
		WHERE id = ?
	`, query.userID).Row()

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Surname,
		&user.Patronymic,
		&user.Email,
		&user.Phone,
		&user.DateOfBirth,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return UserResponse{}, errs.NewObjectNotFoundError("userID", query.userID)
		}
		return UserResponse{}, err
	}

	roles, err := userRoles(ctx, h.db, query.userID)
	if err != nil {
		return UserResponse{}, err
	}
	user.Roles = roles

	return user, nil
}

func userRoles(ctx context.Context, db *gorm.DB, userID uint64) ([]string, error) {
	roles := make([]string, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT r.name
		FROM roles r
		JOIN user_roles ur ON ur.role_id = r.id
		WHERE ur.user_id = ?
		ORDER BY r.id
	`, userID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, err
		}
		roles = append(roles, name)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return roles, nil
}
