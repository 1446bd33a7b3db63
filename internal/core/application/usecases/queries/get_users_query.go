package queries

import (
	"context"
	"errors"

	"foodorder/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetUsersQueryIsNotConstructed = errors.New(
	"GetUsersQuery must be created via NewGetUsersQuery constructor",
)

// GetUsersQuery retrieves every registered user with role names.
type GetUsersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUsersQuery creates a query for the full user listing.
func NewGetUsersQuery() GetUsersQuery {
	return GetUsersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetUsersQueryIsNotConstructed)
}

// GetUsersQueryHandler reads all users and their roles from the database.
type GetUsersQueryHandler struct {
	db *gorm.DB
}

// NewGetUsersQueryHandler creates a handler for the user listing query.
func NewGetUsersQueryHandler(db *gorm.DB) GetUsersQueryHandler {
	return GetUsersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by user ID.
func (h GetUsersQueryHandler) Handle(ctx context.Context, query GetUsersQuery) ([]UserResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	users := make([]UserResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			surname,
			patronymic,
			email,
			phone,
			date_of_birth
		FROM users
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var user UserResponse
		err = rows.Scan(
			&user.ID,
			&user.Name,
			&user.Surname,
			&user.Patronymic,
			&user.Email,
			&user.Phone,
			&user.DateOfBirth,
		)
		if err != nil {
			return nil, err
		}
		user.Roles = make([]string, 0)
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	roleRows, err := h.db.WithContext(ctx).Raw(`
		SELECT ur.user_id, r.name
		FROM user_roles ur
		JOIN roles r ON r.id = ur.role_id
		ORDER BY ur.user_id, r.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer roleRows.Close()

	rolesByUser := make(map[uint64][]string)
	for roleRows.Next() {
		var userID uint64
		var roleName string
		if err = roleRows.Scan(&userID, &roleName); err != nil {
			return nil, err
		}
		rolesByUser[userID] = append(rolesByUser[userID], roleName)
	}

	if err = roleRows.Err(); err != nil {
		return nil, err
	}

	for i := range users {
		if roles, ok := rolesByUser[users[i].ID]; ok {
			users[i].Roles = roles
		}
	}

	return users, nil
}
