package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetMethodQueryIsNotConstructed = errors.New(
	"GetMethodQuery must be created via NewGetMethodQuery constructor",
)

// GetMethodQuery retrieves one payment or delivery method.
type GetMethodQuery struct {
	kind     catalog.MethodKind
	methodID uint64

	guard guard.ConstructorGuard
}

// NewGetMethodQuery creates a single-method query for the given kind.
func NewGetMethodQuery(kind catalog.MethodKind, methodID uint64) (GetMethodQuery, error) {
	if err := kind.Validate(); err != nil {
		return GetMethodQuery{}, err
	}
	if methodID == 0 {
		return GetMethodQuery{}, errs.NewValueIsRequiredError("methodID")
	}

	return GetMethodQuery{kind: kind, methodID: methodID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMethodQuery) Validate() error {
	return q.guard.Validate(ErrGetMethodQueryIsNotConstructed)
}

// GetMethodQueryHandler reads a single lookup method.
type GetMethodQueryHandler struct {
	db *gorm.DB
}

// NewGetMethodQueryHandler creates a handler for single-method queries.
func NewGetMethodQueryHandler(db *gorm.DB) GetMethodQueryHandler {
	return GetMethodQueryHandler{db: db}
}

// Handle executes the query.
func (h GetMethodQueryHandler) Handle(ctx context.Context, query GetMethodQuery) (MethodResponse, error) {
	if err := query.Validate(); err != nil {
		return MethodResponse{}, err
	}

	table, err := methodTable(query.kind)
	if err != nil {
		return MethodResponse{}, err
	}

	var method MethodResponse

	row := h.db.WithContext(ctx).Raw(
		fmt.Sprintf("SELECT id, name FROM %s WHERE id = ?", table), query.methodID,
	).Row()

	if err = row.Scan(&method.ID, &method.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return MethodResponse{}, errs.NewObjectNotFoundError("methodID", query.methodID)
		}
		return MethodResponse{}, err
	}

	return method, nil
}
