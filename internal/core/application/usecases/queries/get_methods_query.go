package queries

import (
	"context"
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetMethodsQueryIsNotConstructed = errors.New(
	"GetMethodsQuery must be created via NewGetMethodsQuery constructor",
)

func methodTable(kind catalog.MethodKind) (string, error) {
	switch kind {
	case catalog.MethodKindPayment:
		return "payment_methods", nil
	case catalog.MethodKindDelivery:
		return "delivery_methods", nil
	default:
		return "", errs.NewValueIsInvalidError("kind")
	}
}

// GetMethodsQuery lists payment or delivery methods, depending on kind.
type GetMethodsQuery struct {
	kind catalog.MethodKind

	guard guard.ConstructorGuard
}

// NewGetMethodsQuery creates a method listing query for the given kind.
func NewGetMethodsQuery(kind catalog.MethodKind) (GetMethodsQuery, error) {
	if err := kind.Validate(); err != nil {
		return GetMethodsQuery{}, err
	}

	return GetMethodsQuery{kind: kind, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMethodsQuery) Validate() error {
	return q.guard.Validate(ErrGetMethodsQueryIsNotConstructed)
}

// GetMethodsQueryHandler reads the method lookup tables.
type GetMethodsQueryHandler struct {
	db *gorm.DB
}

// NewGetMethodsQueryHandler creates a handler for method listing queries.
func NewGetMethodsQueryHandler(db *gorm.DB) GetMethodsQueryHandler {
	return GetMethodsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by method ID.
func (h GetMethodsQueryHandler) Handle(ctx context.Context, query GetMethodsQuery) ([]MethodResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	table, err := methodTable(query.kind)
	if err != nil {
		return nil, err
	}

	methods := make([]MethodResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(
		fmt.Sprintf("SELECT id, name FROM %s ORDER BY id", table),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var method MethodResponse
		if err = rows.Scan(&method.ID, &method.Name); err != nil {
			return nil, err
		}
		methods = append(methods, method)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return methods, nil
}
