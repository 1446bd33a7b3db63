package queries

import (
	"context"
	"database/sql"
	"errors"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetCategoryQueryIsNotConstructed = errors.New(
	"GetCategoryQuery must be created via NewGetCategoryQuery constructor",
)

// GetCategoryQuery retrieves one product category.
type GetCategoryQuery struct {
	categoryID uint64

	guard guard.ConstructorGuard
}

// NewGetCategoryQuery creates a single-category query.
func NewGetCategoryQuery(categoryID uint64) (GetCategoryQuery, error) {
	if categoryID == 0 {
		return GetCategoryQuery{}, errs.NewValueIsRequiredError("categoryID")
	}

	return GetCategoryQuery{categoryID: categoryID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCategoryQuery) Validate() error {
	return q.guard.Validate(ErrGetCategoryQueryIsNotConstructed)
}

// GetCategoryQueryHandler reads a single category.
type GetCategoryQueryHandler struct {
	db *gorm.DB
}

// NewGetCategoryQueryHandler creates a handler for single-category queries.
func NewGetCategoryQueryHandler(db *gorm.DB) GetCategoryQueryHandler {
	return GetCategoryQueryHandler{db: db}
}

// Handle executes the query.
func (h GetCategoryQueryHandler) Handle(ctx context.Context, query GetCategoryQuery) (CategoryResponse, error) {
	if err := query.Validate(); err != nil {
		return CategoryResponse{}, err
	}

	var category CategoryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, name
		FROM product_categories
		WHERE id = ?
	`, query.categoryID).Row()

	if err := row.Scan(&category.ID, &category.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CategoryResponse{}, errs.NewObjectNotFoundError("categoryID", query.categoryID)
		}
		return CategoryResponse{}, err
	}

	return category, nil
}
