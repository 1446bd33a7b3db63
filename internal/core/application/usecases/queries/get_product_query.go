package queries

import (
	"context"
	"database/sql"
	"errors"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetProductQueryIsNotConstructed = errors.New(
	"GetProductQuery must be created via NewGetProductQuery constructor",
)

// GetProductQuery retrieves one product with its category.
type GetProductQuery struct {
	productID uint64

	guard guard.ConstructorGuard
}

// NewGetProductQuery creates a single-product query.
func NewGetProductQuery(productID uint64) (GetProductQuery, error) {
	if productID == 0 {
		return GetProductQuery{}, errs.NewValueIsRequiredError("productID")
	}

	return GetProductQuery{productID: productID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

// GetProductQueryHandler reads a single product.
type GetProductQueryHandler struct {
	db *gorm.DB
}

// NewGetProductQueryHandler creates a handler for single-product queries.
func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle executes the query.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(productSelect+" WHERE p.id = ?", query.productID).Row()

	product, err := scanProductRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ProductResponse{}, errs.NewObjectNotFoundError("productID", query.productID)
		}
		return ProductResponse{}, err
	}

	return product, nil
}
