package queries

import (
	"context"
	"errors"

	"foodorder/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

const productSelect = `
	SELECT
		p.id,
		p.name,
		p.composition,
		p.calories,
		p.price,
		p.product_category_id,
		c.id,
		c.name
	FROM products p
	JOIN product_categories c ON c.id = p.product_category_id
`

// GetProductsQuery lists all products with their categories.
type GetProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a product listing query.
func NewGetProductsQuery() GetProductsQuery {
	return GetProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// GetProductsQueryHandler reads the product catalog.
type GetProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsQueryHandler creates a handler for product listing queries.
func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by product ID.
func (h GetProductsQueryHandler) Handle(
	ctx context.Context,
	query GetProductsQuery,
) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]ProductResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(productSelect + " ORDER BY p.id").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		product, scanErr := scanProductRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func scanProductRow(row rowScanner) (ProductResponse, error) {
	var product ProductResponse
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Composition,
		&product.Calories,
		&product.Price,
		&product.CategoryID,
		&product.Category.ID,
		&product.Category.Name,
	)
	if err != nil {
		return ProductResponse{}, err
	}

	return product, nil
}
