// Package catalogrepo persists the product catalog: categories, products and
// the payment/delivery method lookup tables.
package catalogrepo

import (
	"foodorder/internal/core/domain/model/catalog"
)

// CategoryDTO represents the database structure for product categories.
type CategoryDTO struct {
	ID   uint64 `gorm:"primaryKey"`
	Name string
}

// TableName specifies the database table name for categories.
func (CategoryDTO) TableName() string {
	return "product_categories"
}

// ProductDTO represents the database structure for products. Deleting a
// category cascades to its products.
type ProductDTO struct {
	ID                uint64 `gorm:"primaryKey"`
	Name              string
	Composition       string
	Calories          int
	Price             int64
	ProductCategoryID uint64 `gorm:"index"`

	Category *CategoryDTO `gorm:"foreignKey:ProductCategoryID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

// PaymentMethodDTO represents a row of the payment method lookup table.
type PaymentMethodDTO struct {
	ID   uint64 `gorm:"primaryKey"`
	Name string
}

// TableName specifies the database table name for payment methods.
func (PaymentMethodDTO) TableName() string {
	return "payment_methods"
}

// DeliveryMethodDTO represents a row of the delivery method lookup table.
type DeliveryMethodDTO struct {
	ID   uint64 `gorm:"primaryKey"`
	Name string
}

// TableName specifies the database table name for delivery methods.
func (DeliveryMethodDTO) TableName() string {
	return "delivery_methods"
}

func categoryFromDomain(category *catalog.Category) CategoryDTO {
	return CategoryDTO{ID: category.ID(), Name: category.Name()}
}

func categoryToDomain(dto CategoryDTO) (*catalog.Category, error) {
	return catalog.RestoreCategory(dto.ID, dto.Name)
}

func productFromDomain(product *catalog.Product) ProductDTO {
	return ProductDTO{
		ID:                product.ID(),
		Name:              product.Name(),
		Composition:       product.Composition(),
		Calories:          product.Calories(),
		Price:             product.Price(),
		ProductCategoryID: product.CategoryID(),
	}
}

func productToDomain(dto ProductDTO) (*catalog.Product, error) {
	return catalog.RestoreProduct(
		dto.ID,
		dto.Name,
		dto.Composition,
		dto.Calories,
		dto.Price,
		dto.ProductCategoryID,
	)
}
