// Package catalog contains the sellable catalog entities: product categories,
// products and the payment/delivery method lookup tables.
package catalog

import (
	"errors"

	"foodorder/internal/pkg/errs"
)

// ErrCategoryIsNotConstructed is returned when a Category was not created
// through NewCategory or RestoreCategory.
var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")

// minCategoryNameLen mirrors the registration form rule: category names are
// at least three characters.
const minCategoryNameLen = 3

// Category groups products. Deleting a category cascades to its products at the
// store level.
type Category struct {
	id   uint64
	name string

	isConstructed bool
}

// NewCategory creates a product category.
func NewCategory(name string) (*Category, error) {
	category := &Category{isConstructed: true}
	if err := category.setName(name); err != nil {
		return nil, err
	}
	return category, nil
}

// RestoreCategory reconstructs a persisted category.
func RestoreCategory(id uint64, name string) (*Category, error) {
	category, err := NewCategory(name)
	if err != nil {
		return nil, err
	}
	category.id = id
	return category, nil
}

// Validate ensures the category was created through a constructor.
func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

// AssignID records the identifier generated by the store on first persist.
func (c *Category) AssignID(id uint64) error {
	if c.id != 0 {
		return errs.NewValueIsInvalidError("id")
	}
	c.id = id
	return nil
}

// Rename changes the category name with the same rules as on creation.
func (c *Category) Rename(name string) error {
	return c.setName(name)
}

func (c *Category) ID() uint64   { return c.id }
func (c *Category) Name() string { return c.name }

func (c *Category) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len([]rune(name)) < minCategoryNameLen {
		return errs.NewValueIsInvalidError("name")
	}
	c.name = name
	return nil
}
