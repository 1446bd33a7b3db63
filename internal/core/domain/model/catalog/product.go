package catalog

import (
	"errors"

	"foodorder/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product was not created
// through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a sellable item. Price is stored in integer currency units and is
// the source for order total computation.
type Product struct {
	id          uint64
	name        string
	composition string
	calories    int
	price       int64
	categoryID  uint64

	isConstructed bool
}

// ProductPatch describes a partial product update. Nil fields keep their
// current value.
type ProductPatch struct {
	Name        *string
	Composition *string
	Calories    *int
	Price       *int64
	CategoryID  *uint64
}

// NewProduct creates a product in the given category.
func NewProduct(name, composition string, calories int, price int64, categoryID uint64) (*Product, error) {
	product := &Product{isConstructed: true}

	if err := errors.Join(
		product.setName(name),
		product.setComposition(composition),
		product.setCalories(calories),
		product.setPrice(price),
		product.setCategoryID(categoryID),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// RestoreProduct reconstructs a persisted product.
func RestoreProduct(
	id uint64,
	name, composition string,
	calories int,
	price int64,
	categoryID uint64,
) (*Product, error) {
	product, err := NewProduct(name, composition, calories, price, categoryID)
	if err != nil {
		return nil, err
	}
	product.id = id
	return product, nil
}

// Validate ensures the product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// AssignID records the identifier generated by the store on first persist.
func (p *Product) AssignID(id uint64) error {
	if p.id != 0 {
		return errs.NewValueIsInvalidError("id")
	}
	p.id = id
	return nil
}

// ApplyPatch applies a partial update with the same validation as on creation.
func (p *Product) ApplyPatch(patch ProductPatch) error {
	if patch.Name != nil {
		if err := p.setName(*patch.Name); err != nil {
			return err
		}
	}
	if patch.Composition != nil {
		if err := p.setComposition(*patch.Composition); err != nil {
			return err
		}
	}
	if patch.Calories != nil {
		if err := p.setCalories(*patch.Calories); err != nil {
			return err
		}
	}
	if patch.Price != nil {
		if err := p.setPrice(*patch.Price); err != nil {
			return err
		}
	}
	if patch.CategoryID != nil {
		if err := p.setCategoryID(*patch.CategoryID); err != nil {
			return err
		}
	}
	return nil
}

func (p *Product) ID() uint64          { return p.id }
func (p *Product) Name() string        { return p.name }
func (p *Product) Composition() string { return p.composition }
func (p *Product) Calories() int       { return p.calories }
func (p *Product) Price() int64        { return p.price }
func (p *Product) CategoryID() uint64  { return p.categoryID }

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setComposition(composition string) error {
	if composition == "" {
		return errs.NewValueIsRequiredError("composition")
	}
	p.composition = composition
	return nil
}

func (p *Product) setCalories(calories int) error {
	if calories < 0 {
		return errs.NewValueIsInvalidError("calories")
	}
	p.calories = calories
	return nil
}

func (p *Product) setPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidError("price")
	}
	p.price = price
	return nil
}

func (p *Product) setCategoryID(categoryID uint64) error {
	if categoryID == 0 {
		return errs.NewValueIsRequiredError("category_id")
	}
	p.categoryID = categoryID
	return nil
}
