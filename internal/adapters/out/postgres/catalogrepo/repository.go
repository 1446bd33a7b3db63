package catalogrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCategoryRepository implements CategoryRepository using GORM.
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GORM category repository.
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// Add saves a new category and fills in the store-generated identifier.
func (r *GormCategoryRepository) Add(ctx context.Context, aggregate *catalog.Category) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := categoryFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return aggregate.AssignID(dto.ID)
}

// Update saves an existing category.
func (r *GormCategoryRepository) Update(ctx context.Context, aggregate *catalog.Category) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := categoryFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CategoryDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("category", dto.ID)
	}

	return nil
}

// Get retrieves a category by identifier.
func (r *GormCategoryRepository) Get(ctx context.Context, id uint64) (*catalog.Category, error) {
	var dto CategoryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("category", id)
		}
		return nil, err
	}

	return categoryToDomain(dto)
}

// Delete removes a category. Dependent products cascade at the store level.
func (r *GormCategoryRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&CategoryDTO{}, "id = ?", id).Error
}

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Add saves a new product and fills in the store-generated identifier.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *catalog.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := productFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return aggregate.AssignID(dto.ID)
}

// Update saves an existing product. All columns are written so zero values
// like a free product's price persist.
func (r *GormProductRepository) Update(ctx context.Context, aggregate *catalog.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := productFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", dto.ID)
	}

	return nil
}

// Get retrieves a product by identifier.
func (r *GormProductRepository) Get(ctx context.Context, id uint64) (*catalog.Product, error) {
	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id)
		}
		return nil, err
	}

	return productToDomain(dto)
}

// Delete removes a product.
func (r *GormProductRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&ProductDTO{}, "id = ?", id).Error
}

// GormMethodRepository implements MethodRepository using GORM. The method kind
// selects between the payment and delivery lookup tables.
type GormMethodRepository struct {
	db *gorm.DB
}

// NewGormMethodRepository creates a new GORM method repository.
func NewGormMethodRepository(db *gorm.DB) *GormMethodRepository {
	return &GormMethodRepository{db: db}
}

// Add saves a new method and fills in the store-generated identifier.
func (r *GormMethodRepository) Add(ctx context.Context, aggregate *catalog.Method) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	switch aggregate.Kind() {
	case catalog.MethodKindPayment:
		dto := PaymentMethodDTO{ID: aggregate.ID(), Name: aggregate.Name()}
		if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
			return err
		}
		return aggregate.AssignID(dto.ID)
	case catalog.MethodKindDelivery:
		dto := DeliveryMethodDTO{ID: aggregate.ID(), Name: aggregate.Name()}
		if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
			return err
		}
		return aggregate.AssignID(dto.ID)
	default:
		return errs.NewValueIsInvalidError("kind")
	}
}

// Update saves an existing method.
func (r *GormMethodRepository) Update(ctx context.Context, aggregate *catalog.Method) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	var result *gorm.DB
	switch aggregate.Kind() {
	case catalog.MethodKindPayment:
		result = r.db.WithContext(ctx).
			Model(&PaymentMethodDTO{}).
			Where("id = ?", aggregate.ID()).
			Update("name", aggregate.Name())
	case catalog.MethodKindDelivery:
		result = r.db.WithContext(ctx).
			Model(&DeliveryMethodDTO{}).
			Where("id = ?", aggregate.ID()).
			Update("name", aggregate.Name())
	default:
		return errs.NewValueIsInvalidError("kind")
	}

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("method", aggregate.ID())
	}

	return nil
}

// Get retrieves a method of the given kind by identifier.
func (r *GormMethodRepository) Get(ctx context.Context, kind catalog.MethodKind, id uint64) (*catalog.Method, error) {
	var name string
	var err error

	switch kind {
	case catalog.MethodKindPayment:
		var dto PaymentMethodDTO
		err = r.db.WithContext(ctx).First(&dto, "id = ?", id).Error
		name = dto.Name
	case catalog.MethodKindDelivery:
		var dto DeliveryMethodDTO
		err = r.db.WithContext(ctx).First(&dto, "id = ?", id).Error
		name = dto.Name
	default:
		return nil, errs.NewValueIsInvalidError("kind")
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("method", id)
		}
		return nil, err
	}

	return catalog.RestoreMethod(id, kind, name)
}

// Delete removes a method of the given kind. Orders referencing it cascade at
// the store level.
func (r *GormMethodRepository) Delete(ctx context.Context, kind catalog.MethodKind, id uint64) error {
	switch kind {
	case catalog.MethodKindPayment:
		return r.db.WithContext(ctx).Delete(&PaymentMethodDTO{}, "id = ?", id).Error
	case catalog.MethodKindDelivery:
		return r.db.WithContext(ctx).Delete(&DeliveryMethodDTO{}, "id = ?", id).Error
	default:
		return errs.NewValueIsInvalidError("kind")
	}
}
