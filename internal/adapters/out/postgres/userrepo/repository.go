package userrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add saves a new user together with its role assignments and fills in the
// store-generated identifier. Role rows are seeded at migration time; only the
// join rows are written here.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *account.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	roleNames := make([]string, 0, len(aggregate.Roles()))
	for _, role := range aggregate.Roles() {
		roleNames = append(roleNames, string(role))
	}

	var roleDTOs []RoleDTO
	if err := r.db.WithContext(ctx).Find(&roleDTOs, "name IN ?", roleNames).Error; err != nil {
		return err
	}
	if len(roleDTOs) != len(roleNames) {
		return errs.NewValueIsInvalidError("roles")
	}
	dto.Roles = roleDTOs

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return aggregate.AssignID(dto.ID)
}

// GetByID retrieves a user with roles by identifier.
func (r *GormUserRepository) GetByID(ctx context.Context, id uint64) (*account.User, error) {
	var dto UserDTO
	err := r.db.WithContext(ctx).Preload("Roles").First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves a user with roles by unique email.
func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*account.User, error) {
	var dto UserDTO
	err := r.db.WithContext(ctx).Preload("Roles").First(&dto, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", email)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Count returns the number of registered users.
func (r *GormUserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&UserDTO{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
