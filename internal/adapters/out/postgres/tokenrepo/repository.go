package tokenrepo

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTokenRepository implements TokenRepository using GORM.
type GormTokenRepository struct {
	db *gorm.DB
}

// NewGormTokenRepository creates a new GORM token repository.
func NewGormTokenRepository(db *gorm.DB) *GormTokenRepository {
	return &GormTokenRepository{db: db}
}

// Add saves a newly issued token.
func (r *GormTokenRepository) Add(ctx context.Context, aggregate *account.AccessToken) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a token by identifier. Revoked tokens are simply absent.
func (r *GormTokenRepository) Get(ctx context.Context, id uuid.UUID) (*account.AccessToken, error) {
	var dto TokenDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("token", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// DeleteByUser revokes every token issued to the given user.
func (r *GormTokenRepository) DeleteByUser(ctx context.Context, userID uint64) error {
	return r.db.WithContext(ctx).Delete(&TokenDTO{}, "user_id = ?", userID).Error
}

// DeleteExpired removes tokens that expired before the given moment.
func (r *GormTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&TokenDTO{}, "expires_at < ?", before)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
