// Package tokenrepo persists issued access tokens for revocation checks.
package tokenrepo

import (
	"time"

	"foodorder/internal/adapters/out/postgres/userrepo"
	"foodorder/internal/core/domain/model/account"

	"github.com/google/uuid"
)

// TokenDTO represents a row of the issued access token table. A token is valid
// as long as its row exists and has not expired; logout removes the rows.
type TokenDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uint64    `gorm:"index"`
	ExpiresAt time.Time `gorm:"index"`

	User *userrepo.UserDTO `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for access tokens.
func (TokenDTO) TableName() string {
	return "access_tokens"
}

func fromDomain(token *account.AccessToken) TokenDTO {
	return TokenDTO{
		ID:        token.ID(),
		UserID:    token.UserID(),
		ExpiresAt: token.ExpiresAt(),
	}
}

func toDomain(dto TokenDTO) (*account.AccessToken, error) {
	return account.RestoreAccessToken(dto.ID, dto.UserID, dto.ExpiresAt)
}
