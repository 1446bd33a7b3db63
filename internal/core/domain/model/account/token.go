package account

import (
	"errors"
	"time"

	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrAccessTokenIsNotConstructed is returned when an AccessToken was not created
// through NewAccessToken or RestoreAccessToken.
var ErrAccessTokenIsNotConstructed = errors.New(
	"AccessToken must be created via NewAccessToken constructor",
)

// AccessToken is one issued credential for an authenticated session. Tokens are
// stored per issue so logout can revoke every token a user holds; a request is
// only authenticated while its token row still exists and has not expired.
type AccessToken struct {
	id        uuid.UUID
	userID    uint64
	expiresAt time.Time

	isConstructed bool
}

// NewAccessToken issues a fresh token for the given user with the given lifetime.
func NewAccessToken(userID uint64, ttl time.Duration) (*AccessToken, error) {
	if userID == 0 {
		return nil, errs.NewValueIsRequiredError("userID")
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidError("ttl")
	}

	return &AccessToken{
		id:            uuid.New(),
		userID:        userID,
		expiresAt:     time.Now().Add(ttl),
		isConstructed: true,
	}, nil
}

// RestoreAccessToken reconstructs a persisted token.
func RestoreAccessToken(id uuid.UUID, userID uint64, expiresAt time.Time) (*AccessToken, error) {
	if id == uuid.Nil {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if userID == 0 {
		return nil, errs.NewValueIsRequiredError("userID")
	}

	return &AccessToken{
		id:            id,
		userID:        userID,
		expiresAt:     expiresAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the token was created through a constructor.
func (t *AccessToken) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrAccessTokenIsNotConstructed
	}
	return nil
}

// IsExpired reports whether the token lifetime has passed at the given moment.
func (t *AccessToken) IsExpired(now time.Time) bool {
	return now.After(t.expiresAt)
}

func (t *AccessToken) ID() uuid.UUID        { return t.id }
func (t *AccessToken) UserID() uint64       { return t.userID }
func (t *AccessToken) ExpiresAt() time.Time { return t.expiresAt }
