// Package token signs and parses bearer access tokens. A token is an HS256 JWT
// whose jti claim identifies the issued-token record in the store, so tokens
// stay revocable: parsing only proves authenticity, the record must still exist.
package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrTokenInvalid is returned when a presented token fails signature, shape or
// expiry checks.
var ErrTokenInvalid = errors.New("token is invalid")

// Claims is the JWT payload carried by an access token.
type Claims struct {
	jwt.RegisteredClaims
}

// Codec signs and verifies access tokens with a shared HMAC secret.
type Codec struct {
	secret []byte
}

// NewCodec creates a codec with the given signing secret. The configuration
// layer guarantees the secret is non-empty.
func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Sign produces a signed token string for an issued token record.
func (c *Codec) Sign(tokenID uuid.UUID, userID uint64, expiresAt time.Time) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID.String(),
			Subject:   strconv.FormatUint(userID, 10),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Parse verifies a token string and returns the issued-token identifier.
func (c *Codec) Parse(tokenStr string) (uuid.UUID, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		return uuid.Nil, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return uuid.Nil, ErrTokenInvalid
	}

	tokenID, err := uuid.Parse(claims.ID)
	if err != nil {
		return uuid.Nil, ErrTokenInvalid
	}
	return tokenID, nil
}
