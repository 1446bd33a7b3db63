package account_test

import (
	"testing"
	"time"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccessToken(t *testing.T) {
	t.Run("should issue token with generated id and future expiry", func(t *testing.T) {
		token, err := account.NewAccessToken(1, time.Hour)

		require.NoError(t, err)
		require.NoError(t, token.Validate())
		assert.NotEqual(t, uuid.Nil, token.ID())
		assert.Equal(t, uint64(1), token.UserID())
		assert.False(t, token.IsExpired(time.Now()))
		assert.True(t, token.IsExpired(time.Now().Add(2*time.Hour)))
	})

	t.Run("should issue unique ids", func(t *testing.T) {
		first, err := account.NewAccessToken(1, time.Hour)
		require.NoError(t, err)
		second, err := account.NewAccessToken(1, time.Hour)
		require.NoError(t, err)

		assert.NotEqual(t, first.ID(), second.ID())
	})

	t.Run("should fail with zero user id", func(t *testing.T) {
		_, err := account.NewAccessToken(0, time.Hour)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with non-positive ttl", func(t *testing.T) {
		_, err := account.NewAccessToken(1, 0)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = account.NewAccessToken(1, -time.Minute)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreAccessToken(t *testing.T) {
	t.Run("should restore persisted token", func(t *testing.T) {
		id := uuid.New()
		expiresAt := time.Now().Add(time.Hour)

		token, err := account.RestoreAccessToken(id, 1, expiresAt)

		require.NoError(t, err)
		assert.Equal(t, id, token.ID())
		assert.Equal(t, uint64(1), token.UserID())
		assert.Equal(t, expiresAt, token.ExpiresAt())
	})

	t.Run("should fail with nil id", func(t *testing.T) {
		_, err := account.RestoreAccessToken(uuid.Nil, 1, time.Now())
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with zero user id", func(t *testing.T) {
		_, err := account.RestoreAccessToken(uuid.New(), 0, time.Now())
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestAccessTokenValidate(t *testing.T) {
	var token account.AccessToken
	assert.ErrorIs(t, token.Validate(), account.ErrAccessTokenIsNotConstructed)
}
