package account_test

import (
	"testing"
	"time"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBirthDate = time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)

func validUser(t *testing.T) *account.User {
	t.Helper()
	user, err := account.NewUser(
		"Иван", "Иванов", "Иванович",
		"ivan@example.com", "hash", "+79990000000",
		testBirthDate,
	)
	require.NoError(t, err)
	return user
}

func TestNewUser(t *testing.T) {
	t.Run("should create valid user with all valid parameters", func(t *testing.T) {
		user := validUser(t)

		require.NoError(t, user.Validate())
		assert.Zero(t, user.ID())
		assert.Equal(t, "Иван", user.Name())
		assert.Equal(t, "Иванов", user.Surname())
		assert.Equal(t, "Иванович", user.Patronymic())
		assert.Equal(t, "ivan@example.com", user.Email())
		assert.Equal(t, "hash", user.PasswordHash())
		assert.Equal(t, "+79990000000", user.Phone())
		assert.Equal(t, testBirthDate, user.DateOfBirth())
		assert.Empty(t, user.Roles())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := account.NewUser("", "Иванов", "Иванович",
			"ivan@example.com", "hash", "+79990000000", testBirthDate)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should fail with malformed email", func(t *testing.T) {
		_, err := account.NewUser("Иван", "Иванов", "Иванович",
			"not-an-email", "hash", "+79990000000", testBirthDate)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "email")
	})

	t.Run("should collect all violations at once", func(t *testing.T) {
		_, err := account.NewUser("", "", "Иванович",
			"ivan@example.com", "hash", "+79990000000", testBirthDate)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "surname")
	})
}

func TestUserValidate(t *testing.T) {
	var user account.User
	assert.ErrorIs(t, user.Validate(), account.ErrUserIsNotConstructed)
}

func TestUserAssignID(t *testing.T) {
	t.Run("should assign id once", func(t *testing.T) {
		user := validUser(t)

		require.NoError(t, user.AssignID(7))
		assert.Equal(t, uint64(7), user.ID())
	})

	t.Run("should reject reassignment", func(t *testing.T) {
		user := validUser(t)
		require.NoError(t, user.AssignID(7))

		assert.ErrorIs(t, user.AssignID(8), errs.ErrValueIsInvalid)
	})
}

func TestUserAssignRole(t *testing.T) {
	t.Run("should assign known roles", func(t *testing.T) {
		user := validUser(t)

		require.NoError(t, user.AssignRole(account.RoleClient))
		require.NoError(t, user.AssignRole(account.RoleAdmin))

		assert.ElementsMatch(t, []account.Role{account.RoleClient, account.RoleAdmin}, user.Roles())
	})

	t.Run("should ignore duplicate assignment", func(t *testing.T) {
		user := validUser(t)

		require.NoError(t, user.AssignRole(account.RoleClient))
		require.NoError(t, user.AssignRole(account.RoleClient))

		assert.Len(t, user.Roles(), 1)
	})

	t.Run("should reject guest and unknown roles", func(t *testing.T) {
		user := validUser(t)

		assert.ErrorIs(t, user.AssignRole(account.RoleGuest), errs.ErrValueIsInvalid)
		assert.ErrorIs(t, user.AssignRole(account.Role("Superuser")), errs.ErrValueIsInvalid)
	})
}

func TestUserHasAnyRole(t *testing.T) {
	user := validUser(t)
	require.NoError(t, user.AssignRole(account.RoleClient))

	assert.True(t, user.HasAnyRole(account.RoleClient))
	assert.True(t, user.HasAnyRole(account.RoleAdmin, account.RoleClient))
	assert.False(t, user.HasAnyRole(account.RoleAdmin))
	assert.False(t, user.HasAnyRole())
}

func TestRestoreUser(t *testing.T) {
	user, err := account.RestoreUser(
		42, "Иван", "Иванов", "Иванович",
		"ivan@example.com", "hash", "+79990000000",
		testBirthDate,
		[]account.Role{account.RoleAdmin},
	)

	require.NoError(t, err)
	assert.Equal(t, uint64(42), user.ID())
	assert.Equal(t, []account.Role{account.RoleAdmin}, user.Roles())
}

func TestParseRole(t *testing.T) {
	t.Run("should parse assignable roles", func(t *testing.T) {
		role, err := account.ParseRole("Admin")
		require.NoError(t, err)
		assert.Equal(t, account.RoleAdmin, role)

		role, err = account.ParseRole("Client")
		require.NoError(t, err)
		assert.Equal(t, account.RoleClient, role)
	})

	t.Run("should reject unknown role names", func(t *testing.T) {
		_, err := account.ParseRole("Superuser")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
