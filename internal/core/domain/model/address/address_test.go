package address_test

import (
	"testing"

	"foodorder/internal/core/domain/model/address"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

func TestNewAddress(t *testing.T) {
	t.Run("should create valid address with required fields only", func(t *testing.T) {
		addr, err := address.NewAddress("Москва", "Тверская", 1, address.Details{}, 5)

		require.NoError(t, err)
		require.NoError(t, addr.Validate())
		assert.Zero(t, addr.ID())
		assert.Equal(t, "Москва", addr.City())
		assert.Equal(t, "Тверская", addr.Street())
		assert.Equal(t, 1, addr.HouseNumber())
		assert.Equal(t, uint64(5), addr.UserID())
		assert.Nil(t, addr.ApartmentNumber())
		assert.Nil(t, addr.Comment())
	})

	t.Run("should carry optional details", func(t *testing.T) {
		details := address.Details{
			ApartmentNumber: intPtr(12),
			Entrance:        strPtr("2"),
			Floor:           intPtr(4),
			Intercom:        intPtr(1234),
			Gate:            boolPtr(true),
			Comment:         strPtr("код от домофона 1234"),
		}

		addr, err := address.NewAddress("Москва", "Тверская", 1, details, 5)

		require.NoError(t, err)
		assert.Equal(t, 12, *addr.ApartmentNumber())
		assert.Equal(t, "2", *addr.Entrance())
		assert.Equal(t, 4, *addr.Floor())
		assert.Equal(t, 1234, *addr.Intercom())
		assert.True(t, *addr.Gate())
		assert.Equal(t, "код от домофона 1234", *addr.Comment())
	})

	t.Run("should fail with empty city", func(t *testing.T) {
		_, err := address.NewAddress("", "Тверская", 1, address.Details{}, 5)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "city")
	})

	t.Run("should fail with non-positive house number", func(t *testing.T) {
		_, err := address.NewAddress("Москва", "Тверская", 0, address.Details{}, 5)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "house_number")
	})

	t.Run("should fail with zero user id", func(t *testing.T) {
		_, err := address.NewAddress("Москва", "Тверская", 1, address.Details{}, 0)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "user_id")
	})
}

func TestAddressValidate(t *testing.T) {
	var addr address.Address
	assert.ErrorIs(t, addr.Validate(), address.ErrAddressIsNotConstructed)
}

func TestAddressOwnedBy(t *testing.T) {
	addr, err := address.NewAddress("Москва", "Тверская", 1, address.Details{}, 5)
	require.NoError(t, err)

	assert.True(t, addr.OwnedBy(5))
	assert.False(t, addr.OwnedBy(6))
}

func TestAddressApplyPatch(t *testing.T) {
	t.Run("should update only supplied fields", func(t *testing.T) {
		addr, err := address.NewAddress("Москва", "Тверская", 1,
			address.Details{Floor: intPtr(2)}, 5)
		require.NoError(t, err)

		err = addr.ApplyPatch(address.Patch{
			Street:  strPtr("Арбат"),
			Details: address.Details{Comment: strPtr("вход со двора")},
		})

		require.NoError(t, err)
		assert.Equal(t, "Москва", addr.City())
		assert.Equal(t, "Арбат", addr.Street())
		assert.Equal(t, 2, *addr.Floor())
		assert.Equal(t, "вход со двора", *addr.Comment())
	})

	t.Run("should validate patched required fields", func(t *testing.T) {
		addr, err := address.NewAddress("Москва", "Тверская", 1, address.Details{}, 5)
		require.NoError(t, err)

		err = addr.ApplyPatch(address.Patch{HouseNumber: intPtr(-1)})

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, 1, addr.HouseNumber())
	})
}

func TestRestoreAddress(t *testing.T) {
	addr, err := address.RestoreAddress(42, "Москва", "Тверская", 1, address.Details{}, 5)

	require.NoError(t, err)
	assert.Equal(t, uint64(42), addr.ID())

	assert.ErrorIs(t, addr.AssignID(7), errs.ErrValueIsInvalid)
}
