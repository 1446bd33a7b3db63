package commands_test

import (
	"testing"

	"foodorder/internal/core/application/access"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clientCaller(id uint64) access.Caller {
	return access.Caller{ID: id, Roles: []account.Role{account.RoleClient}}
}

func adminCaller(id uint64) access.Caller {
	return access.Caller{ID: id, Roles: []account.Role{account.RoleAdmin}}
}

func TestNewCreateOrderCommand(t *testing.T) {
	actor := clientCaller(1)
	items := []commands.LineItemInput{{ProductID: 10, Quantity: 2}}

	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(actor, 1, 2, 3, "new", items)

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
	})

	t.Run("should allow empty item list", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(actor, 1, 2, 3, "new", nil)

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
	})

	t.Run("should fail with anonymous actor", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(access.Anonymous, 1, 2, 3, "new", items)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with zero delivery method", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(actor, 0, 2, 3, "new", items)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with zero payment method", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(actor, 1, 0, 3, "new", items)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with zero address", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(actor, 1, 2, 0, "new", items)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with empty status", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(actor, 1, 2, 3, "", items)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with zero product id in items", func(t *testing.T) {
		bad := []commands.LineItemInput{{ProductID: 0, Quantity: 2}}
		_, err := commands.NewCreateOrderCommand(actor, 1, 2, 3, "new", bad)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with negative quantity in items", func(t *testing.T) {
		bad := []commands.LineItemInput{{ProductID: 10, Quantity: -1}}
		_, err := commands.NewCreateOrderCommand(actor, 1, 2, 3, "new", bad)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value command should fail validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
