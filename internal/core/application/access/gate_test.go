package access_test

import (
	"testing"

	"foodorder/internal/core/application/access"
	"foodorder/internal/core/domain/model/account"

	"github.com/stretchr/testify/assert"
)

func TestCallerIsAnonymous(t *testing.T) {
	assert.True(t, access.Anonymous.IsAnonymous())
	assert.True(t, access.Caller{}.IsAnonymous())
	assert.False(t, access.Caller{ID: 1}.IsAnonymous())
}

func TestCallerHasAnyRole(t *testing.T) {
	caller := access.Caller{ID: 1, Roles: []account.Role{account.RoleClient}}

	assert.True(t, caller.HasAnyRole(account.RoleClient))
	assert.True(t, caller.HasAnyRole(account.RoleAdmin, account.RoleClient))
	assert.False(t, caller.HasAnyRole(account.RoleAdmin))
	assert.False(t, access.Anonymous.HasAnyRole(account.RoleClient))
}

func TestCallerIsAdmin(t *testing.T) {
	admin := access.Caller{ID: 1, Roles: []account.Role{account.RoleAdmin}}
	client := access.Caller{ID: 2, Roles: []account.Role{account.RoleClient}}

	assert.True(t, admin.IsAdmin())
	assert.False(t, client.IsAdmin())
	assert.False(t, access.Anonymous.IsAdmin())
}

func TestAllowed(t *testing.T) {
	admin := access.Caller{ID: 1, Roles: []account.Role{account.RoleAdmin}}
	client := access.Caller{ID: 2, Roles: []account.Role{account.RoleClient}}

	t.Run("empty required set admits everyone", func(t *testing.T) {
		assert.True(t, access.Allowed(access.Anonymous))
		assert.True(t, access.Allowed(client))
	})

	t.Run("authenticated caller needs one matching role", func(t *testing.T) {
		assert.True(t, access.Allowed(admin, account.RoleAdmin))
		assert.True(t, access.Allowed(client, account.RoleAdmin, account.RoleClient))
		assert.False(t, access.Allowed(client, account.RoleAdmin))
	})

	t.Run("anonymous caller only passes guest operations", func(t *testing.T) {
		assert.True(t, access.Allowed(access.Anonymous, account.RoleGuest))
		assert.False(t, access.Allowed(access.Anonymous, account.RoleClient))
		assert.False(t, access.Allowed(access.Anonymous, account.RoleAdmin, account.RoleClient))
	})

	t.Run("authenticated caller does not pass guest-only operations", func(t *testing.T) {
		// Register and login are for guests; logged-in callers are turned away.
		assert.False(t, access.Allowed(client, account.RoleGuest))
		assert.False(t, access.Allowed(admin, account.RoleGuest))
	})
}
