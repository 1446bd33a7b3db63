// Package access implements the access control gate: a single pure check of the
// caller's roles against an operation's required-role set, shared by every
// operation instead of per-handler role conditionals.
package access

import "foodorder/internal/core/domain/model/account"

// Caller is the authenticated identity threaded explicitly into every
// operation. The zero value represents an anonymous caller.
type Caller struct {
	ID    uint64
	Roles []account.Role
}

// Anonymous is the unauthenticated caller.
var Anonymous = Caller{}

// IsAnonymous reports whether the caller is unauthenticated.
func (c Caller) IsAnonymous() bool {
	return c.ID == 0
}

// HasAnyRole reports whether the caller holds at least one of the given roles.
func (c Caller) HasAnyRole(roles ...account.Role) bool {
	for _, role := range roles {
		for _, own := range c.Roles {
			if own == role {
				return true
			}
		}
	}
	return false
}

// IsAdmin reports whether the caller holds the Admin role.
func (c Caller) IsAdmin() bool {
	return c.HasAnyRole(account.RoleAdmin)
}

// Allowed evaluates the gate: the request may proceed when the required set is
// empty, when an authenticated caller holds at least one required role, or when
// an anonymous caller hits an operation that explicitly admits Guest.
func Allowed(caller Caller, required ...account.Role) bool {
	if len(required) == 0 {
		return true
	}

	if !caller.IsAnonymous() {
		return caller.HasAnyRole(required...)
	}

	for _, role := range required {
		if role == account.RoleGuest {
			return true
		}
	}
	return false
}
