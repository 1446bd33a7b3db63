package account

import "foodorder/internal/pkg/errs"

// Role is a label controlling which operations a caller may invoke.
// Guest is never persisted: it only appears in required-role sets to mark
// operations open to unauthenticated callers.
type Role string

const (
	// RoleAdmin grants full access to the catalog and to every user's data.
	RoleAdmin Role = "Admin"

	// RoleClient grants access to the caller's own addresses and orders.
	RoleClient Role = "Client"

	// RoleGuest marks operations available to unauthenticated callers.
	RoleGuest Role = "Guest"
)

// ParseRole converts a stored role name into a Role.
// Guest is rejected because it is not an assignable role.
func ParseRole(name string) (Role, error) {
	switch Role(name) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleClient:
		return RoleClient, nil
	default:
		return "", errs.NewValueIsInvalidError("role")
	}
}

func (r Role) String() string {
	return string(r)
}
