package account

import (
	"errors"
	"strings"
	"time"

	"foodorder/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is the identity aggregate. It holds the registered profile, the password
// credential and the immutable role set assigned at registration.
//
// Invariants:
//   - Name, surname, patronymic, email, phone and the password hash are required
//   - Email carries an '@' separator (full format rules live at the API boundary)
//   - The role set is assigned once at registration and never changes
type User struct {
	id           uint64
	name         string
	surname      string
	patronymic   string
	email        string
	passwordHash string
	phone        string
	dateOfBirth  time.Time
	roles        []Role

	isConstructed bool
}

// NewUser creates a user with a validated profile. The ID is zero until the
// repository persists the aggregate and assigns the generated identifier.
func NewUser(
	name, surname, patronymic, email, passwordHash, phone string,
	dateOfBirth time.Time,
) (*User, error) {
	user := &User{isConstructed: true}

	if err := errors.Join(
		user.setName(name),
		user.setSurname(surname),
		user.setPatronymic(patronymic),
		user.setEmail(email),
		user.setPasswordHash(passwordHash),
		user.setPhone(phone),
		user.setDateOfBirth(dateOfBirth),
	); err != nil {
		return nil, err
	}

	return user, nil
}

// RestoreUser reconstructs a persisted user, including its assigned roles.
func RestoreUser(
	id uint64,
	name, surname, patronymic, email, passwordHash, phone string,
	dateOfBirth time.Time,
	roles []Role,
) (*User, error) {
	user, err := NewUser(name, surname, patronymic, email, passwordHash, phone, dateOfBirth)
	if err != nil {
		return nil, err
	}

	user.id = id
	user.roles = append([]Role(nil), roles...)
	return user, nil
}

// Validate ensures the user was created through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// AssignID records the identifier generated by the store on first persist.
func (u *User) AssignID(id uint64) error {
	if u.id != 0 {
		return errs.NewValueIsInvalidError("id")
	}
	u.id = id
	return nil
}

// AssignRole adds a role to the user's role set. Duplicate assignments are ignored.
func (u *User) AssignRole(role Role) error {
	if role != RoleAdmin && role != RoleClient {
		return errs.NewValueIsInvalidError("role")
	}
	if u.HasAnyRole(role) {
		return nil
	}
	u.roles = append(u.roles, role)
	return nil
}

// HasAnyRole reports whether the user holds at least one of the given roles.
func (u *User) HasAnyRole(roles ...Role) bool {
	for _, role := range roles {
		for _, own := range u.roles {
			if own == role {
				return true
			}
		}
	}
	return false
}

func (u *User) ID() uint64             { return u.id }
func (u *User) Name() string           { return u.name }
func (u *User) Surname() string        { return u.surname }
func (u *User) Patronymic() string     { return u.patronymic }
func (u *User) Email() string          { return u.email }
func (u *User) PasswordHash() string   { return u.passwordHash }
func (u *User) Phone() string          { return u.phone }
func (u *User) DateOfBirth() time.Time { return u.dateOfBirth }

// Roles returns a copy of the user's role set.
func (u *User) Roles() []Role {
	return append([]Role(nil), u.roles...)
}

func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setSurname(surname string) error {
	if surname == "" {
		return errs.NewValueIsRequiredError("surname")
	}
	u.surname = surname
	return nil
}

func (u *User) setPatronymic(patronymic string) error {
	if patronymic == "" {
		return errs.NewValueIsRequiredError("patronymic")
	}
	u.patronymic = patronymic
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("password")
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	u.phone = phone
	return nil
}

func (u *User) setDateOfBirth(dateOfBirth time.Time) error {
	if dateOfBirth.IsZero() {
		return errs.NewValueIsRequiredError("date_of_birth")
	}
	u.dateOfBirth = dateOfBirth
	return nil
}
