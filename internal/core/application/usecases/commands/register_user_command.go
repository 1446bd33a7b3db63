package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"golang.org/x/crypto/bcrypt"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// minPasswordLen mirrors the registration form rule.
const minPasswordLen = 6

// RegisterUserCommand represents a request to register a new user account.
type RegisterUserCommand struct {
	name        string
	surname     string
	patronymic  string
	email       string
	password    string
	phone       string
	dateOfBirth time.Time

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a registration command. All profile fields are
// required; the password must be at least six characters.
func NewRegisterUserCommand(
	name, surname, patronymic, email, password, phone string,
	dateOfBirth time.Time,
) (RegisterUserCommand, error) {
	if name == "" {
		return RegisterUserCommand{}, errs.NewValueIsRequiredError("name")
	}
	if surname == "" {
		return RegisterUserCommand{}, errs.NewValueIsRequiredError("surname")
	}
	if patronymic == "" {
		return RegisterUserCommand{}, errs.NewValueIsRequiredError("patronymic")
	}
	if email == "" {
		return RegisterUserCommand{}, errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return RegisterUserCommand{}, errs.NewValueIsInvalidError("email")
	}
	if password == "" {
		return RegisterUserCommand{}, errs.NewValueIsRequiredError("password")
	}
	if len(password) < minPasswordLen {
		return RegisterUserCommand{}, errs.NewValueIsInvalidError("password")
	}
	if phone == "" {
		return RegisterUserCommand{}, errs.NewValueIsRequiredError("phone")
	}
	if dateOfBirth.IsZero() {
		return RegisterUserCommand{}, errs.NewValueIsRequiredError("date_of_birth")
	}

	return RegisterUserCommand{
		name:        name,
		surname:     surname,
		patronymic:  patronymic,
		email:       email,
		password:    password,
		phone:       phone,
		dateOfBirth: dateOfBirth,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) Email() string { return c.email }

// RegisterUserCommandHandler registers users. The first account ever created is
// assigned the Admin role; every later account becomes a Client. The role set
// is immutable afterwards, so this is the only place roles are granted.
type RegisterUserCommandHandler struct {
	uowFactory AuthUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for user registration.
func NewRegisterUserCommandHandler(uowFactory AuthUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{uowFactory: uowFactory}
}

// Handle processes the registration command. The uniqueness check, the
// first-user role decision and the insert run in one transaction.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	if _, err := userRepo.GetByEmail(ctx, cmd.email); err == nil {
		validation := errs.NewValidationError()
		validation.Add("email", "The email has already been taken.")
		return validation
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	count, err := userRepo.Count(ctx)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user, err := account.NewUser(
		cmd.name, cmd.surname, cmd.patronymic, cmd.email, string(hash), cmd.phone, cmd.dateOfBirth,
	)
	if err != nil {
		return err
	}

	role := account.RoleClient
	if count == 0 {
		role = account.RoleAdmin
	}
	if err = user.AssignRole(role); err != nil {
		return err
	}

	if err = userRepo.Add(ctx, user); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
