package commands_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func registrationCommand(t *testing.T) commands.RegisterUserCommand {
	t.Helper()
	cmd, err := commands.NewRegisterUserCommand(
		"Иван", "Иванов", "Иванович",
		"ivan@example.com", "secret1", "+79990000000",
		time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return cmd
}

func registeredUser(t *testing.T, id uint64, email, password string) *account.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user, err := account.RestoreUser(
		id, "Иван", "Иванов", "Иванович",
		email, string(hash), "+79990000000",
		time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		[]account.Role{account.RoleClient},
	)
	require.NoError(t, err)
	return user
}

func TestRegisterUserCommandHandler_Handle_FirstUserBecomesAdmin(t *testing.T) {
	ctx := context.Background()
	cmd := registrationCommand(t)

	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", ctx, "ivan@example.com").
		Return(nil, errs.NewObjectNotFoundError("user", "ivan@example.com")).Once()
	userRepo.On("Count", ctx).Return(int64(0), nil).Once()
	userRepo.On("Add", ctx, mock.AnythingOfType("*account.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*account.User)
			require.Equal(t, []account.Role{account.RoleAdmin}, user.Roles())
			require.NoError(t,
				bcrypt.CompareHashAndPassword([]byte(user.PasswordHash()), []byte("secret1")))
		}).
		Return(nil).Once()

	uow := new(MockAuthUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAuthUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_LaterUserBecomesClient(t *testing.T) {
	ctx := context.Background()
	cmd := registrationCommand(t)

	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", ctx, "ivan@example.com").
		Return(nil, errs.NewObjectNotFoundError("user", "ivan@example.com")).Once()
	userRepo.On("Count", ctx).Return(int64(3), nil).Once()
	userRepo.On("Add", ctx, mock.AnythingOfType("*account.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*account.User)
			require.Equal(t, []account.Role{account.RoleClient}, user.Roles())
		}).
		Return(nil).Once()

	uow := new(MockAuthUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAuthUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_DuplicateEmail_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := registrationCommand(t)

	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", ctx, "ivan@example.com").
		Return(registeredUser(t, 1, "ivan@example.com", "secret1"), nil).Once()

	uow := new(MockAuthUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAuthUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValidationFailed)

	var validationErr *errs.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Contains(t, validationErr.Fields["email"], "The email has already been taken.")

	uow.AssertNotCalled(t, "Commit", ctx)
	userRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
}

func TestRegisterUserCommandHandler_Handle_NotConstructedCommand_Fails(t *testing.T) {
	ctx := context.Background()

	factory := new(MockAuthUoWFactory)
	h := commands.NewRegisterUserCommandHandler(factory)

	err := h.Handle(ctx, commands.RegisterUserCommand{})

	require.ErrorIs(t, err, commands.ErrRegisterUserCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestNewRegisterUserCommand_Validation(t *testing.T) {
	birthDate := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("should fail with short password", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand(
			"Иван", "Иванов", "Иванович", "ivan@example.com", "12345", "+79990000000", birthDate)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with malformed email", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand(
			"Иван", "Иванов", "Иванович", "not-an-email", "secret1", "+79990000000", birthDate)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with zero birth date", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand(
			"Иван", "Иванов", "Иванович", "ivan@example.com", "secret1", "+79990000000", time.Time{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
