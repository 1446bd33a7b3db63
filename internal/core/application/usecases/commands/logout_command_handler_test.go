package commands_test

import (
	"context"
	"errors"
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLogoutCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewLogoutCommand(1)
	require.NoError(t, err)

	tokenRepo := new(MockTokenRepository)
	tokenRepo.On("DeleteByUser", ctx, uint64(1)).Return(nil).Once()

	uow := new(MockAuthUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TokenRepository").Return(tokenRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAuthUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLogoutCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	tokenRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestLogoutCommandHandler_Handle_DeleteError_NoCommit(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewLogoutCommand(1)
	require.NoError(t, err)

	tokenRepo := new(MockTokenRepository)
	tokenRepo.On("DeleteByUser", ctx, uint64(1)).Return(errors.New("delete error")).Once()

	uow := new(MockAuthUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TokenRepository").Return(tokenRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAuthUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLogoutCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestNewLogoutCommand_Validation(t *testing.T) {
	_, err := commands.NewLogoutCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var cmd commands.LogoutCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrLogoutCommandIsNotConstructed)
}

func TestPurgeExpiredTokensCommandHandler_Handle_ReturnsPurgedCount(t *testing.T) {
	ctx := context.Background()
	cmd := commands.NewPurgeExpiredTokensCommand()

	tokenRepo := new(MockTokenRepository)
	tokenRepo.On("DeleteExpired", ctx, mock.AnythingOfType("time.Time")).
		Return(int64(3), nil).Once()

	uow := new(MockAuthUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TokenRepository").Return(tokenRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAuthUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPurgeExpiredTokensCommandHandler(factory)
	purged, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, int64(3), purged)
	tokenRepo.AssertExpectations(t)
}

func TestPurgeExpiredTokensCommandHandler_Handle_NotConstructedCommand_Fails(t *testing.T) {
	ctx := context.Background()

	factory := new(MockAuthUoWFactory)
	h := commands.NewPurgeExpiredTokensCommandHandler(factory)

	_, err := h.Handle(ctx, commands.PurgeExpiredTokensCommand{})

	require.ErrorIs(t, err, commands.ErrPurgeExpiredTokensCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
