package commands

import (
	"context"
	"errors"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrLogoutCommandIsNotConstructed = errors.New(
	"LogoutCommand must be created via NewLogoutCommand constructor",
)

// LogoutCommand revokes every access token issued to the caller.
type LogoutCommand struct {
	userID uint64

	guard guard.ConstructorGuard
}

// NewLogoutCommand creates a logout command for the given user.
func NewLogoutCommand(userID uint64) (LogoutCommand, error) {
	if userID == 0 {
		return LogoutCommand{}, errs.NewValueIsRequiredError("userID")
	}

	return LogoutCommand{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c LogoutCommand) Validate() error {
	return c.guard.Validate(ErrLogoutCommandIsNotConstructed)
}

// LogoutCommandHandler deletes all of the caller's issued tokens, which
// invalidates every session at once.
type LogoutCommandHandler struct {
	uowFactory AuthUoWFactory
}

// NewLogoutCommandHandler creates a handler for logout operations.
func NewLogoutCommandHandler(uowFactory AuthUoWFactory) LogoutCommandHandler {
	return LogoutCommandHandler{uowFactory: uowFactory}
}

// Handle processes the logout command.
func (h *LogoutCommandHandler) Handle(ctx context.Context, cmd LogoutCommand) error {
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

	if err := uow.TokenRepository().DeleteByUser(ctx, cmd.userID); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
