package commands

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/pkg/guard"
)

var ErrPurgeExpiredTokensCommandIsNotConstructed = errors.New(
	"PurgeExpiredTokensCommand must be created via NewPurgeExpiredTokensCommand constructor",
)

// PurgeExpiredTokensCommand removes access tokens whose lifetime has passed.
// Issued by the scheduled cleanup job; expired tokens are already rejected at
// authentication time, so the purge only reclaims storage.
type PurgeExpiredTokensCommand struct {
	guard guard.ConstructorGuard
}

// NewPurgeExpiredTokensCommand creates a purge command.
func NewPurgeExpiredTokensCommand() PurgeExpiredTokensCommand {
	return PurgeExpiredTokensCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c PurgeExpiredTokensCommand) Validate() error {
	return c.guard.Validate(ErrPurgeExpiredTokensCommandIsNotConstructed)
}

// PurgeExpiredTokensCommandHandler deletes expired token rows.
type PurgeExpiredTokensCommandHandler struct {
	uowFactory AuthUoWFactory
}

// NewPurgeExpiredTokensCommandHandler creates a handler for token purging.
func NewPurgeExpiredTokensCommandHandler(uowFactory AuthUoWFactory) PurgeExpiredTokensCommandHandler {
	return PurgeExpiredTokensCommandHandler{uowFactory: uowFactory}
}

// Handle processes the purge command and reports how many tokens were removed.
func (h *PurgeExpiredTokensCommandHandler) Handle(ctx context.Context, cmd PurgeExpiredTokensCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	purged, err := uow.TokenRepository().DeleteExpired(ctx, time.Now())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
