package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrDeleteMethodCommandIsNotConstructed = errors.New(
	"DeleteMethodCommand must be created via NewDeleteMethodCommand constructor",
)

// DeleteMethodCommand represents a request to remove a payment or delivery method.
type DeleteMethodCommand struct {
	kind     catalog.MethodKind
	methodID uint64

	guard guard.ConstructorGuard
}

// NewDeleteMethodCommand creates a method deletion command.
func NewDeleteMethodCommand(kind catalog.MethodKind, methodID uint64) (DeleteMethodCommand, error) {
	if err := kind.Validate(); err != nil {
		return DeleteMethodCommand{}, err
	}
	if methodID == 0 {
		return DeleteMethodCommand{}, errs.NewValueIsRequiredError("methodID")
	}

	return DeleteMethodCommand{kind: kind, methodID: methodID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteMethodCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMethodCommandIsNotConstructed)
}

// DeleteMethodCommandHandler removes a lookup method. Orders referencing the
// method cascade away at the store level.
type DeleteMethodCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewDeleteMethodCommandHandler creates a handler for method deletion.
func NewDeleteMethodCommandHandler(uowFactory CatalogUoWFactory) DeleteMethodCommandHandler {
	return DeleteMethodCommandHandler{uowFactory: uowFactory}
}

// Handle processes the method deletion command.
func (h *DeleteMethodCommandHandler) Handle(ctx context.Context, cmd DeleteMethodCommand) error {
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

	methodRepo := uow.MethodRepository()

	if _, err := methodRepo.Get(ctx, cmd.kind, cmd.methodID); err != nil {
		return err
	}

	if err := methodRepo.Delete(ctx, cmd.kind, cmd.methodID); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
