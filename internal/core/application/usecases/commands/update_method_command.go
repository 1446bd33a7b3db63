package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrUpdateMethodCommandIsNotConstructed = errors.New(
	"UpdateMethodCommand must be created via NewUpdateMethodCommand constructor",
)

// UpdateMethodCommand represents a rename of a payment or delivery method.
// Unlike the other catalog updates, the name is required here.
type UpdateMethodCommand struct {
	kind     catalog.MethodKind
	methodID uint64
	name     string

	guard guard.ConstructorGuard
}

// NewUpdateMethodCommand creates a method update command.
func NewUpdateMethodCommand(kind catalog.MethodKind, methodID uint64, name string) (UpdateMethodCommand, error) {
	if err := kind.Validate(); err != nil {
		return UpdateMethodCommand{}, err
	}
	if methodID == 0 {
		return UpdateMethodCommand{}, errs.NewValueIsRequiredError("methodID")
	}
	if name == "" {
		return UpdateMethodCommand{}, errs.NewValueIsRequiredError("name")
	}

	return UpdateMethodCommand{
		kind:     kind,
		methodID: methodID,
		name:     name,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMethodCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMethodCommandIsNotConstructed)
}

// UpdateMethodCommandHandler renames an existing lookup method.
type UpdateMethodCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpdateMethodCommandHandler creates a handler for method updates.
func NewUpdateMethodCommandHandler(uowFactory CatalogUoWFactory) UpdateMethodCommandHandler {
	return UpdateMethodCommandHandler{uowFactory: uowFactory}
}

// Handle processes the method update command.
func (h *UpdateMethodCommandHandler) Handle(ctx context.Context, cmd UpdateMethodCommand) error {
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

	method, err := methodRepo.Get(ctx, cmd.kind, cmd.methodID)
	if err != nil {
		return err
	}

	if err = method.Rename(cmd.name); err != nil {
		return err
	}

	if err = methodRepo.Update(ctx, method); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
