package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/pkg/guard"
)

var ErrCreateMethodCommandIsNotConstructed = errors.New(
	"CreateMethodCommand must be created via NewCreateMethodCommand constructor",
)

// CreateMethodCommand represents a request to add a payment or delivery method.
type CreateMethodCommand struct {
	kind catalog.MethodKind
	name string

	guard guard.ConstructorGuard
}

// NewCreateMethodCommand creates a method creation command for the given kind.
func NewCreateMethodCommand(kind catalog.MethodKind, name string) (CreateMethodCommand, error) {
	if _, err := catalog.NewMethod(kind, name); err != nil {
		return CreateMethodCommand{}, err
	}

	return CreateMethodCommand{kind: kind, name: name, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMethodCommand) Validate() error {
	return c.guard.Validate(ErrCreateMethodCommandIsNotConstructed)
}

// CreateMethodCommandHandler persists a new lookup method.
type CreateMethodCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateMethodCommandHandler creates a handler for method creation.
func NewCreateMethodCommandHandler(uowFactory CatalogUoWFactory) CreateMethodCommandHandler {
	return CreateMethodCommandHandler{uowFactory: uowFactory}
}

// Handle processes the method creation command.
func (h *CreateMethodCommandHandler) Handle(ctx context.Context, cmd CreateMethodCommand) error {
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

	method, err := catalog.NewMethod(cmd.kind, cmd.name)
	if err != nil {
		return err
	}

	if err = uow.MethodRepository().Add(ctx, method); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
