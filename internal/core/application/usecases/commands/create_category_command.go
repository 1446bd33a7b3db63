package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/pkg/guard"
)

var ErrCreateCategoryCommandIsNotConstructed = errors.New(
	"CreateCategoryCommand must be created via NewCreateCategoryCommand constructor",
)

// CreateCategoryCommand represents a request to add a product category.
type CreateCategoryCommand struct {
	name string

	guard guard.ConstructorGuard
}

// NewCreateCategoryCommand creates a category creation command. The name is
// validated by the Category constructor rules.
func NewCreateCategoryCommand(name string) (CreateCategoryCommand, error) {
	if _, err := catalog.NewCategory(name); err != nil {
		return CreateCategoryCommand{}, err
	}

	return CreateCategoryCommand{name: name, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCategoryCommandIsNotConstructed)
}

// CreateCategoryCommandHandler persists a new product category.
type CreateCategoryCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateCategoryCommandHandler creates a handler for category creation.
func NewCreateCategoryCommandHandler(uowFactory CatalogUoWFactory) CreateCategoryCommandHandler {
	return CreateCategoryCommandHandler{uowFactory: uowFactory}
}

// Handle processes the category creation command.
func (h *CreateCategoryCommandHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) error {
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

	category, err := catalog.NewCategory(cmd.name)
	if err != nil {
		return err
	}

	if err = uow.CategoryRepository().Add(ctx, category); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
