package commands

import (
	"context"
	"errors"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrDeleteCategoryCommandIsNotConstructed = errors.New(
	"DeleteCategoryCommand must be created via NewDeleteCategoryCommand constructor",
)

// DeleteCategoryCommand represents a request to remove a product category.
type DeleteCategoryCommand struct {
	categoryID uint64

	guard guard.ConstructorGuard
}

// NewDeleteCategoryCommand creates a category deletion command.
func NewDeleteCategoryCommand(categoryID uint64) (DeleteCategoryCommand, error) {
	if categoryID == 0 {
		return DeleteCategoryCommand{}, errs.NewValueIsRequiredError("categoryID")
	}

	return DeleteCategoryCommand{categoryID: categoryID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCategoryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCategoryCommandIsNotConstructed)
}

// DeleteCategoryCommandHandler removes a category. Dependent products cascade
// away at the store level.
type DeleteCategoryCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewDeleteCategoryCommandHandler creates a handler for category deletion.
func NewDeleteCategoryCommandHandler(uowFactory CatalogUoWFactory) DeleteCategoryCommandHandler {
	return DeleteCategoryCommandHandler{uowFactory: uowFactory}
}

// Handle processes the category deletion command.
func (h *DeleteCategoryCommandHandler) Handle(ctx context.Context, cmd DeleteCategoryCommand) error {
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

	categoryRepo := uow.CategoryRepository()

	if _, err := categoryRepo.Get(ctx, cmd.categoryID); err != nil {
		return err
	}

	if err := categoryRepo.Delete(ctx, cmd.categoryID); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
