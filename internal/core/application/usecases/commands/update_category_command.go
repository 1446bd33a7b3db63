package commands

import (
	"context"
	"errors"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrUpdateCategoryCommandIsNotConstructed = errors.New(
	"UpdateCategoryCommand must be created via NewUpdateCategoryCommand constructor",
)

// UpdateCategoryCommand represents a partial update of a product category.
// A nil name keeps the current one.
type UpdateCategoryCommand struct {
	categoryID uint64
	name       *string

	guard guard.ConstructorGuard
}

// NewUpdateCategoryCommand creates a category update command.
func NewUpdateCategoryCommand(categoryID uint64, name *string) (UpdateCategoryCommand, error) {
	if categoryID == 0 {
		return UpdateCategoryCommand{}, errs.NewValueIsRequiredError("categoryID")
	}

	return UpdateCategoryCommand{
		categoryID: categoryID,
		name:       name,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCategoryCommandIsNotConstructed)
}

// UpdateCategoryCommandHandler renames an existing category.
type UpdateCategoryCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpdateCategoryCommandHandler creates a handler for category updates.
func NewUpdateCategoryCommandHandler(uowFactory CatalogUoWFactory) UpdateCategoryCommandHandler {
	return UpdateCategoryCommandHandler{uowFactory: uowFactory}
}

// Handle processes the category update command.
func (h *UpdateCategoryCommandHandler) Handle(ctx context.Context, cmd UpdateCategoryCommand) error {
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

	category, err := categoryRepo.Get(ctx, cmd.categoryID)
	if err != nil {
		return err
	}

	if cmd.name != nil {
		if err = category.Rename(*cmd.name); err != nil {
			return err
		}
	}

	if err = categoryRepo.Update(ctx, category); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
