package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents a partial update of a product.
type UpdateProductCommand struct {
	productID uint64
	patch     catalog.ProductPatch

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a product update command.
func NewUpdateProductCommand(productID uint64, patch catalog.ProductPatch) (UpdateProductCommand, error) {
	if productID == 0 {
		return UpdateProductCommand{}, errs.NewValueIsRequiredError("productID")
	}

	return UpdateProductCommand{
		productID: productID,
		patch:     patch,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// UpdateProductCommandHandler applies a partial update to a product. A changed
// category reference must point at an existing category.
type UpdateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for product updates.
func NewUpdateProductCommandHandler(uowFactory CatalogUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{uowFactory: uowFactory}
}

// Handle processes the product update command.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
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

	productRepo := uow.ProductRepository()

	product, err := productRepo.Get(ctx, cmd.productID)
	if err != nil {
		return err
	}

	if cmd.patch.CategoryID != nil {
		if _, err = uow.CategoryRepository().Get(ctx, *cmd.patch.CategoryID); err != nil {
			return err
		}
	}

	if err = product.ApplyPatch(cmd.patch); err != nil {
		return err
	}

	if err = productRepo.Update(ctx, product); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
