package commands

import (
	"context"
	"errors"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrDeleteProductCommandIsNotConstructed = errors.New(
	"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
)

// DeleteProductCommand represents a request to remove a product.
type DeleteProductCommand struct {
	productID uint64

	guard guard.ConstructorGuard
}

// NewDeleteProductCommand creates a product deletion command.
func NewDeleteProductCommand(productID uint64) (DeleteProductCommand, error) {
	if productID == 0 {
		return DeleteProductCommand{}, errs.NewValueIsRequiredError("productID")
	}

	return DeleteProductCommand{productID: productID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

// DeleteProductCommandHandler removes a product from the catalog.
type DeleteProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewDeleteProductCommandHandler creates a handler for product deletion.
func NewDeleteProductCommandHandler(uowFactory CatalogUoWFactory) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{uowFactory: uowFactory}
}

// Handle processes the product deletion command.
func (h *DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
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

	if _, err := productRepo.Get(ctx, cmd.productID); err != nil {
		return err
	}

	if err := productRepo.Delete(ctx, cmd.productID); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
