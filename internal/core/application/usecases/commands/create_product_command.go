package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to add a product to the catalog.
type CreateProductCommand struct {
	name        string
	composition string
	calories    int
	price       int64
	categoryID  uint64

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a product creation command. Field rules are
// the Product constructor rules.
func NewCreateProductCommand(name, composition string, calories int, price int64, categoryID uint64) (CreateProductCommand, error) {
	if _, err := catalog.NewProduct(name, composition, calories, price, categoryID); err != nil {
		return CreateProductCommand{}, err
	}

	return CreateProductCommand{
		name:        name,
		composition: composition,
		calories:    calories,
		price:       price,
		categoryID:  categoryID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// CreateProductCommandHandler persists a new product after verifying that the
// referenced category exists.
type CreateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product creation.
func NewCreateProductCommandHandler(uowFactory CatalogUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{uowFactory: uowFactory}
}

// Handle processes the product creation command.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
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

	if _, err := uow.CategoryRepository().Get(ctx, cmd.categoryID); err != nil {
		return err
	}

	product, err := catalog.NewProduct(cmd.name, cmd.composition, cmd.calories, cmd.price, cmd.categoryID)
	if err != nil {
		return err
	}

	if err = uow.ProductRepository().Add(ctx, product); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
