package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/application/access"
	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// LineItemInput is one requested product line: a product and a quantity.
type LineItemInput struct {
	ProductID uint64
	Quantity  int
}

// CreateOrderCommand represents a request to place an order. The supplied
// address must belong to the acting user; Admins are bound by the same rule.
type CreateOrderCommand struct {
	actor            access.Caller
	deliveryMethodID uint64
	paymentMethodID  uint64
	addressID        uint64
	status           string
	items            []LineItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates an order creation command. Delivery method,
// payment method, address and initial status are all required.
func NewCreateOrderCommand(
	actor access.Caller,
	deliveryMethodID, paymentMethodID, addressID uint64,
	status string,
	items []LineItemInput,
) (CreateOrderCommand, error) {
	if actor.IsAnonymous() {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("actor")
	}
	if deliveryMethodID == 0 {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("delivery_method_id")
	}
	if paymentMethodID == 0 {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("payment_method_id")
	}
	if addressID == 0 {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("address_id")
	}
	if status == "" {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("status")
	}
	for _, item := range items {
		if item.ProductID == 0 {
			return CreateOrderCommand{}, errs.NewValueIsRequiredError("product_id")
		}
		if item.Quantity < 0 {
			return CreateOrderCommand{}, errs.NewValueIsInvalidError("quantity")
		}
	}

	return CreateOrderCommand{
		actor:            actor,
		deliveryMethodID: deliveryMethodID,
		paymentMethodID:  paymentMethodID,
		addressID:        addressID,
		status:           status,
		items:            append([]LineItemInput(nil), items...),
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CreateOrderCommandHandler places an order: it checks address ownership,
// resolves every referenced product and persists the order together with its
// line items and computed total in one transaction. Either the whole order is
// stored or nothing is.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the order creation command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	// Address ownership is checked against the acting user even for Admins.
	// On the create path a violation is an authorization failure.
	addr, err := uow.AddressRepository().Get(ctx, cmd.addressID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewForbiddenErrorWithCause(err)
		}
		return err
	}
	if !addr.OwnedBy(cmd.actor.ID) {
		return errs.NewForbiddenError()
	}

	methodRepo := uow.MethodRepository()
	if _, err = methodRepo.Get(ctx, catalog.MethodKindDelivery, cmd.deliveryMethodID); err != nil {
		return err
	}
	if _, err = methodRepo.Get(ctx, catalog.MethodKindPayment, cmd.paymentMethodID); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.actor.ID, cmd.deliveryMethodID, cmd.paymentMethodID, cmd.addressID, cmd.status,
	)
	if err != nil {
		return err
	}

	productRepo := uow.ProductRepository()
	prices := make(map[uint64]int64, len(cmd.items))
	for _, item := range cmd.items {
		product, productErr := productRepo.Get(ctx, item.ProductID)
		if productErr != nil {
			return productErr
		}
		prices[item.ProductID] = product.Price()

		if err = newOrder.SetLineItem(item.ProductID, item.Quantity); err != nil {
			return err
		}
	}

	if err = newOrder.RecalculateTotal(prices); err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
