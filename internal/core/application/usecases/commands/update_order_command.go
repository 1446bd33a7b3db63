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

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// ErrAddressNotAccessible is returned when an order update tries to move the
// order to an address the acting user does not own. The update path reports
// this as a validation failure rather than an authorization failure.
var ErrAddressNotAccessible = errors.New("address does not belong to the user")

// UpdateOrderCommand represents a partial update of an existing order. Every
// field is optional; line items are upserted by product, a zero quantity
// removes the line. A nil items slice means the request carried no products
// list at all, which leaves the stored line items and total untouched.
type UpdateOrderCommand struct {
	actor         access.Caller
	orderID       uint64
	patch         order.Patch
	items         []LineItemInput
	itemsSupplied bool

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates an order update command.
func NewUpdateOrderCommand(
	actor access.Caller,
	orderID uint64,
	patch order.Patch,
	items []LineItemInput,
) (UpdateOrderCommand, error) {
	if actor.IsAnonymous() {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("actor")
	}
	if orderID == 0 {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("orderID")
	}
	for _, item := range items {
		if item.ProductID == 0 {
			return UpdateOrderCommand{}, errs.NewValueIsRequiredError("product_id")
		}
		if item.Quantity < 0 {
			return UpdateOrderCommand{}, errs.NewValueIsInvalidError("quantity")
		}
	}

	return UpdateOrderCommand{
		actor:         actor,
		orderID:       orderID,
		patch:         patch,
		items:         append([]LineItemInput(nil), items...),
		itemsSupplied: items != nil,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// UpdateOrderCommandHandler applies a partial update to an order. Clients may
// only touch their own orders; Admins may touch any order, but an address
// change is still checked against the acting user's own addresses. When the
// command carries a line-items list, the total is recomputed over the full
// remaining set at current catalog prices; a scalar-only patch leaves the
// stored total as it is.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the order update command.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	existing, err := orderRepo.Get(ctx, cmd.orderID)
	if err != nil {
		return err
	}
	if !cmd.actor.IsAdmin() && !existing.OwnedBy(cmd.actor.ID) {
		return errs.NewForbiddenError()
	}

	if cmd.patch.AddressID != nil {
		addr, addrErr := uow.AddressRepository().Get(ctx, *cmd.patch.AddressID)
		if addrErr != nil {
			if errors.Is(addrErr, errs.ErrObjectNotFound) {
				return ErrAddressNotAccessible
			}
			return addrErr
		}
		if !addr.OwnedBy(cmd.actor.ID) {
			return ErrAddressNotAccessible
		}
	}

	methodRepo := uow.MethodRepository()
	if cmd.patch.DeliveryMethodID != nil {
		if _, err = methodRepo.Get(ctx, catalog.MethodKindDelivery, *cmd.patch.DeliveryMethodID); err != nil {
			return err
		}
	}
	if cmd.patch.PaymentMethodID != nil {
		if _, err = methodRepo.Get(ctx, catalog.MethodKindPayment, *cmd.patch.PaymentMethodID); err != nil {
			return err
		}
	}

	if err = existing.ApplyPatch(cmd.patch); err != nil {
		return err
	}

	if cmd.itemsSupplied {
		productRepo := uow.ProductRepository()
		prices := make(map[uint64]int64, len(cmd.items))
		for _, item := range cmd.items {
			if item.Quantity > 0 {
				product, productErr := productRepo.Get(ctx, item.ProductID)
				if productErr != nil {
					return productErr
				}
				prices[item.ProductID] = product.Price()
			}
			if err = existing.SetLineItem(item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		for _, line := range existing.LineItems() {
			if _, ok := prices[line.ProductID]; ok {
				continue
			}
			product, productErr := productRepo.Get(ctx, line.ProductID)
			if productErr != nil {
				return productErr
			}
			prices[line.ProductID] = product.Price()
		}

		if err = existing.RecalculateTotal(prices); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
