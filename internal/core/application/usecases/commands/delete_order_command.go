package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/application/access"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand represents a request to remove an order.
type DeleteOrderCommand struct {
	actor   access.Caller
	orderID uint64

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates an order deletion command.
func NewDeleteOrderCommand(actor access.Caller, orderID uint64) (DeleteOrderCommand, error) {
	if actor.IsAnonymous() {
		return DeleteOrderCommand{}, errs.NewValueIsRequiredError("actor")
	}
	if orderID == 0 {
		return DeleteOrderCommand{}, errs.NewValueIsRequiredError("orderID")
	}

	return DeleteOrderCommand{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// DeleteOrderCommandHandler removes an order together with its line items.
// Clients may delete only their own orders; Admins may delete any.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the order deletion command.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	if err = orderRepo.Delete(ctx, cmd.orderID); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
