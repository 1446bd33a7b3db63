package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/application/access"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrDeleteAddressCommandIsNotConstructed = errors.New(
	"DeleteAddressCommand must be created via NewDeleteAddressCommand constructor",
)

// DeleteAddressCommand represents a request to remove an address.
type DeleteAddressCommand struct {
	actor     access.Caller
	addressID uint64

	guard guard.ConstructorGuard
}

// NewDeleteAddressCommand creates an address deletion command.
func NewDeleteAddressCommand(actor access.Caller, addressID uint64) (DeleteAddressCommand, error) {
	if actor.IsAnonymous() {
		return DeleteAddressCommand{}, errs.NewValueIsRequiredError("actor")
	}
	if addressID == 0 {
		return DeleteAddressCommand{}, errs.NewValueIsRequiredError("addressID")
	}

	return DeleteAddressCommand{
		actor:     actor,
		addressID: addressID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteAddressCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAddressCommandIsNotConstructed)
}

// DeleteAddressCommandHandler removes an address. Orders referencing the
// address cascade away at the store level.
type DeleteAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

// NewDeleteAddressCommandHandler creates a handler for address deletion.
func NewDeleteAddressCommandHandler(uowFactory AddressUoWFactory) DeleteAddressCommandHandler {
	return DeleteAddressCommandHandler{uowFactory: uowFactory}
}

// Handle processes the address deletion command.
func (h *DeleteAddressCommandHandler) Handle(ctx context.Context, cmd DeleteAddressCommand) error {
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

	addressRepo := uow.AddressRepository()

	addr, err := addressRepo.Get(ctx, cmd.addressID)
	if err != nil {
		return err
	}

	if !cmd.actor.IsAdmin() && !addr.OwnedBy(cmd.actor.ID) {
		return errs.NewForbiddenError()
	}

	if err = addressRepo.Delete(ctx, cmd.addressID); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
