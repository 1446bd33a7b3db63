package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/application/access"
	"foodorder/internal/core/domain/model/address"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrUpdateAddressCommandIsNotConstructed = errors.New(
	"UpdateAddressCommand must be created via NewUpdateAddressCommand constructor",
)

// UpdateAddressCommand represents a partial update of an existing address.
type UpdateAddressCommand struct {
	actor     access.Caller
	addressID uint64
	patch     address.Patch

	guard guard.ConstructorGuard
}

// NewUpdateAddressCommand creates an address update command.
func NewUpdateAddressCommand(actor access.Caller, addressID uint64, patch address.Patch) (UpdateAddressCommand, error) {
	if actor.IsAnonymous() {
		return UpdateAddressCommand{}, errs.NewValueIsRequiredError("actor")
	}
	if addressID == 0 {
		return UpdateAddressCommand{}, errs.NewValueIsRequiredError("addressID")
	}

	return UpdateAddressCommand{
		actor:     actor,
		addressID: addressID,
		patch:     patch,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAddressCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAddressCommandIsNotConstructed)
}

// UpdateAddressCommandHandler applies a partial update to an address.
// A Client may only touch their own addresses; an Admin may touch any.
type UpdateAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

// NewUpdateAddressCommandHandler creates a handler for address updates.
func NewUpdateAddressCommandHandler(uowFactory AddressUoWFactory) UpdateAddressCommandHandler {
	return UpdateAddressCommandHandler{uowFactory: uowFactory}
}

// Handle processes the address update command.
func (h *UpdateAddressCommandHandler) Handle(ctx context.Context, cmd UpdateAddressCommand) error {
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

	if err = addr.ApplyPatch(cmd.patch); err != nil {
		return err
	}

	if err = addressRepo.Update(ctx, addr); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
