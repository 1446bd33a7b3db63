package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/application/access"
	"foodorder/internal/core/domain/model/address"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrCreateAddressCommandIsNotConstructed = errors.New(
	"CreateAddressCommand must be created via NewCreateAddressCommand constructor",
)

// CreateAddressCommand represents a request to add a delivery address.
// The owner is always the acting caller, never a client-supplied field.
type CreateAddressCommand struct {
	actor       access.Caller
	city        string
	street      string
	houseNumber int
	details     address.Details

	guard guard.ConstructorGuard
}

// NewCreateAddressCommand creates an address creation command.
func NewCreateAddressCommand(
	actor access.Caller,
	city, street string,
	houseNumber int,
	details address.Details,
) (CreateAddressCommand, error) {
	if actor.IsAnonymous() {
		return CreateAddressCommand{}, errs.NewValueIsRequiredError("actor")
	}
	if city == "" {
		return CreateAddressCommand{}, errs.NewValueIsRequiredError("city")
	}
	if street == "" {
		return CreateAddressCommand{}, errs.NewValueIsRequiredError("street")
	}
	if houseNumber <= 0 {
		return CreateAddressCommand{}, errs.NewValueIsInvalidError("house_number")
	}

	return CreateAddressCommand{
		actor:       actor,
		city:        city,
		street:      street,
		houseNumber: houseNumber,
		details:     details,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAddressCommand) Validate() error {
	return c.guard.Validate(ErrCreateAddressCommandIsNotConstructed)
}

// CreateAddressCommandHandler persists a new address owned by the caller.
type CreateAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

// NewCreateAddressCommandHandler creates a handler for address creation.
func NewCreateAddressCommandHandler(uowFactory AddressUoWFactory) CreateAddressCommandHandler {
	return CreateAddressCommandHandler{uowFactory: uowFactory}
}

// Handle processes the address creation command.
func (h *CreateAddressCommandHandler) Handle(ctx context.Context, cmd CreateAddressCommand) error {
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

	addr, err := address.NewAddress(cmd.city, cmd.street, cmd.houseNumber, cmd.details, cmd.actor.ID)
	if err != nil {
		return err
	}

	if err = uow.AddressRepository().Add(ctx, addr); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
