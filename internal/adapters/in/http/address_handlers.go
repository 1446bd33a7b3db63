package http

import (
	"net/http"
	"strconv"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/address"

	"github.com/labstack/echo/v4"
)

// pathID parses the :id route parameter. A non-numeric id is treated the same
// as a missing record.
func pathID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// Addresses handles GET /addresses.
func (s *Server) Addresses(c echo.Context) error {
	query, err := queries.NewGetAddressesQuery(callerFromContext(c))
	if err != nil {
		return respondError(c, err)
	}

	addresses, err := s.handlers.GetAddresses.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"addresses": addresses})
}

// Address handles GET /addresses/:id.
func (s *Server) Address(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return message(c, http.StatusNotFound, msgNotFound)
	}

	query, err := queries.NewGetAddressQuery(callerFromContext(c), id)
	if err != nil {
		return respondError(c, err)
	}

	addr, err := s.handlers.GetAddress.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"address": addr})
}

// CreateAddress handles POST /addresses. The address is always attached to
// the caller.
func (s *Server) CreateAddress(c echo.Context) error {
	var req createAddressRequest
	if bindErr := bindRequest(c, &req); bindErr != nil {
		return respondError(c, bindErr)
	}

	if validationErr := req.validate(); validationErr != nil {
		return respondError(c, validationErr)
	}

	details := address.Details{
		ApartmentNumber: req.ApartmentNumber,
		Entrance:        req.Entrance,
		Floor:           req.Floor,
		Intercom:        req.Intercom,
		Gate:            req.Gate,
		Comment:         req.Comment,
	}

	cmd, err := commands.NewCreateAddressCommand(
		callerFromContext(c), *req.City, *req.Street, *req.HouseNumber, details,
	)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.CreateAddress.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return message(c, http.StatusCreated, msgAddressCreated)
}

// UpdateAddress handles PATCH /addresses/:id/edit.
func (s *Server) UpdateAddress(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return message(c, http.StatusNotFound, msgNotFound)
	}

	var req updateAddressRequest
	if bindErr := bindRequest(c, &req); bindErr != nil {
		return respondError(c, bindErr)
	}

	patch := address.Patch{
		City:        req.City,
		Street:      req.Street,
		HouseNumber: req.HouseNumber,
		Details: address.Details{
			ApartmentNumber: req.ApartmentNumber,
			Entrance:        req.Entrance,
			Floor:           req.Floor,
			Intercom:        req.Intercom,
			Gate:            req.Gate,
			Comment:         req.Comment,
		},
	}

	cmd, err := commands.NewUpdateAddressCommand(callerFromContext(c), id, patch)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.UpdateAddress.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return message(c, http.StatusOK, msgAddressUpdated)
}

// DeleteAddress handles DELETE /addresses/:id.
func (s *Server) DeleteAddress(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return message(c, http.StatusNotFound, msgNotFound)
	}

	cmd, err := commands.NewDeleteAddressCommand(callerFromContext(c), id)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.DeleteAddress.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return message(c, http.StatusOK, msgAddressDeleted)
}
