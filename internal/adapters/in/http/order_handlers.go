package http

import (
	"errors"
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Orders handles GET /orders.
func (s *Server) Orders(c echo.Context) error {
	query, err := queries.NewGetOrdersQuery(callerFromContext(c))
	if err != nil {
		return respondError(c, err)
	}

	orders, err := s.handlers.GetOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"orders": orders})
}

// Order handles GET /orders/:id.
func (s *Server) Order(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return message(c, http.StatusNotFound, msgNotFound)
	}

	query, err := queries.NewGetOrderQuery(callerFromContext(c), id)
	if err != nil {
		return respondError(c, err)
	}

	ord, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"order": ord})
}

// CreateOrder handles POST /orders. Ordering to an address the caller does
// not own is denied; this endpoint reports the denial under the "error" key
// rather than the usual "message".
func (s *Server) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if bindErr := bindRequest(c, &req); bindErr != nil {
		return respondError(c, bindErr)
	}

	if validationErr := req.validate(); validationErr != nil {
		return respondError(c, validationErr)
	}

	cmd, err := commands.NewCreateOrderCommand(
		callerFromContext(c),
		*req.DeliveryMethodID,
		*req.PaymentMethodID,
		*req.AddressID,
		*req.Status,
		lineItemInputs(req.Products),
	)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrForbidden) {
			return c.JSON(http.StatusForbidden, errorResponse{Error: msgAccessDenied})
		}
		return respondError(c, err)
	}

	return message(c, http.StatusCreated, msgOrderCreated)
}

// UpdateOrder handles PATCH /orders/:id/edit.
func (s *Server) UpdateOrder(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return message(c, http.StatusNotFound, msgNotFound)
	}

	var req updateOrderRequest
	if bindErr := bindRequest(c, &req); bindErr != nil {
		return respondError(c, bindErr)
	}

	if validationErr := req.validate(); validationErr != nil {
		return respondError(c, validationErr)
	}

	patch := order.Patch{
		DeliveryMethodID: req.DeliveryMethodID,
		PaymentMethodID:  req.PaymentMethodID,
		AddressID:        req.AddressID,
		Status:           req.Status,
	}

	cmd, err := commands.NewUpdateOrderCommand(callerFromContext(c), id, patch, lineItemInputs(req.Products))
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.UpdateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return message(c, http.StatusOK, msgOrderUpdated)
}

// DeleteOrder handles DELETE /orders/:id.
func (s *Server) DeleteOrder(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return message(c, http.StatusNotFound, msgNotFound)
	}

	cmd, err := commands.NewDeleteOrderCommand(callerFromContext(c), id)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return message(c, http.StatusOK, msgOrderDeleted)
}

// lineItemInputs converts the request line items, keeping the distinction
// between an absent products list (nil) and a supplied empty one.
func lineItemInputs(items []orderLineItemRequest) []commands.LineItemInput {
	if items == nil {
		return nil
	}

	inputs := make([]commands.LineItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, commands.LineItemInput{
			ProductID: *item.ProductID,
			Quantity:  *item.Quantity,
		})
	}
	return inputs
}
