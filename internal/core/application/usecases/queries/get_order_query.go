package queries

import (
	"context"
	"database/sql"
	"errors"

	"foodorder/internal/core/application/access"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one expanded order. Clients may only read their own.
type GetOrderQuery struct {
	actor   access.Caller
	orderID uint64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a single-order query for the given caller.
func NewGetOrderQuery(actor access.Caller, orderID uint64) (GetOrderQuery, error) {
	if actor.IsAnonymous() {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("actor")
	}
	if orderID == 0 {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("orderID")
	}

	return GetOrderQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// GetOrderQueryHandler reads one order with its relations embedded.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. A Client asking for someone else's order gets an
// authorization failure, not a not-found.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(orderSelect+" WHERE o.id = ?", query.orderID).Row()

	order, err := scanOrderRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, errs.NewObjectNotFoundError("orderID", query.orderID)
		}
		return OrderResponse{}, err
	}

	if !query.actor.IsAdmin() && order.User.ID != query.actor.ID {
		return OrderResponse{}, errs.NewForbiddenError()
	}

	orders := []OrderResponse{order}
	if err = attachLineItems(ctx, h.db, orders, map[uint64]int{order.ID: 0}); err != nil {
		return OrderResponse{}, err
	}

	return orders[0], nil
}
