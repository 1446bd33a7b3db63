package queries

import (
	"context"
	"errors"

	"foodorder/internal/core/application/access"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

const orderSelect = `
	SELECT
		o.id,
		o.status,
		o.total_amount,
		u.id,
		u.name,
		u.surname,
		u.patronymic,
		u.email,
		u.phone,
		u.date_of_birth,
		a.id,
		a.city,
		a.street,
		a.house_number,
		a.apartment_number,
		a.entrance,
		a.floor,
		a.intercom,
		a.gate,
		a.comment,
		pm.id,
		pm.name,
		dm.id,
		dm.name
	FROM orders o
	JOIN users u ON u.id = o.user_id
	JOIN addresses a ON a.id = o.address_id
	JOIN payment_methods pm ON pm.id = o.payment_method_id
	JOIN delivery_methods dm ON dm.id = o.delivery_method_id
`

// GetOrdersQuery lists orders in expanded form. Admins see every order,
// Clients only their own.
type GetOrdersQuery struct {
	actor access.Caller

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates an order listing query for the given caller.
func NewGetOrdersQuery(actor access.Caller) (GetOrdersQuery, error) {
	if actor.IsAnonymous() {
		return GetOrdersQuery{}, errs.NewValueIsRequiredError("actor")
	}

	return GetOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// GetOrdersQueryHandler reads orders with owner, address, line items and
// method names embedded.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by order ID.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := orderSelect
	args := make([]any, 0, 1)
	if !query.actor.IsAdmin() {
		stmt += " WHERE o.user_id = ?"
		args = append(args, query.actor.ID)
	}
	stmt += " ORDER BY o.id"

	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	index := make(map[uint64]int)
	for rows.Next() {
		order, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		index[order.ID] = len(orders)
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	if err = attachLineItems(ctx, h.db, orders, index); err != nil {
		return nil, err
	}

	return orders, nil
}

func scanOrderRow(row rowScanner) (OrderResponse, error) {
	order := OrderResponse{Products: make([]OrderProductResponse, 0)}
	err := row.Scan(
		&order.ID,
		&order.Status,
		&order.TotalAmount,
		&order.User.ID,
		&order.User.Name,
		&order.User.Surname,
		&order.User.Patronymic,
		&order.User.Email,
		&order.User.Phone,
		&order.User.DateOfBirth,
		&order.Address.ID,
		&order.Address.City,
		&order.Address.Street,
		&order.Address.HouseNumber,
		&order.Address.ApartmentNumber,
		&order.Address.Entrance,
		&order.Address.Floor,
		&order.Address.Intercom,
		&order.Address.Gate,
		&order.Address.Comment,
		&order.PaymentMethod.ID,
		&order.PaymentMethod.Name,
		&order.DeliveryMethod.ID,
		&order.DeliveryMethod.Name,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	return order, nil
}

// attachLineItems loads the join rows and their products for the given orders
// and distributes them by order ID.
func attachLineItems(ctx context.Context, db *gorm.DB, orders []OrderResponse, index map[uint64]int) error {
	ids := make([]uint64, 0, len(orders))
	for _, order := range orders {
		ids = append(ids, order.ID)
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			op.order_id,
			op.product_id,
			op.quantity,
			p.id,
			p.name,
			p.composition,
			p.calories,
			p.price
		FROM order_products op
		JOIN products p ON p.id = op.product_id
		WHERE op.order_id IN ?
		ORDER BY op.order_id, op.product_id
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderProductResponse
		err = rows.Scan(
			&item.Pivot.OrderID,
			&item.Pivot.ProductID,
			&item.Pivot.Quantity,
			&item.ID,
			&item.Name,
			&item.Composition,
			&item.Calories,
			&item.Price,
		)
		if err != nil {
			return err
		}

		if i, ok := index[item.Pivot.OrderID]; ok {
			orders[i].Products = append(orders[i].Products, item)
		}
	}

	return rows.Err()
}
