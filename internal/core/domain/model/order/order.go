package order

import (
	"errors"

	"foodorder/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrPriceUnknown is returned by RecalculateTotal when a line item's product
	// is missing from the supplied price list.
	ErrPriceUnknown = errors.New("price is unknown for a line item product")
)

// LineItem is one product line within an order. Identity is the product: an
// order holds at most one line item per product.
type LineItem struct {
	ProductID uint64
	Quantity  int
}

// Order is the aggregate root for a customer order. It owns the line item set
// and the derived total amount.
//
// The total is not live-recomputed on read: it is updated only by
// RecalculateTotal during mutations that touch line items, so a persisted order
// is stale until the next write that changes its items.
type Order struct {
	id               uint64
	userID           uint64
	deliveryMethodID uint64
	paymentMethodID  uint64
	addressID        uint64
	status           string
	totalAmount      int64
	items            []LineItem
	itemsTouched     bool

	isConstructed bool
}

// Patch describes a partial update of the order's scalar fields.
// Nil fields keep their current value.
type Patch struct {
	DeliveryMethodID *uint64
	PaymentMethodID  *uint64
	AddressID        *uint64
	Status           *string
}

// NewOrder creates an order for the given user with an empty line item set.
// All references and the initial status are required.
func NewOrder(userID, deliveryMethodID, paymentMethodID, addressID uint64, status string) (*Order, error) {
	order := &Order{isConstructed: true}

	if err := errors.Join(
		order.setUserID(userID),
		order.setDeliveryMethodID(deliveryMethodID),
		order.setPaymentMethodID(paymentMethodID),
		order.setAddressID(addressID),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs a persisted order including its line items and the
// stored total.
func RestoreOrder(
	id, userID, deliveryMethodID, paymentMethodID, addressID uint64,
	status string,
	totalAmount int64,
	items []LineItem,
) (*Order, error) {
	order, err := NewOrder(userID, deliveryMethodID, paymentMethodID, addressID, status)
	if err != nil {
		return nil, err
	}

	order.id = id
	order.totalAmount = totalAmount
	order.items = append([]LineItem(nil), items...)
	return order, nil
}

// Validate ensures the order was created through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// AssignID records the identifier generated by the store on first persist.
func (o *Order) AssignID(id uint64) error {
	if o.id != 0 {
		return errs.NewValueIsInvalidError("id")
	}
	o.id = id
	return nil
}

// OwnedBy reports whether the order belongs to the given user.
func (o *Order) OwnedBy(userID uint64) bool {
	return o.userID == userID
}

// SetLineItem upserts the quantity for a product. A quantity of zero removes
// the line item if present; a negative quantity is invalid.
func (o *Order) SetLineItem(productID uint64, quantity int) error {
	if productID == 0 {
		return errs.NewValueIsRequiredError("product_id")
	}
	if quantity < 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	o.itemsTouched = true

	if quantity == 0 {
		o.removeLineItem(productID)
		return nil
	}

	for i := range o.items {
		if o.items[i].ProductID == productID {
			o.items[i].Quantity = quantity
			return nil
		}
	}

	o.items = append(o.items, LineItem{ProductID: productID, Quantity: quantity})
	return nil
}

// RecalculateTotal recomputes the total amount over the order's full current
// line item set using the supplied product prices. Every line item's product
// must be present in the price list.
func (o *Order) RecalculateTotal(prices map[uint64]int64) error {
	var total int64
	for _, item := range o.items {
		price, ok := prices[item.ProductID]
		if !ok {
			return ErrPriceUnknown
		}
		total += int64(item.Quantity) * price
	}

	o.totalAmount = total
	return nil
}

// ApplyPatch applies a partial update of the scalar fields with the same
// validation as on creation.
func (o *Order) ApplyPatch(patch Patch) error {
	if patch.DeliveryMethodID != nil {
		if err := o.setDeliveryMethodID(*patch.DeliveryMethodID); err != nil {
			return err
		}
	}
	if patch.PaymentMethodID != nil {
		if err := o.setPaymentMethodID(*patch.PaymentMethodID); err != nil {
			return err
		}
	}
	if patch.AddressID != nil {
		if err := o.setAddressID(*patch.AddressID); err != nil {
			return err
		}
	}
	if patch.Status != nil {
		if err := o.setStatus(*patch.Status); err != nil {
			return err
		}
	}
	return nil
}

func (o *Order) ID() uint64               { return o.id }
func (o *Order) UserID() uint64           { return o.userID }
func (o *Order) DeliveryMethodID() uint64 { return o.deliveryMethodID }
func (o *Order) PaymentMethodID() uint64  { return o.paymentMethodID }
func (o *Order) AddressID() uint64        { return o.addressID }
func (o *Order) Status() string           { return o.status }
func (o *Order) TotalAmount() int64       { return o.totalAmount }

// LineItems returns a copy of the order's current line item set.
func (o *Order) LineItems() []LineItem {
	return append([]LineItem(nil), o.items...)
}

// LineItemsTouched reports whether SetLineItem was called since the order was
// constructed or restored. The store uses it to skip rewriting an unchanged
// line item set.
func (o *Order) LineItemsTouched() bool {
	return o.itemsTouched
}

func (o *Order) removeLineItem(productID uint64) {
	for i := range o.items {
		if o.items[i].ProductID == productID {
			o.items = append(o.items[:i], o.items[i+1:]...)
			return
		}
	}
}

func (o *Order) setUserID(userID uint64) error {
	if userID == 0 {
		return errs.NewValueIsRequiredError("user_id")
	}
	o.userID = userID
	return nil
}

func (o *Order) setDeliveryMethodID(id uint64) error {
	if id == 0 {
		return errs.NewValueIsRequiredError("delivery_method_id")
	}
	o.deliveryMethodID = id
	return nil
}

func (o *Order) setPaymentMethodID(id uint64) error {
	if id == 0 {
		return errs.NewValueIsRequiredError("payment_method_id")
	}
	o.paymentMethodID = id
	return nil
}

func (o *Order) setAddressID(id uint64) error {
	if id == 0 {
		return errs.NewValueIsRequiredError("address_id")
	}
	o.addressID = id
	return nil
}

func (o *Order) setStatus(status string) error {
	if status == "" {
		return errs.NewValueIsRequiredError("status")
	}
	o.status = status
	return nil
}
