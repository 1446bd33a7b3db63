// Package orderrepo persists order aggregates together with their line items.
package orderrepo

import (
	"foodorder/internal/adapters/out/postgres/addressrepo"
	"foodorder/internal/adapters/out/postgres/catalogrepo"
	"foodorder/internal/adapters/out/postgres/userrepo"
	"foodorder/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting orders. Deleting
// the owning user, the address or either method cascades to the order.
type OrderDTO struct {
	ID               uint64 `gorm:"primaryKey"`
	UserID           uint64 `gorm:"index"`
	AddressID        uint64 `gorm:"index"`
	PaymentMethodID  uint64 `gorm:"index"`
	DeliveryMethodID uint64 `gorm:"index"`
	Status           string
	TotalAmount      int64

	User           *userrepo.UserDTO              `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Address        *addressrepo.AddressDTO        `gorm:"foreignKey:AddressID;constraint:OnDelete:CASCADE"`
	PaymentMethod  *catalogrepo.PaymentMethodDTO  `gorm:"foreignKey:PaymentMethodID;constraint:OnDelete:CASCADE"`
	DeliveryMethod *catalogrepo.DeliveryMethodDTO `gorm:"foreignKey:DeliveryMethodID;constraint:OnDelete:CASCADE"`
	Items          []OrderProductDTO              `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for orders.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderProductDTO represents one line item row. A product appears at most
// once per order.
type OrderProductDTO struct {
	OrderID   uint64 `gorm:"primaryKey;autoIncrement:false"`
	ProductID uint64 `gorm:"primaryKey;autoIncrement:false"`
	Quantity  int

	Product *catalogrepo.ProductDTO `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order line items.
func (OrderProductDTO) TableName() string {
	return "order_products"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderProductDTO, 0, len(aggregate.LineItems()))
	for _, item := range aggregate.LineItems() {
		items = append(items, OrderProductDTO{
			OrderID:   aggregate.ID(),
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return OrderDTO{
		ID:               aggregate.ID(),
		UserID:           aggregate.UserID(),
		AddressID:        aggregate.AddressID(),
		PaymentMethodID:  aggregate.PaymentMethodID(),
		DeliveryMethodID: aggregate.DeliveryMethodID(),
		Status:           aggregate.Status(),
		TotalAmount:      aggregate.TotalAmount(),
		Items:            items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]order.LineItem, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, order.LineItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return order.RestoreOrder(
		dto.ID,
		dto.UserID,
		dto.DeliveryMethodID,
		dto.PaymentMethodID,
		dto.AddressID,
		dto.Status,
		dto.TotalAmount,
		items,
	)
}
