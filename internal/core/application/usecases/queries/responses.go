package queries

import "time"

// UserResponse is the public profile of a user, including role names.
type UserResponse struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Surname     string    `json:"surname"`
	Patronymic  string    `json:"patronymic"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Roles       []string  `json:"roles"`
}

// OwnerResponse is the public profile embedded in address and order reads.
// It carries no role information.
type OwnerResponse struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Surname     string    `json:"surname"`
	Patronymic  string    `json:"patronymic"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	DateOfBirth time.Time `json:"date_of_birth"`
}

// AddressResponse is a delivery address with its owner's public profile.
type AddressResponse struct {
	ID              uint64        `json:"id"`
	City            string        `json:"city"`
	Street          string        `json:"street"`
	HouseNumber     int           `json:"house_number"`
	ApartmentNumber *int          `json:"apartment_number"`
	Entrance        *string       `json:"entrance"`
	Floor           *int          `json:"floor"`
	Intercom        *int          `json:"intercom"`
	Gate            *bool         `json:"gate"`
	Comment         *string       `json:"comment"`
	UserID          uint64        `json:"user_id"`
	User            OwnerResponse `json:"user"`
}

// CategoryResponse is a product category.
type CategoryResponse struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// ProductResponse is a product with its category embedded.
type ProductResponse struct {
	ID          uint64           `json:"id"`
	Name        string           `json:"name"`
	Composition string           `json:"composition"`
	Calories    int              `json:"calories"`
	Price       int64            `json:"price"`
	CategoryID  uint64           `json:"category_id"`
	Category    CategoryResponse `json:"category"`
}

// MethodResponse is a payment or delivery method.
type MethodResponse struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// PivotResponse mirrors the order/product join row.
type PivotResponse struct {
	OrderID   uint64 `json:"order_id"`
	ProductID uint64 `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// OrderProductResponse is a product as it appears inside an order, carrying
// the join row with the ordered quantity.
type OrderProductResponse struct {
	ID          uint64        `json:"id"`
	Name        string        `json:"name"`
	Composition string        `json:"composition"`
	Calories    int           `json:"calories"`
	Price       int64         `json:"price"`
	Pivot       PivotResponse `json:"pivot"`
}

// OrderAddressResponse is the delivery address as embedded in an order read.
type OrderAddressResponse struct {
	ID              uint64  `json:"id"`
	City            string  `json:"city"`
	Street          string  `json:"street"`
	HouseNumber     int     `json:"house_number"`
	ApartmentNumber *int    `json:"apartment_number"`
	Entrance        *string `json:"entrance"`
	Floor           *int    `json:"floor"`
	Intercom        *int    `json:"intercom"`
	Gate            *bool   `json:"gate"`
	Comment         *string `json:"comment"`
}

// OrderResponse is a fully expanded order. Related entities are embedded and
// the raw foreign key columns are not exposed.
type OrderResponse struct {
	ID             uint64                 `json:"id"`
	Status         string                 `json:"status"`
	TotalAmount    int64                  `json:"total_amount"`
	User           OwnerResponse          `json:"user"`
	Address        OrderAddressResponse   `json:"address"`
	Products       []OrderProductResponse `json:"products"`
	PaymentMethod  MethodResponse         `json:"payment_method"`
	DeliveryMethod MethodResponse         `json:"delivery_method"`
}
