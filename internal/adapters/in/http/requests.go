package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Request validation mirrors the framework-default messages the API has
// always produced: "The <field> field is required." and friends, keyed by the
// raw field name in a 422 errors map.

const dateOfBirthLayout = "2006-01-02"

// bindRequest decodes the JSON body into dst. A mistyped field is reported in
// the same 422 errors map as a missing one. A body that cannot be decoded at
// all leaves dst zero-valued and returns nil, so the field validators report
// every required field instead.
func bindRequest(c echo.Context, dst any) *errs.ValidationError {
	err := c.Bind(dst)
	if err == nil {
		return nil
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Internal != nil {
		err = httpErr.Internal
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		v := errs.NewValidationError()
		v.Add(typeErr.Field, typeMismatchMsg(typeErr.Field, typeErr.Type))
		return v
	}

	return nil
}

func typeMismatchMsg(field string, want reflect.Type) string {
	for want.Kind() == reflect.Pointer {
		want = want.Elem()
	}

	label := fieldLabel(field)
	switch want.Kind() {
	case reflect.String:
		return fmt.Sprintf("The %s must be a string.", label)
	case reflect.Bool:
		return fmt.Sprintf("The %s field must be true or false.", label)
	default:
		return fmt.Sprintf("The %s must be an integer.", label)
	}
}

func fieldLabel(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}

func requiredMsg(field string) string {
	return fmt.Sprintf("The %s field is required.", fieldLabel(field))
}

func minCharsMsg(field string, n int) string {
	return fmt.Sprintf("The %s must be at least %d characters.", fieldLabel(field), n)
}

func emailMsg(field string) string {
	return fmt.Sprintf("The %s must be a valid email address.", fieldLabel(field))
}

func dateMsg(field string) string {
	return fmt.Sprintf("The %s is not a valid date.", fieldLabel(field))
}

func requireString(v *errs.ValidationError, field, value string) {
	if value == "" {
		v.Add(field, requiredMsg(field))
	}
}

type registerRequest struct {
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Patronymic  string `json:"patronymic"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"date_of_birth"`
}

// validate checks the registration payload and parses the date of birth.
func (r registerRequest) validate() (time.Time, *errs.ValidationError) {
	v := errs.NewValidationError()

	requireString(v, "name", r.Name)
	requireString(v, "surname", r.Surname)
	requireString(v, "patronymic", r.Patronymic)
	requireString(v, "phone", r.Phone)

	if r.Email == "" {
		v.Add("email", requiredMsg("email"))
	} else if !strings.Contains(r.Email, "@") {
		v.Add("email", emailMsg("email"))
	}

	if r.Password == "" {
		v.Add("password", requiredMsg("password"))
	} else if len(r.Password) < 6 {
		v.Add("password", minCharsMsg("password", 6))
	}

	var dateOfBirth time.Time
	if r.DateOfBirth == "" {
		v.Add("date_of_birth", requiredMsg("date_of_birth"))
	} else {
		parsed, err := time.Parse(dateOfBirthLayout, r.DateOfBirth)
		if err != nil {
			v.Add("date_of_birth", dateMsg("date_of_birth"))
		} else {
			dateOfBirth = parsed
		}
	}

	if v.HasErrors() {
		return time.Time{}, v
	}
	return dateOfBirth, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginRequest) validate() *errs.ValidationError {
	v := errs.NewValidationError()

	if r.Email == "" {
		v.Add("email", requiredMsg("email"))
	} else if !strings.Contains(r.Email, "@") {
		v.Add("email", emailMsg("email"))
	}
	requireString(v, "password", r.Password)

	if v.HasErrors() {
		return v
	}
	return nil
}

type createAddressRequest struct {
	City            *string `json:"city"`
	Street          *string `json:"street"`
	HouseNumber     *int    `json:"house_number"`
	ApartmentNumber *int    `json:"apartment_number"`
	Entrance        *string `json:"entrance"`
	Floor           *int    `json:"floor"`
	Intercom        *int    `json:"intercom"`
	Gate            *bool   `json:"gate"`
	Comment         *string `json:"comment"`
}

func (r createAddressRequest) validate() *errs.ValidationError {
	v := errs.NewValidationError()

	if r.City == nil || *r.City == "" {
		v.Add("city", requiredMsg("city"))
	}
	if r.Street == nil || *r.Street == "" {
		v.Add("street", requiredMsg("street"))
	}
	if r.HouseNumber == nil {
		v.Add("house_number", requiredMsg("house_number"))
	}

	if v.HasErrors() {
		return v
	}
	return nil
}

type updateAddressRequest struct {
	City            *string `json:"city"`
	Street          *string `json:"street"`
	HouseNumber     *int    `json:"house_number"`
	ApartmentNumber *int    `json:"apartment_number"`
	Entrance        *string `json:"entrance"`
	Floor           *int    `json:"floor"`
	Intercom        *int    `json:"intercom"`
	Gate            *bool   `json:"gate"`
	Comment         *string `json:"comment"`
}

type categoryRequest struct {
	Name *string `json:"name"`
}

func (r categoryRequest) validateCreate() *errs.ValidationError {
	v := errs.NewValidationError()

	if r.Name == nil || *r.Name == "" {
		v.Add("name", requiredMsg("name"))
	} else if len([]rune(*r.Name)) < 3 {
		v.Add("name", minCharsMsg("name", 3))
	}

	if v.HasErrors() {
		return v
	}
	return nil
}

func (r categoryRequest) validateUpdate() *errs.ValidationError {
	v := errs.NewValidationError()

	if r.Name != nil && len([]rune(*r.Name)) < 3 {
		v.Add("name", minCharsMsg("name", 3))
	}

	if v.HasErrors() {
		return v
	}
	return nil
}

type createProductRequest struct {
	Name        *string `json:"name"`
	Composition *string `json:"composition"`
	Calories    *int    `json:"calories"`
	Price       *int64  `json:"price"`
	CategoryID  *uint64 `json:"category_id"`
}

func (r createProductRequest) validate() *errs.ValidationError {
	v := errs.NewValidationError()

	if r.Name == nil || *r.Name == "" {
		v.Add("name", requiredMsg("name"))
	}
	if r.Composition == nil || *r.Composition == "" {
		v.Add("composition", requiredMsg("composition"))
	}
	if r.Calories == nil {
		v.Add("calories", requiredMsg("calories"))
	}
	if r.Price == nil {
		v.Add("price", requiredMsg("price"))
	}
	if r.CategoryID == nil {
		v.Add("category_id", requiredMsg("category_id"))
	}

	if v.HasErrors() {
		return v
	}
	return nil
}

type updateProductRequest struct {
	Name        *string `json:"name"`
	Composition *string `json:"composition"`
	Calories    *int    `json:"calories"`
	Price       *int64  `json:"price"`
	CategoryID  *uint64 `json:"category_id"`
}

type methodRequest struct {
	Name *string `json:"name"`
}

// validate covers both create and update: the name is required on every
// method write.
func (r methodRequest) validate() *errs.ValidationError {
	v := errs.NewValidationError()

	if r.Name == nil || *r.Name == "" {
		v.Add("name", requiredMsg("name"))
	}

	if v.HasErrors() {
		return v
	}
	return nil
}

type orderLineItemRequest struct {
	ProductID *uint64 `json:"product_id"`
	Quantity  *int    `json:"quantity"`
}

type createOrderRequest struct {
	DeliveryMethodID *uint64                `json:"delivery_method_id"`
	PaymentMethodID  *uint64                `json:"payment_method_id"`
	AddressID        *uint64                `json:"address_id"`
	Status           *string                `json:"status"`
	Products         []orderLineItemRequest `json:"products"`
}

func (r createOrderRequest) validate() *errs.ValidationError {
	v := errs.NewValidationError()

	if r.DeliveryMethodID == nil {
		v.Add("delivery_method_id", requiredMsg("delivery_method_id"))
	}
	if r.PaymentMethodID == nil {
		v.Add("payment_method_id", requiredMsg("payment_method_id"))
	}
	if r.AddressID == nil {
		v.Add("address_id", requiredMsg("address_id"))
	}
	if r.Status == nil || *r.Status == "" {
		v.Add("status", requiredMsg("status"))
	}
	validateLineItems(v, r.Products)

	if v.HasErrors() {
		return v
	}
	return nil
}

type updateOrderRequest struct {
	DeliveryMethodID *uint64                `json:"delivery_method_id"`
	PaymentMethodID  *uint64                `json:"payment_method_id"`
	AddressID        *uint64                `json:"address_id"`
	Status           *string                `json:"status"`
	Products         []orderLineItemRequest `json:"products"`
}

func (r updateOrderRequest) validate() *errs.ValidationError {
	v := errs.NewValidationError()
	validateLineItems(v, r.Products)

	if v.HasErrors() {
		return v
	}
	return nil
}

func validateLineItems(v *errs.ValidationError, items []orderLineItemRequest) {
	for i, item := range items {
		if item.ProductID == nil {
			field := fmt.Sprintf("products.%d.product_id", i)
			v.Add(field, fmt.Sprintf("The products.%d.product_id field is required.", i))
		}
		if item.Quantity == nil {
			field := fmt.Sprintf("products.%d.quantity", i)
			v.Add(field, fmt.Sprintf("The products.%d.quantity field is required.", i))
		}
	}
}
