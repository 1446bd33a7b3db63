package catalog

import (
	"errors"

	"foodorder/internal/pkg/errs"
)

// ErrMethodIsNotConstructed is returned when a Method was not created
// through NewMethod or RestoreMethod.
var ErrMethodIsNotConstructed = errors.New("Method must be created via NewMethod constructor")

// MethodKind distinguishes the two name-only lookup tables that share the same
// shape and operations: payment methods and delivery methods.
type MethodKind string

const (
	// MethodKindPayment targets the payment_methods table.
	MethodKindPayment MethodKind = "payment"

	// MethodKindDelivery targets the delivery_methods table.
	MethodKindDelivery MethodKind = "delivery"
)

// Validate reports whether the kind is one of the two known lookup tables.
func (k MethodKind) Validate() error {
	if k != MethodKindPayment && k != MethodKindDelivery {
		return errs.NewValueIsInvalidError("method kind")
	}
	return nil
}

// Method is a payment or delivery method: a pure lookup record with a name.
type Method struct {
	id   uint64
	kind MethodKind
	name string

	isConstructed bool
}

// NewMethod creates a lookup method of the given kind.
func NewMethod(kind MethodKind, name string) (*Method, error) {
	method := &Method{isConstructed: true}

	if err := errors.Join(
		method.setKind(kind),
		method.setName(name),
	); err != nil {
		return nil, err
	}

	return method, nil
}

// RestoreMethod reconstructs a persisted method.
func RestoreMethod(id uint64, kind MethodKind, name string) (*Method, error) {
	method, err := NewMethod(kind, name)
	if err != nil {
		return nil, err
	}
	method.id = id
	return method, nil
}

// Validate ensures the method was created through a constructor.
func (m *Method) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMethodIsNotConstructed
	}
	return nil
}

// AssignID records the identifier generated by the store on first persist.
func (m *Method) AssignID(id uint64) error {
	if m.id != 0 {
		return errs.NewValueIsInvalidError("id")
	}
	m.id = id
	return nil
}

// Rename changes the method name with the same rules as on creation.
func (m *Method) Rename(name string) error {
	return m.setName(name)
}

func (m *Method) ID() uint64       { return m.id }
func (m *Method) Kind() MethodKind { return m.kind }
func (m *Method) Name() string     { return m.name }

func (m *Method) setKind(kind MethodKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	m.kind = kind
	return nil
}

func (m *Method) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}
