// Package address contains the delivery address entity. An address always
// belongs to exactly one user; ownership is the only business rule it enforces.
package address

import (
	"errors"

	"foodorder/internal/pkg/errs"
)

// ErrAddressIsNotConstructed is returned when an Address instance was not
// created through NewAddress or RestoreAddress.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is a delivery address owned by a user. City, street and house number
// are required; the remaining location details are optional.
type Address struct {
	id              uint64
	city            string
	street          string
	houseNumber     int
	apartmentNumber *int
	entrance        *string
	floor           *int
	intercom        *int
	gate            *bool
	comment         *string
	userID          uint64

	isConstructed bool
}

// Details carries the optional address attributes for creation and patching.
// Nil fields are left untouched when patching.
type Details struct {
	ApartmentNumber *int
	Entrance        *string
	Floor           *int
	Intercom        *int
	Gate            *bool
	Comment         *string
}

// Patch describes a partial address update. Nil fields keep their current value.
type Patch struct {
	City        *string
	Street      *string
	HouseNumber *int
	Details
}

// NewAddress creates an address owned by the given user.
func NewAddress(city, street string, houseNumber int, details Details, userID uint64) (*Address, error) {
	addr := &Address{isConstructed: true}

	if err := errors.Join(
		addr.setCity(city),
		addr.setStreet(street),
		addr.setHouseNumber(houseNumber),
		addr.setUserID(userID),
	); err != nil {
		return nil, err
	}

	addr.applyDetails(details)
	return addr, nil
}

// RestoreAddress reconstructs a persisted address.
func RestoreAddress(
	id uint64,
	city, street string,
	houseNumber int,
	details Details,
	userID uint64,
) (*Address, error) {
	addr, err := NewAddress(city, street, houseNumber, details, userID)
	if err != nil {
		return nil, err
	}

	addr.id = id
	return addr, nil
}

// Validate ensures the address was created through a constructor.
func (a *Address) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

// AssignID records the identifier generated by the store on first persist.
func (a *Address) AssignID(id uint64) error {
	if a.id != 0 {
		return errs.NewValueIsInvalidError("id")
	}
	a.id = id
	return nil
}

// OwnedBy reports whether the address belongs to the given user.
func (a *Address) OwnedBy(userID uint64) bool {
	return a.userID == userID
}

// ApplyPatch applies a partial update. Supplied required fields are validated
// with the same rules as on creation.
func (a *Address) ApplyPatch(patch Patch) error {
	if patch.City != nil {
		if err := a.setCity(*patch.City); err != nil {
			return err
		}
	}
	if patch.Street != nil {
		if err := a.setStreet(*patch.Street); err != nil {
			return err
		}
	}
	if patch.HouseNumber != nil {
		if err := a.setHouseNumber(*patch.HouseNumber); err != nil {
			return err
		}
	}

	a.applyDetails(patch.Details)
	return nil
}

func (a *Address) ID() uint64            { return a.id }
func (a *Address) City() string          { return a.city }
func (a *Address) Street() string        { return a.street }
func (a *Address) HouseNumber() int      { return a.houseNumber }
func (a *Address) ApartmentNumber() *int { return a.apartmentNumber }
func (a *Address) Entrance() *string     { return a.entrance }
func (a *Address) Floor() *int           { return a.floor }
func (a *Address) Intercom() *int        { return a.intercom }
func (a *Address) Gate() *bool           { return a.gate }
func (a *Address) Comment() *string      { return a.comment }
func (a *Address) UserID() uint64        { return a.userID }

func (a *Address) applyDetails(details Details) {
	if details.ApartmentNumber != nil {
		a.apartmentNumber = details.ApartmentNumber
	}
	if details.Entrance != nil {
		a.entrance = details.Entrance
	}
	if details.Floor != nil {
		a.floor = details.Floor
	}
	if details.Intercom != nil {
		a.intercom = details.Intercom
	}
	if details.Gate != nil {
		a.gate = details.Gate
	}
	if details.Comment != nil {
		a.comment = details.Comment
	}
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setHouseNumber(houseNumber int) error {
	if houseNumber <= 0 {
		return errs.NewValueIsInvalidError("house_number")
	}
	a.houseNumber = houseNumber
	return nil
}

func (a *Address) setUserID(userID uint64) error {
	if userID == 0 {
		return errs.NewValueIsRequiredError("user_id")
	}
	a.userID = userID
	return nil
}
