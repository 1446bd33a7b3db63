// Package addressrepo persists delivery address entities.
package addressrepo

import (
	"foodorder/internal/adapters/out/postgres/userrepo"
	"foodorder/internal/core/domain/model/address"
)

// AddressDTO represents the database structure for persisting addresses.
// Optional attributes are nullable columns.
type AddressDTO struct {
	ID              uint64 `gorm:"primaryKey"`
	City            string
	Street          string
	HouseNumber     int
	ApartmentNumber *int
	Entrance        *string
	Floor           *int
	Intercom        *int
	Gate            *bool
	Comment         *string
	UserID          uint64 `gorm:"index"`

	User *userrepo.UserDTO `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for addresses.
func (AddressDTO) TableName() string {
	return "addresses"
}

func fromDomain(addr *address.Address) AddressDTO {
	return AddressDTO{
		ID:              addr.ID(),
		City:            addr.City(),
		Street:          addr.Street(),
		HouseNumber:     addr.HouseNumber(),
		ApartmentNumber: addr.ApartmentNumber(),
		Entrance:        addr.Entrance(),
		Floor:           addr.Floor(),
		Intercom:        addr.Intercom(),
		Gate:            addr.Gate(),
		Comment:         addr.Comment(),
		UserID:          addr.UserID(),
	}
}

func toDomain(dto AddressDTO) (*address.Address, error) {
	details := address.Details{
		ApartmentNumber: dto.ApartmentNumber,
		Entrance:        dto.Entrance,
		Floor:           dto.Floor,
		Intercom:        dto.Intercom,
		Gate:            dto.Gate,
		Comment:         dto.Comment,
	}

	return address.RestoreAddress(dto.ID, dto.City, dto.Street, dto.HouseNumber, details, dto.UserID)
}
