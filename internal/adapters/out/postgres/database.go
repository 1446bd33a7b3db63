package postgres

import (
	"foodorder/internal/adapters/out/postgres/addressrepo"
	"foodorder/internal/adapters/out/postgres/catalogrepo"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/adapters/out/postgres/tokenrepo"
	"foodorder/internal/adapters/out/postgres/userrepo"
	"foodorder/internal/core/domain/model/account"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Migrate creates or updates the schema for every persisted aggregate and
// seeds the role lookup table. Dependencies are migrated before their
// dependents so the cascade constraints can be created.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&userrepo.UserDTO{},
		&userrepo.RoleDTO{},
		&tokenrepo.TokenDTO{},
		&addressrepo.AddressDTO{},
		&catalogrepo.CategoryDTO{},
		&catalogrepo.ProductDTO{},
		&catalogrepo.PaymentMethodDTO{},
		&catalogrepo.DeliveryMethodDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderProductDTO{},
	)
	if err != nil {
		return err
	}

	return seedRoles(db)
}

// seedRoles makes sure the two assignable roles exist. Reruns are no-ops.
func seedRoles(db *gorm.DB) error {
	roles := []userrepo.RoleDTO{
		{ID: 1, Name: string(account.RoleAdmin)},
		{ID: 2, Name: string(account.RoleClient)},
	}

	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&roles).Error
}
