// Package userrepo persists user aggregates and their role assignments.
package userrepo

import (
	"time"

	"foodorder/internal/core/domain/model/account"
)

// UserDTO represents the database structure for persisting users.
type UserDTO struct {
	ID          uint64 `gorm:"primaryKey"`
	Name        string
	Surname     string
	Patronymic  string
	Email       string `gorm:"uniqueIndex"`
	Password    string
	Phone       string
	DateOfBirth time.Time
	Roles       []RoleDTO `gorm:"many2many:user_roles;joinForeignKey:UserID;joinReferences:RoleID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for users.
func (UserDTO) TableName() string {
	return "users"
}

// RoleDTO represents a row of the seeded role lookup table.
type RoleDTO struct {
	ID   uint64 `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex"`
}

// TableName specifies the database table name for roles.
func (RoleDTO) TableName() string {
	return "roles"
}

func fromDomain(user *account.User) UserDTO {
	return UserDTO{
		ID:          user.ID(),
		Name:        user.Name(),
		Surname:     user.Surname(),
		Patronymic:  user.Patronymic(),
		Email:       user.Email(),
		Password:    user.PasswordHash(),
		Phone:       user.Phone(),
		DateOfBirth: user.DateOfBirth(),
	}
}

func toDomain(dto UserDTO) (*account.User, error) {
	roles := make([]account.Role, 0, len(dto.Roles))
	for _, roleDTO := range dto.Roles {
		role, err := account.ParseRole(roleDTO.Name)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}

	return account.RestoreUser(
		dto.ID,
		dto.Name,
		dto.Surname,
		dto.Patronymic,
		dto.Email,
		dto.Password,
		dto.Phone,
		dto.DateOfBirth,
		roles,
	)
}
