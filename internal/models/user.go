package models

import "time"

const (
	RoleAdmin     = "admin"
	RoleManager   = "manager"
	RoleOperator  = "operator"
	RoleInventory = "inventory"
)

var Roles = []string{RoleAdmin, RoleManager, RoleOperator, RoleInventory}

type User struct {
	ID                 uint      `gorm:"primaryKey"`
	Username           string    `gorm:"uniqueIndex;not null"`
	Email              string    `gorm:"uniqueIndex;not null"`
	PasswordHash       string    `gorm:"not null"`
	Role               string    `gorm:"not null;default:operator"`
	MustChangePassword bool      `gorm:"not null;default:false"`
	CreatedAt          time.Time `gorm:"not null"`
}
