package db_models

import "time"

// Role is a closed enumeration; free-form role strings are never accepted.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleAdmin
}

type User struct {
	BaseModel
	Name         string     `gorm:"not null" json:"name"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"` // stored lowercase
	PasswordHash string     `gorm:"not null" json:"-"`
	Role         Role       `gorm:"type:varchar(16);not null;default:student" json:"role"`
	Blocked      bool       `gorm:"not null;default:false" json:"blocked"`
	Phone        string     `gorm:"default:''" json:"phone"`
	DateOfBirth  *time.Time `json:"dateOfBirth"`
	Address      string     `gorm:"default:''" json:"address"`
}
