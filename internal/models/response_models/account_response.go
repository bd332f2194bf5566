package response_models

import (
	"time"

	"coursepulse/internal/models/db_models"
)

// AccountResponse is the password-hash-free projection of a user record.
type AccountResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	Blocked     bool       `json:"blocked"`
	Phone       string     `json:"phone"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
	Address     string     `json:"address"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type LoginResponse struct {
	Token string          `json:"token"`
	User  AccountResponse `json:"user"`
}

func NewAccountResponse(u *db_models.User) AccountResponse {
	return AccountResponse{
		ID:          u.ID.String(),
		Name:        u.Name,
		Email:       u.Email,
		Role:        string(u.Role),
		Blocked:     u.Blocked,
		Phone:       u.Phone,
		DateOfBirth: u.DateOfBirth,
		Address:     u.Address,
		CreatedAt:   u.CreatedAt,
	}
}
