package customer

import (
	"time"

	"go-clothing-store/internal/apiclient"

	"github.com/shopspring/decimal"
)

type UpdateProfileRequest struct {
	Name    *string `json:"name" binding:"omitempty,max=100"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone" binding:"omitempty,max=30"`
	Address *string `json:"address" binding:"omitempty,max=500"`
}

type UpdatePasswordRequest struct {
	CurrentPassword      string `json:"current_password" binding:"required"`
	Password             string `json:"password" binding:"required"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required"`
}

type RechargeRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// UpdateUserRequest is the admin edit of another account.
type UpdateUserRequest struct {
	Name    *string `json:"name" binding:"omitempty,max=100"`
	Email   *string `json:"email" binding:"omitempty,email"`
	IsAdmin *bool   `json:"is_admin"`
}

type CustomerResponse struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Phone   string          `json:"phone,omitempty"`
	Address string          `json:"address,omitempty"`
	Role    string          `json:"role"`
	IsAdmin bool            `json:"is_admin"`
	Balance decimal.Decimal `json:"balance"`
}

type BalanceResponse struct {
	Balance   decimal.Decimal `json:"balance"`
	CheckedAt time.Time       `json:"checked_at"`
}

func ToCustomerResponse(u apiclient.User) CustomerResponse {
	return CustomerResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Phone:   u.Phone,
		Address: u.Address,
		Role:    u.Role,
		IsAdmin: u.IsAdmin,
		Balance: u.Balance,
	}
}
