package auth

import "go-clothing-store/internal/session"

const MinPasswordLength = 8

type RegisterRequest struct {
	Name                 string `json:"name" binding:"required" validate:"required,max=100"`
	Email                string `json:"email" binding:"required,email" validate:"required,email"`
	Password             string `json:"password" binding:"required" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required" validate:"eqfield=Password"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token                string `json:"token" binding:"required"`
	Email                string `json:"email" binding:"required,email"`
	Password             string `json:"password" binding:"required" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required" validate:"eqfield=Password"`
}

type AuthResponse struct {
	User *session.User `json:"user"`
	// AccessToken and SessionID are only returned to non-browser clients,
	// which send them back as Authorization and X-Session-ID headers.
	AccessToken string `json:"access_token,omitempty"`
	SessionID   string `json:"session_id,omitempty"`
}

type MeResponse struct {
	Authenticated bool          `json:"authenticated"`
	User          *session.User `json:"user"`
}

type ActionStatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
