package customer

import (
	"net/http"

	"go-clothing-store/internal/pkg/apperror"
)

var (
	ErrCustomerNotFound = apperror.New(
		apperror.CodeNotFound,
		"Customer not found",
		http.StatusNotFound,
	)

	ErrEmailAlreadyUsed = apperror.New(
		apperror.CodeConflict,
		"Email already registered",
		http.StatusConflict,
	)

	ErrPasswordMismatch = apperror.New(
		apperror.CodeValidation,
		"Password confirmation does not match",
		http.StatusBadRequest,
	)

	ErrPasswordTooShort = apperror.New(
		apperror.CodeValidation,
		"Password must be at least 8 characters",
		http.StatusBadRequest,
	)

	ErrInvalidAmount = apperror.New(
		apperror.CodeValidation,
		"Recharge amount must be greater than zero",
		http.StatusBadRequest,
	)

	ErrCannotDeleteSelf = apperror.New(
		apperror.CodeForbidden,
		"You cannot delete your own account",
		http.StatusForbidden,
	)

	ErrRechargeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Recharge request not found",
		http.StatusNotFound,
	)
)
