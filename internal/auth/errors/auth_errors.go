package autherrors

import (
	"net/http"

	"go-clothing-store/internal/pkg/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Email or password is incorrect",
		http.StatusUnauthorized,
	)

	ErrNotSignedIn = apperror.New(
		apperror.CodeUnauthorized,
		"Please sign in to continue",
		http.StatusUnauthorized,
	).WithDetails(map[string]string{"redirect": "/signin"})

	ErrSessionExpired = apperror.New(
		apperror.CodeSessionExpired,
		"Your session has expired, please sign in again",
		http.StatusUnauthorized,
	).WithDetails(map[string]string{"redirect": "/signin"})

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

	ErrSessionUnavailable = apperror.New(
		apperror.CodeInternalError,
		"Could not start your session, please try again",
		http.StatusInternalServerError,
	)
)

var ErrInvalidInput = apperror.New(
	apperror.CodeValidation,
	"Invalid input",
	http.StatusBadRequest,
)
