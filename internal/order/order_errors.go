package order

import (
	"net/http"

	"go-clothing-store/internal/pkg/apperror"
)

var (
	ErrEmptyCart = apperror.New(
		apperror.CodeInvalidInput,
		"Your cart is empty",
		http.StatusBadRequest,
	)

	ErrInvalidCheckout = apperror.New(
		apperror.CodeValidation,
		"Invalid checkout data",
		http.StatusBadRequest,
	)

	ErrOrderNotFound = apperror.New(
		apperror.CodeNotFound,
		"Order not found",
		http.StatusNotFound,
	)

	ErrInsufficientBalance = apperror.New(
		"INSUFFICIENT_BALANCE",
		"Balance is not enough to pay this order",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidInput,
		"Order status cannot change that way",
		http.StatusBadRequest,
	)

	ErrOrderNotPayable = apperror.New(
		apperror.CodeConflict,
		"Order is not awaiting an online payment",
		http.StatusConflict,
	)

	ErrPaymentUnavailable = apperror.New(
		apperror.CodeUpstreamFailure,
		"Payment gateway is unavailable",
		http.StatusBadGateway,
	)

	ErrInvalidSignature = apperror.New(
		apperror.CodeForbidden,
		"Invalid notification signature",
		http.StatusForbidden,
	)

	ErrGrossAmountMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"Gross amount does not match the order total",
		http.StatusBadRequest,
	)

	ErrNotificationsDisabled = apperror.New(
		"NOTIFICATIONS_DISABLED",
		"Payment notifications are not configured",
		http.StatusServiceUnavailable,
	)
)
