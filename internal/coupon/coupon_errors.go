package coupon

import (
	"net/http"

	"go-clothing-store/internal/pkg/apperror"
)

var (
	ErrCouponNotFound = apperror.New(
		apperror.CodeNotFound,
		"Coupon not found",
		http.StatusNotFound,
	)

	ErrInvalidDiscount = apperror.New(
		apperror.CodeValidation,
		"Discount value must be positive and a percentage cannot exceed 100",
		http.StatusBadRequest,
	)

	ErrInvalidValidity = apperror.New(
		apperror.CodeValidation,
		"valid_until must be after valid_from",
		http.StatusBadRequest,
	)

	ErrDuplicateCode = apperror.New(
		apperror.CodeConflict,
		"Coupon code already exists",
		http.StatusConflict,
	)
)
