package review

import (
	"net/http"

	"go-clothing-store/internal/pkg/apperror"
)

var (
	ErrReviewNotFound = apperror.New(
		apperror.CodeNotFound,
		"Review not found",
		http.StatusNotFound,
	)

	ErrInvalidRating = apperror.New(
		apperror.CodeValidation,
		"Rating must be between 1 and 5",
		http.StatusBadRequest,
	)

	ErrAlreadyReviewed = apperror.New(
		apperror.CodeConflict,
		"You already reviewed this product",
		http.StatusConflict,
	)
)
