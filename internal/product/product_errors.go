package product

import (
	"net/http"

	"go-clothing-store/internal/pkg/apperror"
)

var (
	ErrProductNotFound = apperror.New(
		apperror.CodeNotFound,
		"Product not found",
		http.StatusNotFound,
	)

	ErrInvalidPrice = apperror.New(
		apperror.CodeValidation,
		"Price must be a non-negative number",
		http.StatusBadRequest,
	)

	ErrInvalidProduct = apperror.New(
		apperror.CodeValidation,
		"Name and category are required",
		http.StatusBadRequest,
	)

	ErrImageUpload = apperror.New(
		apperror.CodeUpstreamFailure,
		"Failed to upload product image",
		http.StatusBadGateway,
	)

	ErrSpecificationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Specification not found",
		http.StatusNotFound,
	)
)
