package category

import (
	"net/http"

	"go-clothing-store/internal/pkg/apperror"
)

var (
	ErrCategoryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Category not found",
		http.StatusNotFound,
	)

	ErrCategoryNameRequired = apperror.New(
		apperror.CodeValidation,
		"Category name is required",
		http.StatusBadRequest,
	)
)
