package cart

import (
	"errors"
	"net/http"

	"go-clothing-store/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidQty = apperror.New(
		apperror.CodeInvalidInput,
		"Quantity must be between 1 and 99",
		http.StatusBadRequest,
	)

	ErrCartItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"Cart item not found",
		http.StatusNotFound,
	)

	ErrCartUnavailable = apperror.New(
		apperror.CodeInternalError,
		"Cart is temporarily unavailable",
		http.StatusInternalServerError,
	)
)

// MapValidationError turns validator output into a VALIDATION_ERROR carrying
// the failing fields.
func MapValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.Wrap(err, apperror.CodeValidation, "Invalid input", http.StatusBadRequest)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return apperror.New(apperror.CodeValidation, "Invalid input", http.StatusBadRequest).WithDetails(fields)
}
