package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go-clothing-store/internal/pkg/apperror"
)

// APIError is any non-2xx answer of the store API, or a transport failure
// when Status is 0.
type APIError struct {
	Status  int
	Message string
	// Fields holds 422 field errors keyed by input name.
	Fields map[string][]string
	Err    error
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("store api: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("store api returned %d: %s", e.Status, e.Message)
}

// Unwrap exposes both the AppError view used by HTTP handlers and the
// transport cause.
func (e *APIError) Unwrap() []error {
	errs := []error{e.appError()}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func (e *APIError) appError() *apperror.AppError {
	switch {
	case e.Status == 0:
		return apperror.New(apperror.CodeUpstreamFailure, "Store service is unreachable", http.StatusBadGateway)
	case e.Status == http.StatusUnauthorized:
		return apperror.New(apperror.CodeSessionExpired, "Your session has expired, please sign in again", http.StatusUnauthorized).
			WithDetails(map[string]string{"redirect": "/signin"})
	case e.Status == http.StatusForbidden:
		return apperror.New(apperror.CodeForbidden, messageOr(e.Message, "Access forbidden"), http.StatusForbidden)
	case e.Status == http.StatusNotFound:
		return apperror.New(apperror.CodeNotFound, messageOr(e.Message, "Resource not found"), http.StatusNotFound)
	case e.Status == http.StatusConflict:
		return apperror.New(apperror.CodeConflict, messageOr(e.Message, "Conflict"), http.StatusConflict)
	case e.Status == http.StatusUnprocessableEntity:
		return apperror.New(apperror.CodeValidation, messageOr(e.Message, "The given data was invalid"), http.StatusUnprocessableEntity).
			WithDetails(e.Fields)
	case e.Status >= 500:
		return apperror.New(apperror.CodeUpstreamFailure, "Store service failed to process the request", http.StatusBadGateway)
	default:
		return apperror.New(apperror.CodeInvalidInput, messageOr(e.Message, "Invalid request"), e.Status)
	}
}

func messageOr(msg, fallback string) string {
	if strings.TrimSpace(msg) == "" {
		return fallback
	}
	return msg
}

func parseError(status int, raw []byte) *APIError {
	var body struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
		Error   *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	apiErr := &APIError{Status: status}
	if err := json.Unmarshal(raw, &body); err != nil {
		msg := strings.TrimSpace(string(raw))
		if len(msg) > 300 {
			msg = msg[:300]
		}
		apiErr.Message = msg
		return apiErr
	}

	apiErr.Message = body.Message
	if apiErr.Message == "" && body.Error != nil {
		apiErr.Message = body.Error.Message
	}
	apiErr.Fields = body.Errors
	return apiErr
}

func statusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return -1
}

func IsUnauthorized(err error) bool {
	return statusOf(err) == http.StatusUnauthorized
}

func IsNotFound(err error) bool {
	return statusOf(err) == http.StatusNotFound
}

func IsConflict(err error) bool {
	return statusOf(err) == http.StatusConflict
}

func IsValidation(err error) bool {
	return statusOf(err) == http.StatusUnprocessableEntity
}

func IsNetwork(err error) bool {
	return statusOf(err) == 0
}

// IsRejected reports a 4xx answer other than 401: the API understood the
// request and refused it.
func IsRejected(err error) bool {
	s := statusOf(err)
	return s >= 400 && s < 500 && s != http.StatusUnauthorized
}
