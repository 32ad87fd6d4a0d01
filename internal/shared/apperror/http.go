package apperror

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// HTTPError is what a handler writes into the response envelope.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details map[string]string
}

// ToHTTP translates any error coming out of a service into a uniform
// HTTPError. Unknown errors collapse to 500 without leaking internals.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		details := map[string]string{"error": appErr.Message}
		if appErr.Err != nil {
			details["error"] = appErr.Err.Error()
		}
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: details,
		}
	}

	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		return MapValidationError(vErrs)
	}

	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: ErrInternal.Message,
		Details: map[string]string{"error": ErrInternal.Message},
	}
}

// MapBindingError classifies a gin binding failure: a validator error means
// the body parsed but violated field constraints, anything else means the
// body was missing or unparsable.
func MapBindingError(err error) HTTPError {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		return MapValidationError(vErrs)
	}

	return HTTPError{
		Status:  http.StatusBadRequest,
		Code:    CodeMalformedRequest,
		Message: "Bad Request",
		Details: map[string]string{
			"error":   "Bad Request",
			"Message": "Required request body is missing or malformed.",
			"Details": err.Error(),
		},
	}
}
