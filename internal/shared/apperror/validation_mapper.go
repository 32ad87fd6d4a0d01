package apperror

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError turns validator failures into a 400 with one
// diagnostic entry per offending field.
func MapValidationError(errs validator.ValidationErrors) HTTPError {
	details := make(map[string]string, len(errs))
	for _, e := range errs {
		field := e.Field()
		switch e.Tag() {
		case "required":
			details[field] = formatFieldName(field) + " is required"
		default:
			details[field] = formatFieldName(field) + " is invalid"
		}
	}

	return HTTPError{
		Status:  http.StatusBadRequest,
		Code:    CodeInvalidInput,
		Message: "Invalid request content",
		Details: details,
	}
}
