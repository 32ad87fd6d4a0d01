package apperror

import "net/http"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource Not Found",
		http.StatusNotFound,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"Invalid request content",
		http.StatusBadRequest,
	)

	ErrMalformedBody = New(
		CodeMalformedRequest,
		"Bad Request",
		http.StatusBadRequest,
	)
)
