package errors

import "net/http"

const (
	CodeInvalidInput        = "INVALID_INPUT"
	CodeUnsupportedProvider = "UNSUPPORTED_PROVIDER"
)

var (
	ErrLocationRequired = New(
		CodeInvalidInput,
		"Location is required",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		CodeInvalidInput,
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrUnsupportedProvider = New(
		CodeUnsupportedProvider,
		"Unsupported provider",
		http.StatusBadRequest,
	)
)
