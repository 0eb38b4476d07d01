package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "INVALID_INPUT: Location is required", ErrLocationRequired.Error())
}

func TestAppError_WithMessageCopies(t *testing.T) {
	err := ErrUnsupportedProvider.WithMessage("Unsupported provider: zomato")

	assert.Equal(t, "Unsupported provider: zomato", err.Message)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "Unsupported provider", ErrUnsupportedProvider.Message)
}
