package utils

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"github.com/restaurant-explorer/internal/pkg/errors"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func SendSuccess(c *fiber.Ctx, data interface{}) error {
	return c.JSON(data)
}

// SendError writes AppErrors with their own status and message. Anything else
// is an unexpected failure and becomes a 500 carrying the error text.
func SendError(c *fiber.Ctx, err error) error {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr.Message,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: err.Error(),
	})
}
