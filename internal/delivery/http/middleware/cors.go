package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS - Cross-Origin Resource Sharing for the browser frontend.
// Credentials are only allowed for an explicit origin list.
func CORS(allowOrigins string) fiber.Handler {
	if allowOrigins == "" {
		allowOrigins = "*"
	}
	return cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Content-Type,Accept,Accept-Language",
		ExposeHeaders:    fiber.HeaderXRequestID,
		AllowCredentials: allowOrigins != "*",
	})
}
