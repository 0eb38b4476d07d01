package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/restaurant-explorer/internal/pkg/utils"
	"github.com/restaurant-explorer/internal/usecase/dto"
)

const (
	serviceMessage = "Restaurant Data Explorer API"
	serviceVersion = "1.0"
)

// InfoHandler - service description and liveness
type InfoHandler struct{}

func NewInfoHandler() *InfoHandler {
	return &InfoHandler{}
}

// Index godoc
// @Summary Service description
// @Tags Info
// @Produce json
// @Success 200 {object} dto.ServiceInfo
// @Router / [get]
func (h *InfoHandler) Index(c *fiber.Ctx) error {
	return utils.SendSuccess(c, dto.ServiceInfo{
		Message: serviceMessage,
		Version: serviceVersion,
		Endpoints: map[string]string{
			"POST /api/restaurants": "Fetch restaurant data",
			"GET /api/health":       "Health check",
		},
	})
}

// Health godoc
// @Summary Health check
// @Tags Info
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /api/health [get]
func (h *InfoHandler) Health(c *fiber.Ctx) error {
	return utils.SendSuccess(c, dto.HealthResponse{Status: "ok"})
}
