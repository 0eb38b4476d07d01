package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/restaurant-explorer/internal/pkg/utils"
	"github.com/restaurant-explorer/internal/usecase"
	"github.com/restaurant-explorer/internal/usecase/dto"
	"go.uber.org/zap"
)

// RestaurantHandler - restaurant search endpoint
type RestaurantHandler struct {
	restaurantUC *usecase.RestaurantUseCase
	logger       *zap.Logger
}

// NewRestaurantHandler - create a new RestaurantHandler
func NewRestaurantHandler(restaurantUC *usecase.RestaurantUseCase, logger *zap.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantUC: restaurantUC,
		logger:       logger,
	}
}

// Search godoc
// @Summary Fetch restaurants near a location
// @Description Geocodes the location, lists nearby restaurants from the selected provider and trims each record to the requested fields. Provider failures yield an empty list, not an error.
// @Tags Restaurants
// @Accept json
// @Produce json
// @Param request body dto.RestaurantSearchRequest true "Location, provider, radius and optional fields"
// @Success 200 {object} dto.RestaurantSearchResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/restaurants [post]
func (h *RestaurantHandler) Search(c *fiber.Ctx) error {
	var req dto.RestaurantSearchRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Warn("Failed to parse restaurant request body", zap.Error(err))
		if field := dto.InvalidField(c.Body()); field != "" {
			return utils.SendError(c, fmt.Errorf("invalid request body: %s", field))
		}
		return utils.SendError(c, fmt.Errorf("invalid request body: %w", err))
	}

	result, err := h.restaurantUC.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result)
}
