package dto

import (
	"math"

	"github.com/goccy/go-json"
	"github.com/restaurant-explorer/internal/domain"
)

// DefaultRadius - search radius in meters when the request omits one
const DefaultRadius = 5000

// RestaurantSearchRequest - body of POST /api/restaurants
type RestaurantSearchRequest struct {
	Location    string                `json:"location" validate:"required" example:"Mumbai"`
	APIProvider string                `json:"api_provider,omitempty" example:"geoapify"`
	Radius      *int                  `json:"radius,omitempty" example:"5000"`
	Fields      domain.FieldSelection `json:"fields"`
}

// InvalidField names the first request field whose JSON type is wrong, or
// returns "" when the body is not a JSON object or every field is usable.
func InvalidField(body []byte) string {
	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return ""
	}

	switch {
	case !isStringOrNull(raw["location"]):
		return "location must be a string"
	case !isStringOrNull(raw["api_provider"]):
		return "api_provider must be a string"
	case !isIntegerOrNull(raw["radius"]):
		return "radius must be an integer number of meters"
	case !isFlagsOrNull(raw["fields"]):
		return "fields must be an object of booleans"
	}
	return ""
}

func isStringOrNull(v interface{}) bool {
	if v == nil {
		return true
	}
	_, ok := v.(string)
	return ok
}

func isIntegerOrNull(v interface{}) bool {
	if v == nil {
		return true
	}
	n, ok := v.(float64)
	return ok && n == math.Trunc(n)
}

func isFlagsOrNull(v interface{}) bool {
	if v == nil {
		return true
	}
	flags, ok := v.(map[string]interface{})
	if !ok {
		return false
	}
	for _, flag := range flags {
		if flag == nil {
			continue
		}
		if _, ok := flag.(bool); !ok {
			return false
		}
	}
	return true
}
