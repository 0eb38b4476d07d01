package dto

import (
	"time"

	"github.com/goccy/go-json"
)

// RestaurantSearchResponse - successful answer of POST /api/restaurants
type RestaurantSearchResponse struct {
	Success         bool                  `json:"success"`
	Location        string                `json:"location"`
	RestaurantCount int                   `json:"restaurant_count"`
	Restaurants     []ProjectedRestaurant `json:"restaurants"`
	APIProvider     string                `json:"api_provider"`
	FetchedAt       time.Time             `json:"fetched_at"`
}

// ProjectedRestaurant is the outward view of a restaurant. Name, address and
// source are always written. MapLink is written only when set. Rating is
// written whenever RatingIncluded is true, as null if the value is missing.
type ProjectedRestaurant struct {
	Name           string
	Address        string
	Source         string
	MapLink        *string
	Rating         *float64
	RatingIncluded bool
}

type projectedRestaurantJSON struct {
	Name    string  `json:"name"`
	MapLink *string `json:"map_link,omitempty"`
	Address string  `json:"address"`
	Source  string  `json:"source"`
}

type ratedRestaurantJSON struct {
	Name    string   `json:"name"`
	MapLink *string  `json:"map_link,omitempty"`
	Rating  *float64 `json:"rating"`
	Address string   `json:"address"`
	Source  string   `json:"source"`
}

func (p ProjectedRestaurant) MarshalJSON() ([]byte, error) {
	if p.RatingIncluded {
		return json.Marshal(ratedRestaurantJSON{
			Name:    p.Name,
			MapLink: p.MapLink,
			Rating:  p.Rating,
			Address: p.Address,
			Source:  p.Source,
		})
	}
	return json.Marshal(projectedRestaurantJSON{
		Name:    p.Name,
		MapLink: p.MapLink,
		Address: p.Address,
		Source:  p.Source,
	})
}

// ServiceInfo - body of GET /
type ServiceInfo struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// HealthResponse - body of GET /api/health
type HealthResponse struct {
	Status string `json:"status"`
}
