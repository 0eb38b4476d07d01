package usecase

import (
	"github.com/restaurant-explorer/internal/domain"
	"github.com/restaurant-explorer/internal/usecase/dto"
)

// Project trims restaurants down to the fields the caller selected. Order is
// preserved and the result is never nil.
func Project(restaurants []domain.Restaurant, sel domain.FieldSelection) []dto.ProjectedRestaurant {
	result := make([]dto.ProjectedRestaurant, 0, len(restaurants))
	for _, r := range restaurants {
		p := dto.ProjectedRestaurant{
			Name:    r.Name,
			Address: r.Address,
			Source:  r.Source,
		}
		if sel.Map && r.MapLink != nil {
			p.MapLink = r.MapLink
		}
		if sel.Rating {
			p.Rating = r.Rating
			p.RatingIncluded = true
		}
		result = append(result, p)
	}
	return result
}
