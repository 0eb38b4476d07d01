package repository

import (
	"context"

	"github.com/restaurant-explorer/internal/domain"
)

// RestaurantProvider is a source of restaurants near a free-text location.
// Implementations absorb their own upstream failures and report them as an
// empty result; a returned error means something unexpected happened.
type RestaurantProvider interface {
	// Name is the source tag put on every record the provider produces.
	Name() string
	SearchRestaurants(ctx context.Context, location string, radius int) ([]domain.Restaurant, error)
}

// ProviderRegistry resolves a provider identifier from a request.
type ProviderRegistry interface {
	Provider(key string) (RestaurantProvider, bool)
}
