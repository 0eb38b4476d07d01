package provider

import (
	"sort"

	"github.com/restaurant-explorer/internal/config"
	"github.com/restaurant-explorer/internal/domain/repository"
	"github.com/restaurant-explorer/internal/infrastructure/geoapify"
	"go.uber.org/zap"
)

// Registry maps provider identifiers to implementations. It is filled at
// startup and read-only afterwards.
type Registry struct {
	providers map[string]repository.RestaurantProvider
}

func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[string]repository.RestaurantProvider),
	}
}

// Register adds p under key, replacing any previous registration.
func (r *Registry) Register(key string, p repository.RestaurantProvider) {
	r.providers[key] = p
}

// Provider looks up key. Keys are matched exactly.
func (r *Registry) Provider(key string) (repository.RestaurantProvider, bool) {
	p, ok := r.providers[key]
	return p, ok
}

// Keys returns the registered identifiers in sorted order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.providers))
	for k := range r.providers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NewDefaultRegistry registers every provider that has an implementation.
// Credentials for providers without one are only reported.
func NewDefaultRegistry(cfg *config.Config, logger *zap.Logger) *Registry {
	r := NewRegistry()
	r.Register(geoapify.ProviderKey, geoapify.NewClient(&cfg.Geoapify, logger))

	if cfg.Geoapify.APIKey == "" {
		logger.Warn("GEOAPIFY_API_KEY is not set, geoapify requests will be rejected upstream")
	}
	if cfg.Providers.ZomatoAPIKey != "" {
		logger.Info("Zomato credential configured but no zomato provider is implemented")
	}
	if cfg.Providers.GoogleAPIKey != "" {
		logger.Info("Google credential configured but no google provider is implemented")
	}

	logger.Info("Restaurant providers registered", zap.Strings("providers", r.Keys()))
	return r
}
