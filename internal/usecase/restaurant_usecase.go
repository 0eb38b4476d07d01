package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/restaurant-explorer/internal/domain"
	"github.com/restaurant-explorer/internal/domain/repository"
	"github.com/restaurant-explorer/internal/pkg/errors"
	"github.com/restaurant-explorer/internal/pkg/validator"
	"github.com/restaurant-explorer/internal/usecase/dto"
	"go.uber.org/zap"
)

type RestaurantUseCase struct {
	providers       repository.ProviderRegistry
	logger          *zap.Logger
	defaultProvider string
	strict          bool
	now             func() time.Time
}

// NewRestaurantUseCase - restaurant search use case. With strict set an
// unknown provider identifier is rejected instead of yielding an empty list.
func NewRestaurantUseCase(
	providers repository.ProviderRegistry,
	logger *zap.Logger,
	defaultProvider string,
	strict bool,
) *RestaurantUseCase {
	return &RestaurantUseCase{
		providers:       providers,
		logger:          logger,
		defaultProvider: defaultProvider,
		strict:          strict,
		now:             time.Now,
	}
}

func (uc *RestaurantUseCase) Search(
	ctx context.Context,
	req dto.RestaurantSearchRequest,
) (*dto.RestaurantSearchResponse, error) {
	req.Location = strings.TrimSpace(req.Location)
	if req.APIProvider == "" {
		req.APIProvider = uc.defaultProvider
	}

	if err := validator.Validate(&req); err != nil {
		return nil, validationError(err)
	}

	radius := dto.DefaultRadius
	if req.Radius != nil {
		radius = *req.Radius
	}

	restaurants, err := uc.searchProvider(ctx, req.APIProvider, req.Location, radius)
	if err != nil {
		return nil, err
	}

	projected := Project(restaurants, req.Fields)

	uc.logger.Info("Restaurant search completed",
		zap.String("location", req.Location),
		zap.String("provider", req.APIProvider),
		zap.Int("radius", radius),
		zap.Int("count", len(projected)),
	)

	return &dto.RestaurantSearchResponse{
		Success:         true,
		Location:        req.Location,
		RestaurantCount: len(projected),
		Restaurants:     projected,
		APIProvider:     req.APIProvider,
		FetchedAt:       uc.now(),
	}, nil
}

func (uc *RestaurantUseCase) searchProvider(
	ctx context.Context,
	key, location string,
	radius int,
) ([]domain.Restaurant, error) {
	provider, ok := uc.providers.Provider(key)
	if !ok {
		if uc.strict {
			return nil, errors.ErrUnsupportedProvider.WithMessage("Unsupported provider: " + key)
		}
		// Unknown providers answer like a search with no hits.
		uc.logger.Warn("Unsupported restaurant provider requested", zap.String("provider", key))
		return []domain.Restaurant{}, nil
	}

	restaurants, err := provider.SearchRestaurants(ctx, location, radius)
	if err != nil {
		uc.logger.Error("Restaurant provider failed",
			zap.String("provider", key),
			zap.String("location", location),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%s search failed: %w", provider.Name(), err)
	}
	return restaurants, nil
}

func validationError(err error) error {
	fields := validator.FailedFields(err)
	switch {
	case slices.Contains(fields, "location"):
		return errors.ErrLocationRequired
	default:
		return errors.ErrInvalidRequest.WithMessage(err.Error())
	}
}
