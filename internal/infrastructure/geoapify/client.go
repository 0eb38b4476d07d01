package geoapify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/restaurant-explorer/internal/config"
	"github.com/restaurant-explorer/internal/domain"
	"github.com/restaurant-explorer/internal/pkg/metrics"
	"go.uber.org/zap"
)

const (
	// ProviderKey selects this provider in requests.
	ProviderKey = "geoapify"
	// SourceTag is stamped on every record this provider produces.
	SourceTag = "Geoapify"

	restaurantCategory = "catering.restaurant"
	maxPlaces          = 50

	opGeocode = "geocode"
	opPlaces  = "places"
)

// Client talks to the Geoapify geocoding and places APIs.
type Client struct {
	httpClient *http.Client
	geocodeURL string
	placesURL  string
	apiKey     string
	logger     *zap.Logger
}

// NewClient creates a Geoapify client. Both outbound calls share the
// configured timeout.
func NewClient(cfg *config.GeoapifyConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		geocodeURL: cfg.GeocodeURL,
		placesURL:  cfg.PlacesURL,
		apiKey:     cfg.APIKey,
		logger:     logger.With(zap.String("provider", ProviderKey)),
	}
}

func (c *Client) Name() string {
	return SourceTag
}

// SearchRestaurants geocodes location and lists restaurants within radius
// meters of it.
//
// This is the only place where upstream failures are absorbed: network
// errors, timeouts, non-200 statuses and undecodable bodies from either call
// are logged and reported as an empty result with a nil error, so callers
// cannot tell "provider failed" from "nothing found".
func (c *Client) SearchRestaurants(ctx context.Context, location string, radius int) ([]domain.Restaurant, error) {
	restaurants, err := c.searchRestaurants(ctx, location, radius)
	if err != nil {
		c.logger.Error("Geoapify API error, returning empty result",
			zap.String("location", location),
			zap.Int("radius", radius),
			zap.Error(err),
		)
		return []domain.Restaurant{}, nil
	}
	return restaurants, nil
}

func (c *Client) searchRestaurants(ctx context.Context, location string, radius int) ([]domain.Restaurant, error) {
	center, err := c.Geocode(ctx, location)
	if err != nil {
		return nil, err
	}
	if center == nil {
		c.logger.Debug("Location not geocoded", zap.String("location", location))
		return []domain.Restaurant{}, nil
	}

	return c.NearbyRestaurants(ctx, *center, radius)
}

// Geocode resolves free text to the first candidate's coordinate. A nil
// coordinate with a nil error means there were no candidates.
func (c *Client) Geocode(ctx context.Context, text string) (*domain.Coordinate, error) {
	params := url.Values{}
	params.Set("text", text)
	params.Set("limit", "1")
	params.Set("apiKey", c.apiKey)

	start := time.Now()
	var fc featureCollection
	if err := c.getJSON(ctx, c.geocodeURL, params, &fc); err != nil {
		metrics.ObserveProviderCall(ProviderKey, opGeocode, metrics.OutcomeError, time.Since(start))
		return nil, fmt.Errorf("geocode %q: %w", text, err)
	}

	if len(fc.Features) == 0 {
		metrics.ObserveProviderCall(ProviderKey, opGeocode, metrics.OutcomeEmpty, time.Since(start))
		return nil, nil
	}

	coord := fc.Features[0].Geometry.coordinate()
	if coord == nil {
		metrics.ObserveProviderCall(ProviderKey, opGeocode, metrics.OutcomeError, time.Since(start))
		return nil, fmt.Errorf("geocode %q: candidate has no point geometry", text)
	}

	metrics.ObserveProviderCall(ProviderKey, opGeocode, metrics.OutcomeSuccess, time.Since(start))
	return coord, nil
}

// NearbyRestaurants lists up to 50 restaurants within radius meters of center.
func (c *Client) NearbyRestaurants(ctx context.Context, center domain.Coordinate, radius int) ([]domain.Restaurant, error) {
	lat := strconv.FormatFloat(center.Lat, 'f', -1, 64)
	lon := strconv.FormatFloat(center.Lon, 'f', -1, 64)
	r := strconv.Itoa(radius)

	params := url.Values{}
	params.Set("lat", lat)
	params.Set("lon", lon)
	params.Set("radius", r)
	params.Set("filter", fmt.Sprintf("circle:%s,%s,%s", lon, lat, r))
	params.Set("bias", fmt.Sprintf("proximity:%s,%s", lon, lat))
	params.Set("categories", restaurantCategory)
	params.Set("limit", strconv.Itoa(maxPlaces))
	params.Set("apiKey", c.apiKey)

	start := time.Now()
	var fc featureCollection
	if err := c.getJSON(ctx, c.placesURL, params, &fc); err != nil {
		metrics.ObserveProviderCall(ProviderKey, opPlaces, metrics.OutcomeError, time.Since(start))
		return nil, fmt.Errorf("places near %s,%s: %w", lat, lon, err)
	}

	outcome := metrics.OutcomeSuccess
	if len(fc.Features) == 0 {
		outcome = metrics.OutcomeEmpty
	}
	metrics.ObserveProviderCall(ProviderKey, opPlaces, outcome, time.Since(start))

	restaurants := make([]domain.Restaurant, 0, len(fc.Features))
	for _, f := range fc.Features {
		restaurants = append(restaurants, toRestaurant(f))
	}

	c.logger.Debug("Geoapify places call successful",
		zap.Float64("lat", center.Lat),
		zap.Float64("lon", center.Lon),
		zap.Int("radius", radius),
		zap.Int("count", len(restaurants)),
	)

	return restaurants, nil
}

func toRestaurant(f feature) domain.Restaurant {
	r := domain.NewRestaurant(domain.NameOrUnknown(f.Properties.Name), f.Properties.Formatted, f.Geometry.coordinate(), SourceTag)
	r.Rating = f.Properties.Rating
	r.Website = f.Properties.Website
	r.Phone = f.Properties.phone()
	return r
}

func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("geoapify API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
