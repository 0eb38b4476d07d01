package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Log       LogConfig
	CORS      CORSConfig
	Providers ProvidersConfig
	Geoapify  GeoapifyConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type LogConfig struct {
	Level string
}

type CORSConfig struct {
	AllowOrigins string
}

// ProvidersConfig holds dispatch settings shared by all restaurant providers
// and the credentials of providers that have no client yet.
type ProvidersConfig struct {
	Default        string
	Strict         bool
	RequestTimeout time.Duration
	ZomatoAPIKey   string
	GoogleAPIKey   string
}

type GeoapifyConfig struct {
	APIKey         string
	GeocodeURL     string
	PlacesURL      string
	RequestTimeout time.Duration
}

const (
	defaultHost            = "0.0.0.0"
	defaultPort            = 5000
	defaultEnv             = "development"
	defaultLogLevel        = "info"
	defaultProvider        = "geoapify"
	defaultRequestTimeout  = 10 * time.Second
	defaultGeoapifyGeocode = "https://api.geoapify.com/v1/geocode/search"
	defaultGeoapifyPlaces  = "https://api.geoapify.com/v2/places"
)

// Load reads configuration from an optional .env file and the process environment.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit env file path. A missing file is not an error.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &pathErr) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetDefault("API_HOST", defaultHost)
	v.SetDefault("API_PORT", defaultPort)
	v.SetDefault("API_ENV", defaultEnv)
	v.SetDefault("LOG_LEVEL", defaultLogLevel)
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("PROVIDER_DEFAULT", defaultProvider)
	v.SetDefault("GEOAPIFY_GEOCODE_URL", defaultGeoapifyGeocode)
	v.SetDefault("GEOAPIFY_PLACES_URL", defaultGeoapifyPlaces)

	timeout := time.Duration(v.GetInt("PROVIDER_REQUEST_TIMEOUT")) * time.Second
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		CORS: CORSConfig{
			AllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
		Providers: ProvidersConfig{
			Default:        strings.TrimSpace(v.GetString("PROVIDER_DEFAULT")),
			Strict:         v.GetBool("PROVIDER_STRICT"),
			RequestTimeout: timeout,
			ZomatoAPIKey:   v.GetString("ZOMATO_API_KEY"),
			GoogleAPIKey:   v.GetString("GOOGLE_API_KEY"),
		},
	}

	cfg.Geoapify = GeoapifyConfig{
		APIKey:         v.GetString("GEOAPIFY_API_KEY"),
		GeocodeURL:     v.GetString("GEOAPIFY_GEOCODE_URL"),
		PlacesURL:      v.GetString("GEOAPIFY_PLACES_URL"),
		RequestTimeout: timeout,
	}

	if cfg.Providers.Default == "" {
		cfg.Providers.Default = defaultProvider
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
