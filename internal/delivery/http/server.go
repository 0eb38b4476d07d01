package http

import (
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/restaurant-explorer/internal/config"
	"github.com/restaurant-explorer/internal/delivery/http/handler"
	"github.com/restaurant-explorer/internal/delivery/http/middleware"
	"github.com/restaurant-explorer/internal/pkg/utils"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP server built on Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	restaurantHandler *handler.RestaurantHandler
	infoHandler       *handler.InfoHandler
}

// NewServer - create a new HTTP server
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	restaurantHandler *handler.RestaurantHandler,
	infoHandler *handler.InfoHandler,
) *Server {
	// Outbound calls may take up to the provider timeout twice over.
	writeTimeout := 2*cfg.Providers.RequestTimeout + 5*time.Second

	app := fiber.New(fiber.Config{
		AppName:               "Restaurant Data Explorer",
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          writeTimeout,
		IdleTimeout:           60 * time.Second,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		DisableStartupMessage: cfg.Server.Env == "production",
		ErrorHandler:          customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		restaurantHandler: restaurantHandler,
		infoHandler:       infoHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - Recovery sits below Logger and Metrics so that
// recovered panics are still logged and counted.
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.Metrics())
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.CORS(s.config.CORS.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	s.app.Get("/", s.infoHandler.Index)

	api := s.app.Group("/api")
	api.Get("/health", s.infoHandler.Health)
	api.Post("/restaurants", s.restaurantHandler.Search)
}

// App exposes the underlying Fiber app, mainly for in-process tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown of the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler answers errors that escaped the handlers, including
// recovered panics and unmatched routes, in the same {"error": ...} shape.
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(utils.ErrorResponse{
			Error: err.Error(),
		})
	}
}
