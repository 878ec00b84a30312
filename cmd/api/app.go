package main

import (
	"log/slog"

	"sentry-safety/internal/boundary"
	"sentry-safety/internal/classifier"
	"sentry-safety/internal/config"
	"sentry-safety/internal/providers/openrouteservice"
	"sentry-safety/internal/providers/openstreetmap"
	"sentry-safety/internal/providers/waqi"
	"sentry-safety/internal/routing"
	"sentry-safety/internal/safety"

	"github.com/gin-gonic/gin"
)

// App encapsulates application dependencies
type App struct {
	router         *gin.Engine
	logger         *slog.Logger
	safetyService  safety.Service
	routingService routing.Service
	aqiClient      *waqi.Client
	cfg            *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	model, err := classifier.NewPrototypeModelFromFile(cfg.Data.ModelPath, logger)
	if err != nil {
		return nil, err
	}

	boundaries := boundary.NewLoader(cfg.Data.BoundaryPath, logger)
	aqiClient := waqi.NewClient(cfg.WAQI.Token, "", logger)

	safetySvc, err := safety.NewService(boundaries, aqiClient, model, logger)
	if err != nil {
		return nil, err
	}

	routingSvc := routing.NewService(
		safetySvc,
		openstreetmap.NewClient(cfg.Geocode.CountryCodes, logger),
		openrouteservice.NewClient(cfg.Routing.ORSAPIKey, cfg.Routing.ORSBaseURL, logger),
		cfg.Routing.AvoidLimit,
		logger,
	)

	app := &App{
		router:         router,
		logger:         logger,
		safetyService:  safetySvc,
		routingService: routingSvc,
		aqiClient:      aqiClient,
		cfg:            cfg,
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
