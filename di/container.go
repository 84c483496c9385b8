package di

import (
	"context"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"weather-dashboard/api"
	"weather-dashboard/api/openweather"
	"weather-dashboard/config"
	"weather-dashboard/dao/redis"
	"weather-dashboard/db"
	"weather-dashboard/server"
	"weather-dashboard/server/handlers"
	services "weather-dashboard/service"
)

// Container holds all application dependencies.
type Container struct {
	Config              *config.Config
	RedisClient         db.RedisClient
	RedisQuotaDao       *redis.RedisQuotaDAO
	OpenWeatherAPI      openweather.OpenWeatherAPI
	DashboardService    *services.DashboardService
	DashboardHandler    *handlers.DashboardHandler
	MuxRouter           *mux.Router
	Router              *server.Router
	DashboardHttpServer *server.DashboardHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	log.Printf("[Container] initializing container - env: %s", cfg.Env)

	// Initialize OpenWeatherApi - mock outside prod
	var openWeatherApiClient openweather.OpenWeatherAPI
	if !cfg.UseLiveProvider() {
		log.Printf("[Container] Using mock open weather api")
		openWeatherApiClient = openweather.NewOpenWeatherApiClientMock(config.GetResourcePath(config.CURRENT_WEATHER_RESPONSE_RESOURCE))
	} else {
		log.Printf("[Container] Using prod open weather api")
		httpClient := api.NewHTTPClient(cfg.OpenWeatherBaseURL, cfg.ProviderTimeout)
		openWeatherApiClient = openweather.NewOpenWeatherApiClient(httpClient, cfg.OpenWeatherAPIKey)
	}

	var options []services.DashboardOption

	// Provider quota is optional and needs redis
	var redisClient db.RedisClient
	var redisQuotaDao *redis.RedisQuotaDAO
	if cfg.QuotaEnabled() {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		quotaClient, err := db.NewQuotaRedisClient(ctx, redisInternalClient)
		if err != nil {
			redisInternalClient.Close()
			return nil, err
		}
		redisClient = quotaClient
		redisQuotaDao = redis.NewRedisQuotaDAO(redisClient, cfg.ProviderCallsPerMinute)
		options = append(options, services.WithQuotaGuard(redisQuotaDao))
		log.Printf("[Container] Provider quota enabled: %d calls per minute", cfg.ProviderCallsPerMinute)
	}

	// Initialize service layer
	dashboardService := services.NewDashboardService(openWeatherApiClient, cfg.ProviderTimeout, options...)

	// Initialize dashboard handler
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, config.NewDisplayConfig(), cfg.DefaultLocation)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(dashboardHandler, muxRouter)

	// initialize dashboard server
	dashboardHttpServer := server.NewDashboardHttpServer(router, muxRouter, cfg.Port)

	return &Container{
		Config:              cfg,
		RedisClient:         redisClient,
		RedisQuotaDao:       redisQuotaDao,
		OpenWeatherAPI:      openWeatherApiClient,
		DashboardService:    dashboardService,
		DashboardHandler:    dashboardHandler,
		MuxRouter:           muxRouter,
		Router:              router,
		DashboardHttpServer: dashboardHttpServer,
	}, nil
}

// Close releases the redis connection when one was opened.
func (c *Container) Close() error {
	if c.RedisClient == nil {
		return nil
	}
	return c.RedisClient.Close()
}
