package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environments
const ENV_PROD = "prod"
const ENV_DEV = "dev"

// OpenWeatherMap config
const OPENWEATHER_ENDPOINT_BASE_V25 = "https://api.openweathermap.org/data/2.5"
const OPENWEATHER_UNITS = "metric"
const DEFAULT_PROVIDER_TIMEOUT = 10 * time.Second

// Provider quota, one minute windows
const DEFAULT_PROVIDER_CALLS_PER_MINUTE = 60

// Lookup defaults
const DEFAULT_LOCATION = "Pune"
const MAX_LOCATION_LENGTH = 100

// Chart assets, served by the go-echarts asset host
const ECHARTS_JS_URL = "https://go-echarts.github.io/go-echarts-assets/assets/echarts.min.js"

// Server config
const DEFAULT_PORT = "8080"
const SHUTDOWN_TIMEOUT = 5 * time.Second

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const CURRENT_WEATHER_RESPONSE_RESOURCE = "current_weather_response.json"

// ConfigurationError reports a missing or invalid setting found at startup.
type ConfigurationError struct {
	Key    string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Key, e.Reason)
}

// RedisConfig is only used when Addr is set.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Config is read once at startup and never mutated afterwards.
type Config struct {
	Env                    string
	Port                   string
	OpenWeatherAPIKey      string
	OpenWeatherBaseURL     string
	ProviderTimeout        time.Duration
	ProviderCallsPerMinute int
	DefaultLocation        string
	Redis                  RedisConfig
}

// UseLiveProvider reports whether lookups go to the real provider.
func (c *Config) UseLiveProvider() bool {
	return c.Env == ENV_PROD
}

// QuotaEnabled reports whether provider calls are counted in redis.
func (c *Config) QuotaEnabled() bool {
	return c.Redis.Addr != "" && c.ProviderCallsPerMinute > 0
}

// Load reads configuration from the environment, after loading a .env file
// from the working directory when one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("[Config] No .env file loaded: %v", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		Env:                get("APP_ENV", ENV_PROD),
		Port:               get("PORT", DEFAULT_PORT),
		OpenWeatherAPIKey:  get("OPENWEATHER_API_KEY", ""),
		OpenWeatherBaseURL: strings.TrimRight(get("OPENWEATHER_BASE_URL", OPENWEATHER_ENDPOINT_BASE_V25), "/"),
		DefaultLocation:    get("DEFAULT_LOCATION", DEFAULT_LOCATION),
		Redis: RedisConfig{
			Addr:     get("REDIS_ADDR", ""),
			Password: getenv("REDIS_PASSWORD"),
		},
	}

	if cfg.UseLiveProvider() && cfg.OpenWeatherAPIKey == "" {
		return nil, &ConfigurationError{Key: "OPENWEATHER_API_KEY", Reason: "must be set when APP_ENV=" + ENV_PROD}
	}

	if len([]rune(cfg.DefaultLocation)) > MAX_LOCATION_LENGTH {
		return nil, &ConfigurationError{Key: "DEFAULT_LOCATION", Reason: fmt.Sprintf("must be at most %d characters", MAX_LOCATION_LENGTH)}
	}

	timeout, err := time.ParseDuration(get("PROVIDER_TIMEOUT", DEFAULT_PROVIDER_TIMEOUT.String()))
	if err != nil || timeout <= 0 {
		return nil, &ConfigurationError{Key: "PROVIDER_TIMEOUT", Reason: "must be a positive duration"}
	}
	cfg.ProviderTimeout = timeout

	if cfg.ProviderCallsPerMinute, err = getInt(get, "PROVIDER_CALLS_PER_MINUTE", DEFAULT_PROVIDER_CALLS_PER_MINUTE); err != nil {
		return nil, err
	}
	if cfg.Redis.DB, err = getInt(get, "REDIS_DB", 0); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getInt(get func(key, def string) string, key string, def int) (int, error) {
	n, err := strconv.Atoi(get(key, strconv.Itoa(def)))
	if err != nil || n < 0 {
		return 0, &ConfigurationError{Key: key, Reason: "must be a non-negative integer"}
	}
	return n, nil
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
