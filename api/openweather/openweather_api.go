package openweather

import (
	"context"

	"weather-dashboard/models"
)

// OpenWeatherAPI defines the interface for interacting with the OpenWeatherMap API
type OpenWeatherAPI interface {
	GetCurrentWeather(ctx context.Context, location string) (models.RawWeatherResponse, error)
}
