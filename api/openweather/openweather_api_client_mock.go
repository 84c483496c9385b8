package openweather

import (
	"context"
	"log"
	"strings"

	"weather-dashboard/models"
	"weather-dashboard/util"
	"weather-dashboard/weather"
)

// OpenWeatherApiClientMock serves a recorded provider response from disk.
type OpenWeatherApiClientMock struct {
	responsePath string
}

// NewOpenWeatherApiClientMock creates a new instance of OpenWeatherApiClientMock
func NewOpenWeatherApiClientMock(responsePath string) *OpenWeatherApiClientMock {
	return &OpenWeatherApiClientMock{responsePath: responsePath}
}

// GetCurrentWeather returns the recorded response with its name set to location.
func (c *OpenWeatherApiClientMock) GetCurrentWeather(ctx context.Context, location string) (models.RawWeatherResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, &weather.ProviderUnavailableError{Err: err}
	}

	response, err := util.ReadRawWeatherResponseFromJSON(c.responsePath)
	if err != nil {
		log.Printf("[OpenWeatherApiClientMock] Could not read current weather response from json: %v", err)
		return nil, &weather.ProviderUnavailableError{Err: err}
	}

	response["name"] = strings.TrimSpace(location)
	return response, nil
}
