package openweather

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/config"
	"weather-dashboard/weather"
)

// fixture lives at the repository root, two levels up from this package
var CURRENT_WEATHER_RESPONSE_PATH = filepath.Join("..", "..", config.RESOURCES_PATH_PREFIX, config.CURRENT_WEATHER_RESPONSE_RESOURCE)

func TestMockGetCurrentWeather_Success(t *testing.T) {
	// Arrange
	client := NewOpenWeatherApiClientMock(CURRENT_WEATHER_RESPONSE_PATH)

	// Act
	response, err := client.GetCurrentWeather(context.Background(), " Nashik ")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Nashik", response["name"])

	snapshot, err := weather.Transform(response)
	require.NoError(t, err)
	assert.Equal(t, 28.5, snapshot.TemperatureC)
	assert.Equal(t, 30.1, snapshot.FeelsLikeC)
	assert.Equal(t, 65.0, snapshot.HumidityPct)
	assert.Equal(t, 3.2, snapshot.WindSpeedMs)
	assert.Equal(t, "Clear Sky", snapshot.Condition)
}

func TestMockGetCurrentWeather_MissingFixture(t *testing.T) {
	client := NewOpenWeatherApiClientMock(filepath.Join(t.TempDir(), "missing.json"))

	response, err := client.GetCurrentWeather(context.Background(), "Pune")

	assert.Nil(t, response)
	var unavailable *weather.ProviderUnavailableError
	assert.True(t, errors.As(err, &unavailable))
}

func TestMockGetCurrentWeather_CancelledContext(t *testing.T) {
	client := NewOpenWeatherApiClientMock(CURRENT_WEATHER_RESPONSE_PATH)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetCurrentWeather(ctx, "Pune")

	assert.ErrorIs(t, err, context.Canceled)
}
