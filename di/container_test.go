package di

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/api/openweather"
	"weather-dashboard/config"
	"weather-dashboard/models"
)

func TestNewContainer_DevUsesMock(t *testing.T) {
	// fixture lives at the repository root
	root, err := filepath.Abs("..")
	require.NoError(t, err)
	t.Setenv("PROJECT_ROOT", root)

	cfg, err := config.FromEnv(func(key string) string {
		if key == "APP_ENV" {
			return config.ENV_DEV
		}
		return ""
	})
	require.NoError(t, err)

	container, err := NewContainer(context.Background(), cfg)
	require.NoError(t, err)
	defer container.Close()

	assert.IsType(t, &openweather.OpenWeatherApiClientMock{}, container.OpenWeatherAPI)
	assert.Nil(t, container.RedisClient)
	assert.Nil(t, container.RedisQuotaDao)

	container.Router.RegisterRoutes()
	rr := httptest.NewRecorder()
	container.MuxRouter.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/weather?city=Nashik", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var dashboard models.Dashboard
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &dashboard))
	assert.Equal(t, "Nashik", dashboard.Location)
	assert.Equal(t, "Clear Sky", dashboard.Snapshot.Condition)
	assert.Len(t, dashboard.Hourly, 12)
	assert.Len(t, dashboard.Distribution, 4)
}

func TestNewContainer_ProdUsesLiveClient(t *testing.T) {
	cfg, err := config.FromEnv(func(key string) string {
		if key == "OPENWEATHER_API_KEY" {
			return "secret"
		}
		return ""
	})
	require.NoError(t, err)

	container, err := NewContainer(context.Background(), cfg)
	require.NoError(t, err)

	assert.IsType(t, &openweather.OpenWeatherApiClient{}, container.OpenWeatherAPI)
	assert.NoError(t, container.Close())
}
