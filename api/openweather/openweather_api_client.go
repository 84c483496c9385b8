package openweather

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"weather-dashboard/api"
	"weather-dashboard/config"
	"weather-dashboard/models"
	"weather-dashboard/weather"
)

const CURRENT_WEATHER_ENDPOINT = "/weather"

// consecutive failures that open the circuit
const circuitTripFailures = 5

// OpenWeatherApiClient embeds the common HTTPClient
type OpenWeatherApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
	apiKey          string
	circuit         *gobreaker.CircuitBreaker
}

// NewOpenWeatherApiClient creates a new instance of OpenWeatherApiClient
func NewOpenWeatherApiClient(httpClient *api.HTTPClient, apiKey string) *OpenWeatherApiClient {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 1,
		Interval:    1 * time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= circuitTripFailures
		},
		// A 4xx means the provider answered, usually about an unknown city.
		IsSuccessful: func(err error) bool {
			var statusErr *api.StatusError
			if errors.As(err, &statusErr) {
				return statusErr.StatusCode < http.StatusInternalServerError &&
					statusErr.StatusCode != http.StatusTooManyRequests
			}
			return err == nil
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("[OpenWeatherApiClient] circuit %s: %s -> %s", name, from, to)
		},
	})

	return &OpenWeatherApiClient{
		HTTPClient: httpClient,
		apiKey:     apiKey,
		circuit:    cb,
	}
}

// GetCurrentWeather fetches current conditions for location in metric units.
// The call is made once; failures are never retried.
func (c *OpenWeatherApiClient) GetCurrentWeather(ctx context.Context, location string) (models.RawWeatherResponse, error) {
	query := url.Values{}
	query.Set("q", location)
	query.Set("appid", c.apiKey)
	query.Set("units", config.OPENWEATHER_UNITS)

	result, err := c.circuit.Execute(func() (interface{}, error) {
		var response models.RawWeatherResponse
		if err := c.Request(ctx, http.MethodGet, CURRENT_WEATHER_ENDPOINT, query, nil, nil, &response); err != nil {
			return nil, err
		}
		return response, nil
	})
	if err != nil {
		return nil, classifyError(err)
	}

	return result.(models.RawWeatherResponse), nil
}

// classifyError maps transport level failures onto the lookup error kinds.
func classifyError(err error) error {
	// Transport errors echo the request URL, which carries the API key.
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = redactAPIKey(urlErr.URL)
	}

	var statusErr *api.StatusError
	if errors.As(err, &statusErr) {
		return &weather.ProviderUnavailableError{StatusCode: statusErr.StatusCode, Err: err}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &weather.ProviderTimeoutError{Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &weather.ProviderTimeoutError{Err: err}
	}

	return &weather.ProviderUnavailableError{Err: err}
}

func redactAPIKey(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "[unparseable url]"
	}
	q := u.Query()
	if q.Has("appid") {
		q.Set("appid", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
