package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"weather-dashboard/models"
	"weather-dashboard/weather"
)

// WeatherFetcher is the provider collaborator a lookup depends on.
type WeatherFetcher interface {
	GetCurrentWeather(ctx context.Context, location string) (models.RawWeatherResponse, error)
}

// FetchFunc adapts a plain function to WeatherFetcher.
type FetchFunc func(ctx context.Context, location string) (models.RawWeatherResponse, error)

func (f FetchFunc) GetCurrentWeather(ctx context.Context, location string) (models.RawWeatherResponse, error) {
	return f(ctx, location)
}

// QuotaGuard admits or rejects a provider call before it is made.
type QuotaGuard interface {
	Allow(ctx context.Context) (bool, error)
}

// DashboardService turns a location into everything the dashboard renders.
type DashboardService struct {
	fetcher   WeatherFetcher
	quota     QuotaGuard
	timeout   time.Duration
	newRandom func() weather.RandomSource
}

// DashboardOption customizes a DashboardService.
type DashboardOption func(*DashboardService)

// WithQuotaGuard limits provider calls through guard.
func WithQuotaGuard(guard QuotaGuard) DashboardOption {
	return func(s *DashboardService) { s.quota = guard }
}

// WithRandomSource replaces the per-lookup random source factory.
func WithRandomSource(newRandom func() weather.RandomSource) DashboardOption {
	return func(s *DashboardService) { s.newRandom = newRandom }
}

// NewDashboardService constructs a DashboardService. A non-positive timeout
// leaves the provider call bounded only by the caller's context.
func NewDashboardService(fetcher WeatherFetcher, timeout time.Duration, options ...DashboardOption) *DashboardService {
	s := &DashboardService{
		fetcher:   fetcher,
		timeout:   timeout,
		newRandom: weather.NewRandomSource,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Lookup fetches current conditions for location, transforms them and
// generates the synthetic chart series. The provider is called at most once
// and never retried. Fetch and transform failures satisfy weather.IsLookupFailure.
func (s *DashboardService) Lookup(ctx context.Context, location string) (*models.Dashboard, error) {
	location = strings.TrimSpace(location)

	if s.quota != nil {
		allowed, err := s.quota.Allow(ctx)
		switch {
		case err != nil:
			// quota is advisory; a redis outage must not take lookups down
			log.Printf("[DashboardService] Quota check failed, allowing call: %v", err)
		case !allowed:
			log.Printf("[DashboardService] Provider quota exceeded, rejecting lookup for %q", location)
			return nil, &weather.ProviderUnavailableError{Err: weather.ErrQuotaExceeded}
		}
	}

	raw, err := s.fetch(ctx, location)
	if err != nil {
		log.Printf("[DashboardService] Fetching weather for %q failed: %v", location, err)
		return nil, err
	}

	snapshot, err := weather.Transform(raw)
	if err != nil {
		log.Printf("[DashboardService] Transforming weather for %q failed: %v", location, err)
		return nil, err
	}

	rng := s.newRandom()
	hourly, err := weather.GenerateHourly(snapshot.TemperatureC, weather.DefaultHours, weather.DefaultJitter, rng)
	if err != nil {
		log.Printf("[DashboardService] Generating hourly series failed: %v", err)
		return nil, fmt.Errorf("generating hourly series: %w", err)
	}
	distribution, err := weather.GenerateDistribution(weather.DefaultConditionLabels, weather.DefaultMinPct, weather.DefaultMaxPct, rng)
	if err != nil {
		log.Printf("[DashboardService] Generating distribution failed: %v", err)
		return nil, fmt.Errorf("generating condition distribution: %w", err)
	}

	return &models.Dashboard{
		Location:     location,
		Snapshot:     snapshot,
		Hourly:       hourly,
		Distribution: distribution,
	}, nil
}

func (s *DashboardService) fetch(ctx context.Context, location string) (models.RawWeatherResponse, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	raw, err := s.fetcher.GetCurrentWeather(ctx, location)
	if err != nil {
		if weather.IsLookupFailure(err) {
			return nil, err
		}
		if ctx.Err() == context.DeadlineExceeded {
			return nil, &weather.ProviderTimeoutError{Err: err}
		}
		return nil, &weather.ProviderUnavailableError{Err: err}
	}
	return raw, nil
}
