package openweather

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/cleitonmarx/symbiont-travel-advisor/internal/domain"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// WeatherProvider adapts APIClient to domain.WeatherProvider.
type WeatherProvider struct {
	client APIClient
	logger *log.Logger
}

// NewWeatherProvider creates a new WeatherProvider.
func NewWeatherProvider(client APIClient, logger *log.Logger) WeatherProvider {
	return WeatherProvider{client: client, logger: logger}
}

// ResolveLocation implements domain.WeatherProvider.
func (p WeatherProvider) ResolveLocation(ctx context.Context, name string) (domain.Location, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("location", name),
	))
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Location{}, false, domain.NewValidationErr("location cannot be empty")
	}

	results, err := p.client.Geocode(spanCtx, name, 1)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return domain.Location{}, false, nil
		}
		err = fmt.Errorf("%w: geocoding %q: %w", domain.ErrToolInvocation, name, err)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Location{}, false, err
	}
	if len(results) == 0 {
		p.logger.Printf("WeatherProvider: location not found: %s", name)
		return domain.Location{}, false, nil
	}

	first := results[0]
	country := first.Country
	if country == "" {
		country = "Unknown"
	}
	p.logger.Printf("WeatherProvider: resolved '%s' to %s, %s (%.4f, %.4f)", name, first.Name, country, first.Lat, first.Lon)
	return domain.Location{
		Name:      first.Name,
		Country:   country,
		Latitude:  first.Lat,
		Longitude: first.Lon,
	}, true, nil
}

// CurrentConditions implements domain.WeatherProvider.
func (p WeatherProvider) CurrentConditions(ctx context.Context, location domain.Location, units domain.WeatherUnits) (domain.WeatherConditions, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("location", location.Name),
		attribute.String("units", string(units)),
	))
	defer span.End()

	resp, err := p.client.CurrentWeather(spanCtx, location.Latitude, location.Longitude, string(units))
	if err != nil {
		err = fmt.Errorf("%w: current weather for %q: %w", domain.ErrToolInvocation, location.Name, err)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.WeatherConditions{}, err
	}

	conditions := domain.WeatherConditions{
		Temperature: resp.Main.Temp,
		FeelsLike:   resp.Main.FeelsLike,
		Humidity:    resp.Main.Humidity,
		WindSpeed:   resp.Wind.Speed,
		Units:       units,
	}
	if len(resp.Weather) > 0 {
		conditions.Description = resp.Weather[0].Description
	}
	return conditions, nil
}

// InitWeatherProvider registers the OpenWeatherMap backed domain.WeatherProvider.
type InitWeatherProvider struct {
	HttpClient *http.Client `resolve:""`
	Logger     *log.Logger  `resolve:""`
	BaseURL    string       `config:"OPENWEATHER_BASE_URL" default:"https://api.openweathermap.org"`
	APIKey     string       `config:"OPENWEATHERMAP_API_KEY"`
}

// Initialize registers the weather provider in the dependency container.
func (i InitWeatherProvider) Initialize(ctx context.Context) (context.Context, error) {
	if strings.TrimSpace(i.APIKey) == "" {
		return ctx, errors.New("OPENWEATHERMAP_API_KEY is not set")
	}
	depend.Register[domain.WeatherProvider](NewWeatherProvider(
		NewAPIClient(i.BaseURL, i.APIKey, i.HttpClient),
		i.Logger,
	))
	return ctx, nil
}
