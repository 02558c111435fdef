package domain

import (
	"context"
	"fmt"
	"strings"
)

// WeatherUnits selects the measurement system of weather readings.
type WeatherUnits string

const (
	WeatherUnits_Metric   WeatherUnits = "metric"
	WeatherUnits_Imperial WeatherUnits = "imperial"
	WeatherUnits_Standard WeatherUnits = "standard"
)

// ParseWeatherUnits parses a units argument. An empty value defaults to metric.
func ParseWeatherUnits(value string) (WeatherUnits, error) {
	switch u := WeatherUnits(strings.ToLower(strings.TrimSpace(value))); u {
	case "":
		return WeatherUnits_Metric, nil
	case WeatherUnits_Metric, WeatherUnits_Imperial, WeatherUnits_Standard:
		return u, nil
	default:
		return "", NewValidationErr(fmt.Sprintf("invalid units %q: expected metric, imperial or standard", value))
	}
}

// TemperatureSymbol returns the temperature unit symbol.
func (u WeatherUnits) TemperatureSymbol() string {
	switch u {
	case WeatherUnits_Imperial:
		return "°F"
	case WeatherUnits_Standard:
		return "K"
	default:
		return "°C"
	}
}

// WindSpeedUnit returns the wind speed unit.
func (u WeatherUnits) WindSpeedUnit() string {
	if u == WeatherUnits_Imperial {
		return "mph"
	}
	return "m/s"
}

// Location is a geocoded place.
type Location struct {
	Name      string
	Country   string
	Latitude  float64
	Longitude float64
}

// WeatherConditions are the current conditions at a location.
type WeatherConditions struct {
	Temperature float64
	FeelsLike   float64
	Humidity    int
	Description string
	WindSpeed   float64
	Units       WeatherUnits
}

// WeatherProvider is the external weather capability.
type WeatherProvider interface {
	// ResolveLocation geocodes a place name. The boolean is false when nothing matched.
	ResolveLocation(ctx context.Context, name string) (Location, bool, error)
	// CurrentConditions returns the current weather at a location in the given units.
	CurrentConditions(ctx context.Context, location Location, units WeatherUnits) (WeatherConditions, error)
}
