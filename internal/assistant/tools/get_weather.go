package tools

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cleitonmarx/symbiont-travel-advisor/internal/domain"
)

const WeatherToolName = "get_weather"

// WeatherTool reports the current weather for a modern city name.
type WeatherTool struct {
	provider domain.WeatherProvider
	logger   *log.Logger
}

// NewWeatherTool creates a new instance of WeatherTool.
func NewWeatherTool(provider domain.WeatherProvider, logger *log.Logger) WeatherTool {
	return WeatherTool{
		provider: provider,
		logger:   logger,
	}
}

// StatusMessage returns a status message about the tool execution.
func (t WeatherTool) StatusMessage() string {
	return "🌤️ Checking the current weather..."
}

// Definition returns the tool definition for WeatherTool.
func (t WeatherTool) Definition() domain.ToolDefinition {
	return domain.ToolDefinition{
		Name: WeatherToolName,
		Description: "Get the current weather for a city. Use the modern city name " +
			"(e.g. \"Livorno\" not \"Leghorn\", \"Istanbul\" not \"Constantinople\").",
		Hints: domain.ToolHints{
			UseWhen:   "Use when the user asks about current weather or conditions at a place.",
			AvoidWhen: "Do not use for historical weather or for what Twain wrote about a climate.",
			ArgRules:  "Required key: location (modern city name). Optional key: units (metric|imperial|standard). No extra keys.",
		},
		Input: domain.ToolInput{
			Type: "object",
			Fields: map[string]domain.ToolField{
				"location": {
					Type:        "string",
					Description: "Modern name of the city, optionally with country, e.g. \"Paris\" or \"Naples, IT\". REQUIRED.",
					Required:    true,
				},
				"units": {
					Type:        "string",
					Description: "metric for Celsius (default), imperial for Fahrenheit, standard for Kelvin.",
					Enum: []string{
						string(domain.WeatherUnits_Metric),
						string(domain.WeatherUnits_Imperial),
						string(domain.WeatherUnits_Standard),
					},
				},
			},
		},
	}
}

// Invoke executes WeatherTool.
func (t WeatherTool) Invoke(ctx context.Context, call domain.ToolCall) domain.ToolResult {
	params := struct {
		Location string `json:"location"`
		Units    string `json:"units"`
	}{}

	exampleArgs := `{"location":"Paris","units":"metric"}`

	if err := unmarshalToolInput(call.Arguments, &params); err != nil {
		return invalidArguments(call, fmt.Sprintf("Failed to parse tool input: %s", err.Error()), exampleArgs)
	}

	location := strings.TrimSpace(params.Location)
	if location == "" {
		return invalidArguments(call, "location is required", exampleArgs)
	}

	units, err := domain.ParseWeatherUnits(params.Units)
	if err != nil {
		return invalidArguments(call, err.Error(), exampleArgs)
	}

	place, found, err := t.provider.ResolveLocation(ctx, location)
	if err != nil {
		t.logger.Printf("WeatherTool: failed to resolve %q: %v", location, err)
		return failure(call, fmt.Sprintf(
			"I encountered an error while fetching weather information for '%s'. Please try again later.",
			location,
		))
	}
	if !found {
		return failure(call, fmt.Sprintf(
			"I couldn't find the location '%s'. The city name may be incorrect or not recognized. "+
				"Please verify the modern city name.",
			location,
		))
	}

	conditions, err := t.provider.CurrentConditions(ctx, place, units)
	if err != nil {
		t.logger.Printf("WeatherTool: failed to fetch conditions for %s (%f, %f): %v", place.Name, place.Latitude, place.Longitude, err)
		return failure(call, fmt.Sprintf("I couldn't fetch weather information for '%s'. Please try again later.", place.Name))
	}

	return domain.ToolResult{CallID: call.ID, Content: formatWeather(place, conditions, units)}
}

// formatWeather renders the conditions with the symbols of the requested units.
func formatWeather(place domain.Location, c domain.WeatherConditions, units domain.WeatherUnits) string {
	symbol := units.TemperatureSymbol()
	return fmt.Sprintf(
		"Current weather in %s, %s:\n"+
			"Temperature: %s%s (feels like %s%s)\n"+
			"Conditions: %s\n"+
			"Humidity: %d%%\n"+
			"Wind Speed: %s %s",
		place.Name, place.Country,
		formatReading(c.Temperature), symbol, formatReading(c.FeelsLike), symbol,
		capitalize(c.Description),
		c.Humidity,
		formatReading(c.WindSpeed), units.WindSpeedUnit(),
	)
}

func formatReading(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	s = strings.TrimSpace(s)
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
