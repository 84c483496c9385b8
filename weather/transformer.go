package weather

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"weather-dashboard/models"
)

// Field paths of the provider response read by Transform.
const (
	FieldTemp        = "main.temp"
	FieldFeelsLike   = "main.feels_like"
	FieldHumidity    = "main.humidity"
	FieldWindSpeed   = "wind.speed"
	FieldDescription = "weather[0].description"
)

// Transform converts a raw provider response into a WeatherSnapshot.
// Values are expected in metric units already; nothing is converted or clamped.
func Transform(raw models.RawWeatherResponse) (models.WeatherSnapshot, error) {
	var snapshot models.WeatherSnapshot

	mainObj, err := object(raw, "main", FieldTemp)
	if err != nil {
		return snapshot, err
	}
	if snapshot.TemperatureC, err = number(mainObj, "temp", FieldTemp); err != nil {
		return snapshot, err
	}
	if snapshot.FeelsLikeC, err = number(mainObj, "feels_like", FieldFeelsLike); err != nil {
		return snapshot, err
	}
	if snapshot.HumidityPct, err = number(mainObj, "humidity", FieldHumidity); err != nil {
		return snapshot, err
	}

	windObj, err := object(raw, "wind", FieldWindSpeed)
	if err != nil {
		return snapshot, err
	}
	if snapshot.WindSpeedMs, err = number(windObj, "speed", FieldWindSpeed); err != nil {
		return snapshot, err
	}

	description, err := primaryDescription(raw)
	if err != nil {
		return snapshot, err
	}
	snapshot.Condition = TitleCase(description)

	return snapshot, nil
}

// TitleCase capitalizes the first letter of every word and lower-cases the rest.
func TitleCase(s string) string {
	// Casers keep state, so one is built per call.
	return cases.Title(language.Und).String(s)
}

// object returns the nested JSON object stored under key. A missing key is
// reported against leafField, the required field that lives below it.
func object(parent map[string]interface{}, key, leafField string) (map[string]interface{}, error) {
	v, ok := parent[key]
	if !ok || v == nil {
		return nil, &MissingFieldError{Field: leafField}
	}
	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil, &MalformedFieldError{Field: key, Reason: fmt.Sprintf("expected an object, got %T", v)}
	}
	return obj, nil
}

func number(obj map[string]interface{}, key, field string) (float64, error) {
	v, ok := obj[key]
	if !ok || v == nil {
		return 0, &MissingFieldError{Field: field}
	}

	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, &MalformedFieldError{Field: field, Reason: err.Error()}
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, &MalformedFieldError{Field: field, Reason: fmt.Sprintf("%q is not a number", n)}
		}
		f = parsed
	default:
		return 0, &MalformedFieldError{Field: field, Reason: fmt.Sprintf("expected a number, got %T", v)}
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &MalformedFieldError{Field: field, Reason: "not a finite number"}
	}
	return f, nil
}

func primaryDescription(raw models.RawWeatherResponse) (string, error) {
	v, ok := raw["weather"]
	if !ok || v == nil {
		return "", &MissingFieldError{Field: FieldDescription}
	}
	items, ok := v.([]interface{})
	if !ok {
		return "", &MalformedFieldError{Field: "weather", Reason: fmt.Sprintf("expected an array, got %T", v)}
	}
	if len(items) == 0 {
		return "", &MissingFieldError{Field: FieldDescription}
	}
	first, ok := items[0].(map[string]interface{})
	if !ok {
		return "", &MalformedFieldError{Field: "weather[0]", Reason: fmt.Sprintf("expected an object, got %T", items[0])}
	}

	d, ok := first["description"]
	if !ok || d == nil {
		return "", &MissingFieldError{Field: FieldDescription}
	}
	description, ok := d.(string)
	if !ok {
		return "", &MalformedFieldError{Field: FieldDescription, Reason: fmt.Sprintf("expected a string, got %T", d)}
	}
	if strings.TrimSpace(description) == "" {
		return "", &MalformedFieldError{Field: FieldDescription, Reason: "empty description"}
	}
	return description, nil
}
