package models

// RawWeatherResponse is the decoded JSON body of a current-weather lookup.
// It is kept untyped so that missing and malformed fields can be told apart
// when the body is transformed into a WeatherSnapshot.
type RawWeatherResponse map[string]interface{}
