package models

// WeatherSnapshot is the normalized current-conditions record derived from one
// provider response. Values arrive in metric units and are not range checked.
type WeatherSnapshot struct {
	TemperatureC float64 `json:"temperature_c"`
	FeelsLikeC   float64 `json:"feels_like_c"`
	HumidityPct  float64 `json:"humidity_pct"`
	WindSpeedMs  float64 `json:"wind_speed_ms"`
	Condition    string  `json:"condition"`
}

// HourlySample is one point of the synthetic hourly temperature trend.
type HourlySample struct {
	Hour         int     `json:"hour"`
	TemperatureC float64 `json:"temperature_c"`
}

// ConditionShare is one slice of the synthetic condition distribution.
type ConditionShare struct {
	Label      string `json:"label"`
	Percentage int    `json:"percentage"`
}
