package models

// Dashboard holds everything rendered for a single lookup.
type Dashboard struct {
	Location     string           `json:"location"`
	Snapshot     WeatherSnapshot  `json:"snapshot"`
	Hourly       []HourlySample   `json:"hourly"`
	Distribution []ConditionShare `json:"distribution"`
}
