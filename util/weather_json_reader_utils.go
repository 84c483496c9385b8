package util

import (
	"encoding/json"
	"fmt"
	"os"

	"weather-dashboard/models"
)

// ReadRawWeatherResponseFromJSON loads a RawWeatherResponse from JSON on disk.
func ReadRawWeatherResponseFromJSON(filePath string) (models.RawWeatherResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.RawWeatherResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal RawWeatherResponse: %w", err)
	}
	if resp == nil {
		return nil, fmt.Errorf("file %q holds no JSON object", filePath)
	}
	return resp, nil
}
