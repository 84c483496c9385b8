package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "response.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

func TestReadRawWeatherResponseFromJSON(t *testing.T) {
	// Arrange
	content := `{
		"main": {"temp": 28.5, "feels_like": 30.1, "humidity": 65},
		"wind": {"speed": 3.2},
		"weather": [{"description": "clear sky"}]
	}`
	tempFile := createTempFile(t, content)

	// Act
	response, err := ReadRawWeatherResponseFromJSON(tempFile)

	// Assert
	require.NoError(t, err)
	main, ok := response["main"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 28.5, main["temp"])
	assert.Len(t, response["weather"], 1)
}

func TestReadRawWeatherResponseFromJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.json") }},
		{"invalid json", func(t *testing.T) string { return createTempFile(t, `{"main":`) }},
		{"json null", func(t *testing.T) string { return createTempFile(t, `null`) }},
		{"json array", func(t *testing.T) string { return createTempFile(t, `[1, 2]`) }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			response, err := ReadRawWeatherResponseFromJSON(test.path(t))

			assert.Error(t, err)
			assert.Nil(t, response)
		})
	}
}
