package handlers

import (
	"html/template"

	"weather-dashboard/config"
	"weather-dashboard/models"
	"weather-dashboard/util"
)

// dashboardPage is the data the dashboard template renders.
type dashboardPage struct {
	Display    config.DisplayConfig
	EChartsURL string
	Location   string
	Dashboard  *models.Dashboard
	Charts     []util.ChartSnippet
	Error      string
}

var dashboardTemplate = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{ .Display.PageTitle }}</title>
<script src="{{ .EChartsURL }}"></script>
<style>
body { background-color: {{ .Display.BackgroundColor }}; color: {{ .Display.TextColor }}; font-family: "Segoe UI", sans-serif; margin: 0 auto; max-width: 1100px; padding: 24px; }
h1, h2 { color: {{ .Display.AccentColor }}; }
form input[type=text] { background: {{ .Display.CardColor }}; border: 1px solid {{ .Display.CardBorderColor }}; color: {{ .Display.TextColor }}; padding: 8px; width: 60%; }
form button { background: {{ .Display.AccentColor }}; border: none; color: {{ .Display.BackgroundColor }}; padding: 8px 16px; }
.cards { display: flex; gap: 16px; margin: 24px 0; }
.card { background-color: {{ .Display.CardColor }}; border: 1px solid {{ .Display.CardBorderColor }}; border-radius: 12px; flex: 1; padding: 20px; text-align: center; }
.card h3 { color: {{ .Display.CardHeadingColor }}; font-weight: 500; margin: 0 0 8px; }
.card .value { color: {{ .Display.MetricValueColor }}; font-size: 2em; font-weight: 700; }
.error { background: #3B1C24; border: 1px solid #FF6E6E; border-radius: 8px; color: #FFB4B4; padding: 16px; }
.chart { margin: 24px 0; }
</style>
</head>
<body>
<h1>{{ .Display.Heading }}</h1>
<form method="get" action="/">
<label for="city">Enter Location:</label>
<input type="text" id="city" name="city" value="{{ .Location }}">
<button type="submit">Search</button>
</form>
{{ if .Error }}
<p class="error">{{ .Error }}</p>
{{ else }}{{ with .Dashboard }}
<h2>Current Weather in {{ .Location }}</h2>
<div class="cards">
<div class="card"><h3>Temperature (°C)</h3><div class="value">{{ printf "%.1f" .Snapshot.TemperatureC }}</div></div>
<div class="card"><h3>Humidity (%)</h3><div class="value">{{ printf "%.0f" .Snapshot.HumidityPct }}</div></div>
<div class="card"><h3>Wind Speed (m/s)</h3><div class="value">{{ printf "%.1f" .Snapshot.WindSpeedMs }}</div></div>
</div>
<h2>Detailed Summary</h2>
<ul>
<li><strong>Feels Like:</strong> {{ printf "%.1f" .Snapshot.FeelsLikeC }} °C</li>
<li><strong>Condition:</strong> {{ .Snapshot.Condition }}</li>
</ul>
{{ end }}
<h2>Visual Analysis</h2>
{{ range .Charts }}<div class="chart">
{{ .Element }}
{{ .Script }}
</div>
{{ end }}{{ end }}
</body>
</html>
`))
