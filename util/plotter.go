package util

import (
	"fmt"
	"html/template"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/render"

	"weather-dashboard/config"
	"weather-dashboard/models"
)

// Chart titles as shown on the dashboard.
const (
	SNAPSHOT_CHART_TITLE     = "Temperature & Humidity"
	HOURLY_CHART_TITLE       = "Hourly Temperature Trend"
	DISTRIBUTION_CHART_TITLE = "Weather Type Distribution (Mock)"
)

// ChartSnippet is one chart ready to embed in a page that already loads echarts.
type ChartSnippet struct {
	Element template.HTML
	Script  template.HTML
}

func initOpts(display config.DisplayConfig, title string) charts.GlobalOpts {
	return charts.WithInitializationOpts(opts.Initialization{
		PageTitle:       title,
		Theme:           display.ChartTheme,
		Width:           display.ChartWidth,
		Height:          display.ChartHeight,
		BackgroundColor: display.CardColor,
	})
}

// NewSnapshotBarChart plots current temperature next to humidity.
func NewSnapshotBarChart(snapshot models.WeatherSnapshot, display config.DisplayConfig) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		initOpts(display, SNAPSHOT_CHART_TITLE),
		charts.WithTitleOpts(opts.Title{Title: SNAPSHOT_CHART_TITLE}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
	)

	values := []float64{snapshot.TemperatureC, snapshot.HumidityPct}
	data := make([]opts.BarData, len(values))
	for i, v := range values {
		data[i] = opts.BarData{Value: v}
		// one colour per bar, cycling when there are fewer colours than bars
		if len(display.BarColors) > 0 {
			data[i].ItemStyle = &opts.ItemStyle{Color: display.BarColors[i%len(display.BarColors)]}
		}
	}

	bar.SetXAxis([]string{"Temperature (°C)", "Humidity (%)"}).
		AddSeries("Value", data, charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}))
	return bar
}

// NewHourlyLineChart plots the synthetic hourly temperature series.
func NewHourlyLineChart(hourly []models.HourlySample, display config.DisplayConfig) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		initOpts(display, HOURLY_CHART_TITLE),
		charts.WithTitleOpts(opts.Title{Title: HOURLY_CHART_TITLE}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Hour"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Temperature (°C)", Scale: opts.Bool(true)}),
	)

	hours := make([]int, len(hourly))
	data := make([]opts.LineData, len(hourly))
	for i, sample := range hourly {
		hours[i] = sample.Hour
		data[i] = opts.LineData{Value: sample.TemperatureC}
	}

	line.SetXAxis(hours).
		AddSeries("Temperature", data,
			charts.WithLineChartOpts(opts.LineChart{
				Smooth:     opts.Bool(true),
				ShowSymbol: opts.Bool(true),
			}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: display.LineColor}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: display.LineColor}),
		)
	return line
}

// NewDistributionPieChart plots the synthetic condition distribution.
func NewDistributionPieChart(distribution []models.ConditionShare, display config.DisplayConfig) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		initOpts(display, DISTRIBUTION_CHART_TITLE),
		charts.WithTitleOpts(opts.Title{Title: DISTRIBUTION_CHART_TITLE}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
		charts.WithColorsOpts(opts.Colors(display.PiePalette)),
	)

	data := make([]opts.PieData, len(distribution))
	for i, share := range distribution {
		data[i] = opts.PieData{Name: share.Label, Value: share.Percentage}
	}

	pie.AddSeries("Share", data,
		charts.WithPieChartOpts(opts.PieChart{Radius: []string{"35%", "65%"}}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {d}%"}),
	)
	return pie
}

// RenderChartSnippets builds the three dashboard charts as embeddable snippets,
// in display order: snapshot bar, hourly line, distribution pie.
func RenderChartSnippets(dashboard *models.Dashboard, display config.DisplayConfig) []ChartSnippet {
	rendered := []render.ChartSnippet{
		NewSnapshotBarChart(dashboard.Snapshot, display).RenderSnippet(),
		NewHourlyLineChart(dashboard.Hourly, display).RenderSnippet(),
		NewDistributionPieChart(dashboard.Distribution, display).RenderSnippet(),
	}

	snippets := make([]ChartSnippet, len(rendered))
	for i, s := range rendered {
		// go-echarts output built from numbers and fixed labels only
		snippets[i] = ChartSnippet{
			Element: template.HTML(s.Element),
			Script:  template.HTML(s.Script),
		}
	}
	return snippets
}

// RenderDashboardCharts writes the three charts as a standalone HTML page.
func RenderDashboardCharts(w io.Writer, dashboard *models.Dashboard, display config.DisplayConfig) error {
	page := components.NewPage()
	page.SetPageTitle(fmt.Sprintf("%s: %s", display.PageTitle, dashboard.Location))
	page.AddCharts(
		NewSnapshotBarChart(dashboard.Snapshot, display),
		NewHourlyLineChart(dashboard.Hourly, display),
		NewDistributionPieChart(dashboard.Distribution, display),
	)

	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render dashboard charts: %w", err)
	}
	return nil
}
