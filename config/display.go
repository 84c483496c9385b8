package config

// DisplayConfig carries the page theme and chart styling. It is built once at
// startup and handed to the presentation layer by value.
type DisplayConfig struct {
	PageTitle string
	Heading   string

	BackgroundColor  string
	TextColor        string
	AccentColor      string
	CardColor        string
	CardBorderColor  string
	CardHeadingColor string
	MetricValueColor string

	// go-echarts theme name
	ChartTheme  string
	ChartWidth  string
	ChartHeight string

	BarColors  []string
	LineColor  string
	PiePalette []string
}

// NewDisplayConfig returns the dark dashboard theme.
func NewDisplayConfig() DisplayConfig {
	return DisplayConfig{
		PageTitle: "Weather Dashboard",
		Heading:   "🌩 Weather Dashboard",

		BackgroundColor:  "#0D0F1C",
		TextColor:        "#E0E6ED",
		AccentColor:      "#00C9A7",
		CardColor:        "#1A1C2B",
		CardBorderColor:  "#33364D",
		CardHeadingColor: "#B0B8C4",
		MetricValueColor: "#1FFFC6",

		ChartTheme:  "dark",
		ChartWidth:  "100%",
		ChartHeight: "420px",

		BarColors: []string{"#00FFE3", "#FF6EC7"},
		LineColor: "#00FFE3",
		// plotly sequential Teal
		PiePalette: []string{
			"rgb(209, 238, 234)",
			"rgb(168, 219, 217)",
			"rgb(133, 196, 201)",
			"rgb(104, 171, 184)",
			"rgb(79, 144, 166)",
			"rgb(59, 115, 143)",
			"rgb(42, 86, 116)",
		},
	}
}
