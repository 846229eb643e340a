package plot

// Theme selects the chart color scheme.
type Theme string

// Available themes.
const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ThemeConfig holds the colors applied to chart chrome.
type ThemeConfig struct {
	Background string
	Text       string
	TextMuted  string
	Axis       string
	Grid       string
}

// seriesColors is the series palette, shared by both themes.
var seriesColors = []string{
	"#9999ff", "#8cedff", "#b6e354",
	"#feed6c", "#ff9966", "#ff0000",
	"#ff00cc", "#899ca1", "#bf4646",
}

// heatColors is the low-to-high gradient of the hour-of-week heatmap.
var heatColors = []string{"#ebedf0", "#9be9a8", "#40c463", "#30a14e", "#216e39"}

// GetThemeConfig returns the color set of a theme.
func GetThemeConfig(theme Theme) ThemeConfig {
	if theme == ThemeLight {
		return ThemeConfig{
			Background: "#ffffff",
			Text:       "rgba(0, 0, 0, 0.9)",
			TextMuted:  "rgba(0, 0, 0, 0.6)",
			Axis:       "rgba(0, 0, 0, 0.4)",
			Grid:       "rgba(0, 0, 0, 0.1)",
		}
	}

	return ThemeConfig{
		Background: "#1c1917",
		Text:       "rgba(255, 255, 255, 0.9)",
		TextMuted:  "rgba(255, 255, 255, 0.6)",
		Axis:       "rgba(255, 255, 255, 0.4)",
		Grid:       "rgba(255, 255, 255, 0.1)",
	}
}
