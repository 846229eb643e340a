// Package plot renders finalized series with go-echarts.
package plot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/flashcode/gitchart/internal/chart"
)

const hoursPerDay = 24

// minLabelStep is the smallest thinning step for crowded x axes.
const minLabelStep = 2

// BuildBar renders a series as a bar chart. Long timelines get their x-axis
// labels thinned to at most maxXLabels readable ticks.
func BuildBar(title, subtitle string, series chart.Series, co *ChartOpts, rotation, maxXLabels int) *charts.Bar {
	labels := make([]string, len(series))
	data := make([]opts.BarData, len(series))

	for i, entry := range series {
		labels[i] = entry.Label
		data[i] = opts.BarData{Value: entry.Value}
	}

	if maxXLabels > 0 && len(labels) > maxXLabels {
		labels = thinLabels(labels, maxXLabels)
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithColorsOpts(co.Colors()),
		charts.WithInitializationOpts(co.Init()),
		charts.WithTitleOpts(co.Title(title, subtitle)),
		charts.WithTooltipOpts(co.Tooltip("axis")),
		charts.WithGridOpts(co.Grid()),
		charts.WithXAxisOpts(co.XAxis(labels, rotation)),
		charts.WithYAxisOpts(co.YAxis()),
	)

	bar.SetXAxis(labels)
	bar.AddSeries("Commits", data)

	return bar
}

// BuildPie renders a series as a pie chart with "label (value)" slices.
func BuildPie(title, subtitle string, series chart.Series, co *ChartOpts) *charts.Pie {
	data := make([]opts.PieData, len(series))
	for i, entry := range series {
		data[i] = opts.PieData{
			Name:  fmt.Sprintf("%s (%d)", entry.Label, entry.Value),
			Value: entry.Value,
		}
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithColorsOpts(co.Colors()),
		charts.WithInitializationOpts(co.Init()),
		charts.WithTitleOpts(co.Title(title, subtitle)),
		charts.WithTooltipOpts(co.Tooltip("item")),
		charts.WithLegendOpts(co.Legend()),
	)

	pie.AddSeries("Commits", data).
		SetSeriesOptions(
			charts.WithPieChartOpts(opts.PieChart{Radius: "60%"}),
			charts.WithLabelOpts(opts.Label{
				Show:      opts.Bool(true),
				Color:     co.TextMutedColor(),
				Formatter: "{b}",
			}),
		)

	return pie
}

// BuildHourWeek renders the weekday-by-hour dot chart as a 24x7 heatmap. The
// series must carry the full fixed domain in "<weekday> <hour>" label order.
func BuildHourWeek(title, subtitle string, series chart.Series, co *ChartOpts) *charts.HeatMap {
	weekdays := chart.Weekdays()

	hours := make([]string, hoursPerDay)
	for h := range hours {
		hours[h] = fmt.Sprintf("%02d", h)
	}

	// Reverse weekday order so Monday renders as the top row.
	rows := make([]string, len(weekdays))
	rowIndex := make(map[string]int, len(weekdays))

	for i, day := range weekdays {
		rows[len(weekdays)-1-i] = day
		rowIndex[day] = len(weekdays) - 1 - i
	}

	maxCount := 0
	data := make([]opts.HeatMapData, 0, len(series))

	for _, entry := range series {
		fields := strings.Fields(entry.Label)
		if len(fields) != 2 {
			continue
		}

		hour, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}

		if entry.Value > maxCount {
			maxCount = entry.Value
		}

		data = append(data, opts.HeatMapData{Value: []any{hour, rowIndex[fields[0]], entry.Value}})
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(co.Init()),
		charts.WithTitleOpts(co.Title(title, subtitle)),
		charts.WithTooltipOpts(co.Tooltip("item")),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "category", Data: hours,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
			AxisLabel: &opts.AxisLabel{FontSize: labelFontSize, Color: co.TextMutedColor()},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "category", Data: rows,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
			AxisLabel: &opts.AxisLabel{FontSize: labelFontSize, Color: co.TextMutedColor()},
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true), Min: 0, Max: float32(maxCount),
			InRange:   &opts.VisualMapInRange{Color: heatColors},
			Orient:    "horizontal", Left: "center", Bottom: "2%",
			TextStyle: &opts.TextStyle{Color: co.TextMutedColor()},
		}),
		charts.WithGridOpts(opts.Grid{Left: "8%", Right: "5%", Top: "80", Bottom: "18%"}),
	)

	hm.AddSeries("Commits", data)

	return hm
}

// thinLabels keeps roughly maxLabels labels, blanking the rest. Counting
// starts from the newest entry so the last label always survives.
func thinLabels(labels []string, maxLabels int) []string {
	thinned := append([]string(nil), labels...)

	step := (len(thinned) / maxLabels) * minLabelStep
	if step < minLabelStep {
		step = minLabelStep
	}

	count := 0

	for i := len(thinned) - 1; i >= 0; i-- {
		if count%step != 0 {
			thinned[i] = ""
		}

		count++
	}

	return thinned
}
