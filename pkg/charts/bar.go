package charts

import (
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/anrid/cancer-stats/pkg/stats"
)

type BarOptions struct {
	Title    string
	Width    int
	Height   int
	BarWidth int
}

func DefaultBarOptions() BarOptions {
	return BarOptions{
		Title:    "Breast vs. Tracheal, bronchus, and lung Cancer Deaths of 5 Countries in 2019",
		Width:    1000,
		Height:   600,
		BarWidth: 100,
	}
}

// RenderStackedBar draws one bar per country split into the two compared
// cancer types, each segment labelled with its percentage.
func RenderStackedBar(w io.Writer, pairs []stats.ProportionPair, o BarOptions) error {
	sbc := chart.StackedBarChart{
		Title:      o.Title,
		TitleStyle: titleStyle(),
		Width:      o.Width,
		Height:     o.Height,
		Background: chart.Style{Padding: chart.Box{Top: 60, Left: 20, Right: 20, Bottom: 20}},
		BarSpacing: 60,
		Bars:       stackedBars(pairs, o.BarWidth),
	}
	return sbc.Render(chart.PNG, w)
}

func stackedBars(pairs []stats.ProportionPair, width int) []chart.StackedBar {
	colA, colB := chart.GetDefaultColor(0), chart.GetDefaultColor(1)

	bars := make([]chart.StackedBar, 0, len(pairs))
	for _, p := range pairs {
		bars = append(bars, chart.StackedBar{
			Name:  p.Country,
			Width: width,
			Values: []chart.Value{
				{Value: p.ShareA, Label: PercentLabel(p.ShareA), Style: segmentStyle(colA)},
				{Value: p.ShareB, Label: PercentLabel(p.ShareB), Style: segmentStyle(colB)},
			},
		})
	}

	if len(bars) == 0 {
		bars = append(bars, chart.StackedBar{
			Name:  "No data",
			Width: width,
			Values: []chart.Value{
				{Value: 1, Style: segmentStyle(chart.ColorAlternateGray)},
			},
		})
	}
	return bars
}

func segmentStyle(col drawing.Color) chart.Style {
	return chart.Style{
		FillColor:   col,
		StrokeColor: col,
		StrokeWidth: 0,
		FontColor:   chart.ColorWhite,
		FontSize:    12,
	}
}

// PercentLabel formats a share as a percentage with one decimal, e.g. "47.3%".
func PercentLabel(share float64) string {
	return fmt.Sprintf("%.1f%%", stats.Percent(share))
}
