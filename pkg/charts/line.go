package charts

import (
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/anrid/cancer-stats/pkg/stats"
)

// LineOptions fixes the axes of the cohort line chart.
type LineOptions struct {
	Title  string
	Width  int
	Height int

	XMin, XMax float64
	YMin, YMax float64

	// Y ticks run from YTickStart up to YMax (exclusive) every YTickStep.
	YTickStart float64
	YTickStep  float64
}

func DefaultLineOptions() LineOptions {
	return LineOptions{
		Title:      "Cancer attributed Deaths of 5 Countries (2000-2019)",
		Width:      1200,
		Height:     600,
		XMin:       2000,
		XMax:       2019,
		YMin:       18000,
		YMax:       36000,
		YTickStart: 20000,
		YTickStep:  2000,
	}
}

// RenderLine draws one line per country of total cancer deaths by year.
func RenderLine(w io.Writer, series []stats.CountrySeries, o LineOptions) error {
	ch := chart.Chart{
		Title:      o.Title,
		TitleStyle: titleStyle(),
		Width:      o.Width,
		Height:     o.Height,
		Background: chart.Style{Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Name:  "Year",
			Range: axisRange(o.XMin, o.XMax),
			Ticks: rangeTicks(o.XMin, o.XMax+1, 1),
		},
		YAxis: chart.YAxis{
			Name:  "Total Cancer Deaths",
			Range: axisRange(o.YMin, o.YMax),
			Ticks: rangeTicks(o.YTickStart, o.YMax, o.YTickStep),
		},
		Series: lineSeries(series, o),
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return ch.Render(chart.PNG, w)
}

func lineSeries(series []stats.CountrySeries, o LineOptions) []chart.Series {
	out := make([]chart.Series, 0, len(series))
	for i, s := range series {
		if len(s.Years) == 0 {
			continue
		}
		col := chart.GetDefaultColor(i)
		out = append(out, chart.ContinuousSeries{
			Name: s.Country,
			Style: chart.Style{
				StrokeColor: col,
				StrokeWidth: 2,
				DotColor:    col,
				DotWidth:    4,
			},
			XValues: s.Years,
			YValues: s.Totals,
		})
	}

	// go-chart needs at least one visible series; an empty cohort gets a
	// transparent one so the axes still come out.
	if len(out) == 0 {
		out = append(out, chart.ContinuousSeries{
			Name: "No data",
			Style: chart.Style{
				StrokeColor: drawing.ColorTransparent,
				StrokeWidth: 1,
				DotColor:    drawing.ColorTransparent,
			},
			XValues: []float64{o.XMin, o.XMax},
			YValues: []float64{o.YMin, o.YMin},
		})
	}
	return out
}

// axisRange widens a single-value axis, go-chart rejects a zero delta.
func axisRange(lo, hi float64) *chart.ContinuousRange {
	if hi <= lo {
		return &chart.ContinuousRange{Min: lo - 0.5, Max: lo + 0.5}
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}
}
