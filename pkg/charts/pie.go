package charts

import (
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/anrid/cancer-stats/pkg/stats"
)

type PieOptions struct {
	Title  string
	Width  int
	Height int
}

func DefaultPieOptions() PieOptions {
	return PieOptions{
		Title:  "Global Distribution of Cancer-Caused Deaths and Cancer Types 2019",
		Width:  1200,
		Height: 700,
	}
}

// RenderPie draws one slice per grouped cancer type.
func RenderPie(w io.Writer, d stats.GroupedDistribution, o PieOptions) error {
	pc := chart.PieChart{
		Title:      o.Title,
		TitleStyle: titleStyle(),
		Width:      o.Width,
		Height:     o.Height,
		Values:     pieValues(d),
	}
	return pc.Render(chart.PNG, w)
}

func pieValues(d stats.GroupedDistribution) []chart.Value {
	total := d.Sum()
	if total <= 0 {
		return []chart.Value{{Value: 1, Label: "No data"}}
	}

	values := make([]chart.Value, 0, d.Len())
	for i, v := range d.Values {
		values = append(values, chart.Value{
			Value: v,
			Label: fmt.Sprintf("%s (%s)", d.Labels[i], PercentLabel(v/total)),
		})
	}
	return values
}
