// Package charts renders the summary views to PNG images with go-chart.
package charts

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	chart "github.com/wcharczuk/go-chart/v2"
)

// Default output file names.
const (
	LineChartFile = "CancerVsCountry.png"
	BarChartFile  = "Breast_cancer_Vs_Lung_cancer.png"
	PieChartFile  = "Global_Distribution_of_Cancer-Caused_Deaths.png"
)

// RenderFunc writes one image to w.
type RenderFunc func(w io.Writer) error

// SavePNG renders into memory first so a failed render leaves no partial file.
func SavePNG(dir, name string, render RenderFunc) (string, error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

func titleStyle() chart.Style {
	return chart.Style{FontSize: 14}
}

// rangeTicks returns ticks from start up to, but excluding, stop.
func rangeTicks(start, stop, step float64) []chart.Tick {
	var ticks []chart.Tick
	if step <= 0 {
		return ticks
	}
	for v := start; v < stop; v += step {
		ticks = append(ticks, chart.Tick{Value: v, Label: fmt.Sprintf("%.0f", v)})
	}
	return ticks
}
