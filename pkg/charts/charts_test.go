package charts

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/anrid/cancer-stats/pkg/stats"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func requirePNG(t *testing.T, b []byte) {
	t.Helper()
	require.Greater(t, len(b), len(pngMagic))
	assert.Equal(t, pngMagic, b[:len(pngMagic)])
}

func TestRangeTicks(t *testing.T) {
	ticks := rangeTicks(20000, 36000, 2000)

	require.Len(t, ticks, 8)
	assert.Equal(t, 20000.0, ticks[0].Value)
	assert.Equal(t, "20000", ticks[0].Label)
	assert.Equal(t, 34000.0, ticks[7].Value)

	years := rangeTicks(2000, 2020, 1)
	require.Len(t, years, 20)
	assert.Equal(t, "2019", years[19].Label)

	assert.Empty(t, rangeTicks(0, 10, 0))
}

func TestRenderLine(t *testing.T) {
	series := []stats.CountrySeries{
		{Country: "Sweden", Years: []float64{2000, 2001, 2002}, Totals: []float64{21000, 21500, 22000}},
		{Country: "Greece", Years: []float64{2000, 2001, 2002}, Totals: []float64{25000, 25300, 25900}},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderLine(&buf, series, DefaultLineOptions()))
	requirePNG(t, buf.Bytes())
}

func TestRenderLine_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderLine(&buf, nil, DefaultLineOptions()))
	requirePNG(t, buf.Bytes())

	placeholder := lineSeries(nil, DefaultLineOptions())
	require.Len(t, placeholder, 1)
	assert.False(t, placeholder[0].GetStyle().Hidden)
	assert.Equal(t, drawing.ColorTransparent, placeholder[0].GetStyle().StrokeColor)
}

func TestRenderLine_SingleYear(t *testing.T) {
	o := DefaultLineOptions()
	o.XMin, o.XMax = 2019, 2019
	series := []stats.CountrySeries{
		{Country: "Sweden", Years: []float64{2019}, Totals: []float64{22000}},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderLine(&buf, series, o))
	requirePNG(t, buf.Bytes())

	buf.Reset()
	require.NoError(t, RenderLine(&buf, nil, o))
	requirePNG(t, buf.Bytes())
}

func TestAxisRange(t *testing.T) {
	r := axisRange(2019, 2019)
	assert.Equal(t, 2018.5, r.Min)
	assert.Equal(t, 2019.5, r.Max)

	r = axisRange(2000, 2019)
	assert.Equal(t, 2000.0, r.Min)
	assert.Equal(t, 2019.0, r.Max)
}

func TestRenderStackedBar(t *testing.T) {
	pairs := []stats.ProportionPair{
		{Country: "Sweden", ShareA: 0.3, ShareB: 0.7},
		{Country: "Chile", ShareA: 0.45, ShareB: 0.55},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderStackedBar(&buf, pairs, DefaultBarOptions()))
	requirePNG(t, buf.Bytes())

	bars := stackedBars(pairs, 100)
	require.Len(t, bars, 2)
	assert.Equal(t, "Sweden", bars[0].Name)
	assert.Equal(t, "30.0%", bars[0].Values[0].Label)
	assert.Equal(t, "70.0%", bars[0].Values[1].Label)
}

func TestRenderStackedBar_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderStackedBar(&buf, nil, DefaultBarOptions()))
	requirePNG(t, buf.Bytes())
}

func TestRenderPie(t *testing.T) {
	d := stats.GroupedDistribution{
		Values: []float64{200, 90},
		Labels: []string{"Y", stats.OthersLabel},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderPie(&buf, d, DefaultPieOptions()))
	requirePNG(t, buf.Bytes())

	values := pieValues(d)
	require.Len(t, values, 2)
	assert.Equal(t, "Y (69.0%)", values[0].Label)
	assert.Equal(t, "Others (31.0%)", values[1].Label)
}

func TestRenderPie_ZeroOthers(t *testing.T) {
	d := stats.GroupedDistribution{
		Values: []float64{200, 0},
		Labels: []string{"Y", stats.OthersLabel},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderPie(&buf, d, DefaultPieOptions()))
	requirePNG(t, buf.Bytes())
}

func TestRenderPie_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPie(&buf, stats.GroupedDistribution{Values: []float64{0}, Labels: []string{"Others"}}, DefaultPieOptions()))
	requirePNG(t, buf.Bytes())
}

func TestPercentLabel(t *testing.T) {
	assert.Equal(t, "33.3%", PercentLabel(1.0/3))
	assert.Equal(t, "0.0%", PercentLabel(0))
}

func TestSavePNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	path, err := SavePNG(dir, PieChartFile, func(w io.Writer) error {
		_, err := w.Write(pngMagic)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Global_Distribution_of_Cancer-Caused_Deaths.png"), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pngMagic, b)
}

func TestSavePNG_RenderError(t *testing.T) {
	dir := t.TempDir()
	boom := errors.New("boom")

	_, err := SavePNG(dir, LineChartFile, func(w io.Writer) error { return boom })
	require.ErrorIs(t, err, boom)

	_, statErr := os.Stat(filepath.Join(dir, LineChartFile))
	assert.True(t, os.IsNotExist(statErr))
}
