package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/anrid/cancer-stats/pkg/charts"
	"github.com/anrid/cancer-stats/pkg/stats"
)

// InputEnv overrides the dataset location.
const InputEnv = "CANCER_STATS_INPUT"

// Config is the complete tool configuration.
type Config struct {
	Input        InputConfig        `toml:"input"`
	Output       OutputConfig       `toml:"output"`
	Cohort       CohortConfig       `toml:"cohort"`
	Comparison   ComparisonConfig   `toml:"comparison"`
	Distribution DistributionConfig `toml:"distribution"`
	LineChart    LineChartConfig    `toml:"line_chart"`
}

type InputConfig struct {
	// Local path or http(s) URL of a CSV, XLS or XLSX file.
	Path string `toml:"path"`
}

type OutputConfig struct {
	Dir       string `toml:"dir"`
	LineChart string `toml:"line_chart"`
	BarChart  string `toml:"bar_chart"`
	PieChart  string `toml:"pie_chart"`
	// Summary workbook, empty disables it.
	Workbook string `toml:"workbook"`
}

type CohortConfig struct {
	YearMin   int      `toml:"year_min"`
	YearMax   int      `toml:"year_max"`
	Countries []string `toml:"countries"`
}

type ComparisonConfig struct {
	Year  int    `toml:"year"`
	TypeA string `toml:"type_a"`
	TypeB string `toml:"type_b"`
}

type DistributionConfig struct {
	Year      int     `toml:"year"`
	Threshold float64 `toml:"threshold"`
}

type LineChartConfig struct {
	YMin       float64 `toml:"y_min"`
	YMax       float64 `toml:"y_max"`
	YTickStart float64 `toml:"y_tick_start"`
	YTickStep  float64 `toml:"y_tick_step"`
}

func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Path: "Dataset/total-cancer-deaths-by-type.csv",
		},
		Output: OutputConfig{
			Dir:       ".",
			LineChart: charts.LineChartFile,
			BarChart:  charts.BarChartFile,
			PieChart:  charts.PieChartFile,
			Workbook:  "cancer-summary.xlsx",
		},
		Cohort: CohortConfig{
			YearMin:   2000,
			YearMax:   2019,
			Countries: []string{"Sweden", "Chile", "Hungary", "Belgium", "Greece"},
		},
		Comparison: ComparisonConfig{
			Year:  2019,
			TypeA: stats.Breast.String(),
			TypeB: stats.TrachealBronchusLung.String(),
		},
		Distribution: DistributionConfig{
			Year:      2019,
			Threshold: 1_400_000,
		},
		LineChart: LineChartConfig{
			YMin:       18000,
			YMax:       36000,
			YTickStart: 20000,
			YTickStep:  2000,
		},
	}
}

// Load reads path on top of the defaults. An empty path or a missing file
// leaves the defaults in place.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(InputEnv); v != "" {
		c.Input.Path = v
	}
}

// Params resolves the analysis parameters.
func (c *Config) Params() (stats.Params, error) {
	var p stats.Params

	if c.Cohort.YearMin > c.Cohort.YearMax {
		return p, fmt.Errorf("cohort year_min %d is after year_max %d", c.Cohort.YearMin, c.Cohort.YearMax)
	}

	a, err := stats.ParseCancerType(c.Comparison.TypeA)
	if err != nil {
		return p, fmt.Errorf("comparison type_a: %w", err)
	}
	b, err := stats.ParseCancerType(c.Comparison.TypeB)
	if err != nil {
		return p, fmt.Errorf("comparison type_b: %w", err)
	}

	p = stats.Params{
		Cohort: stats.Cohort{
			YearMin:   c.Cohort.YearMin,
			YearMax:   c.Cohort.YearMax,
			Countries: append([]string(nil), c.Cohort.Countries...),
		},
		ComparisonYear:   c.Comparison.Year,
		TypeA:            a,
		TypeB:            b,
		DistributionYear: c.Distribution.Year,
		Threshold:        c.Distribution.Threshold,
	}
	return p, nil
}

// LineOptions derives the line chart axes from the cohort and line settings.
func (c *Config) LineOptions() charts.LineOptions {
	o := charts.DefaultLineOptions()
	o.Title = fmt.Sprintf("Cancer attributed Deaths of %d Countries (%d-%d)",
		len(c.Cohort.Countries), c.Cohort.YearMin, c.Cohort.YearMax)
	o.XMin = float64(c.Cohort.YearMin)
	o.XMax = float64(c.Cohort.YearMax)
	o.YMin = c.LineChart.YMin
	o.YMax = c.LineChart.YMax
	o.YTickStart = c.LineChart.YTickStart
	o.YTickStep = c.LineChart.YTickStep
	return o
}

func (c *Config) BarOptions() charts.BarOptions {
	o := charts.DefaultBarOptions()
	o.Title = fmt.Sprintf("%s vs. %s Cancer Deaths of %d Countries in %d",
		c.Comparison.TypeA, c.Comparison.TypeB, len(c.Cohort.Countries), c.Comparison.Year)
	return o
}

func (c *Config) PieOptions() charts.PieOptions {
	o := charts.DefaultPieOptions()
	o.Title = fmt.Sprintf("Global Distribution of Cancer-Caused Deaths and Cancer Types %d", c.Distribution.Year)
	return o
}
