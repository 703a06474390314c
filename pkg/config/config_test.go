package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anrid/cancer-stats/pkg/stats"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 2000, cfg.Cohort.YearMin)
	assert.Equal(t, 2019, cfg.Cohort.YearMax)
	assert.Equal(t, []string{"Sweden", "Chile", "Hungary", "Belgium", "Greece"}, cfg.Cohort.Countries)
	assert.Equal(t, 2019, cfg.Comparison.Year)
	assert.Equal(t, 2019, cfg.Distribution.Year)
	assert.Equal(t, 1_400_000.0, cfg.Distribution.Threshold)
	assert.Equal(t, "Global_Distribution_of_Cancer-Caused_Deaths.png", cfg.Output.PieChart)

	p, err := cfg.Params()
	require.NoError(t, err)
	assert.Equal(t, stats.Breast, p.TypeA)
	assert.Equal(t, stats.TrachealBronchusLung, p.TypeB)
	assert.Equal(t, stats.Cohort{YearMin: 2000, YearMax: 2019, Countries: cfg.Cohort.Countries}, p.Cohort)
}

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
	t.Setenv(InputEnv, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_File(t *testing.T) {
	t.Setenv(InputEnv, "")

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[input]
path = "data/deaths.xlsx"

[cohort]
year_min = 2010
countries = ["Norway", "Peru"]

[comparison]
type_a = "prostate"

[distribution]
threshold = 500000.0
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "data/deaths.xlsx", cfg.Input.Path)
	assert.Equal(t, 2010, cfg.Cohort.YearMin)
	assert.Equal(t, 2019, cfg.Cohort.YearMax)
	assert.Equal(t, []string{"Norway", "Peru"}, cfg.Cohort.Countries)
	assert.Equal(t, 500000.0, cfg.Distribution.Threshold)

	p, err := cfg.Params()
	require.NoError(t, err)
	assert.Equal(t, stats.Prostate, p.TypeA)
	assert.Equal(t, stats.TrachealBronchusLung, p.TypeB)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[cohort\nyear_min = "), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv(InputEnv, "https://example.com/deaths.csv")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/deaths.csv", cfg.Input.Path)
}

func TestParams_Errors(t *testing.T) {
	t.Run("unknown type", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Comparison.TypeB = "Lungs"
		_, err := cfg.Params()
		assert.ErrorContains(t, err, "type_b")
	})

	t.Run("inverted years", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Cohort.YearMin = 2020
		_, err := cfg.Params()
		assert.Error(t, err)
	})
}

func TestParams_CopiesCountries(t *testing.T) {
	cfg := DefaultConfig()
	p, err := cfg.Params()
	require.NoError(t, err)

	p.Cohort.Countries[0] = "Mars"
	assert.Equal(t, "Sweden", cfg.Cohort.Countries[0])
}

func TestChartOptions(t *testing.T) {
	cfg := DefaultConfig()

	lo := cfg.LineOptions()
	assert.Equal(t, "Cancer attributed Deaths of 5 Countries (2000-2019)", lo.Title)
	assert.Equal(t, 2000.0, lo.XMin)
	assert.Equal(t, 2019.0, lo.XMax)
	assert.Equal(t, 18000.0, lo.YMin)
	assert.Equal(t, 36000.0, lo.YMax)
	assert.Equal(t, 20000.0, lo.YTickStart)
	assert.Equal(t, 2000.0, lo.YTickStep)

	assert.Contains(t, cfg.BarOptions().Title, "Breast vs. Tracheal, bronchus, and lung")
	assert.Contains(t, cfg.PieOptions().Title, "2019")
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(-1))

	logger, err = NewLogger(false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(-1))
}
