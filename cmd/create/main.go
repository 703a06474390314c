package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/anrid/cancer-stats/pkg/charts"
	"github.com/anrid/cancer-stats/pkg/config"
	"github.com/anrid/cancer-stats/pkg/stats"
)

var (
	configPath string
	inputPath  string
	outDir     string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "create",
	Short: "Render the cancer deaths charts and summary workbook",
	Long: `Loads the cancer deaths by type dataset, derives the cohort totals,
the comparison of two cancer types and the global distribution, and writes
a line chart, a stacked bar chart, a pie chart and an XLSX summary.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "config.toml", "TOML config file")
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "dataset path or URL (overrides config)")
	rootCmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (overrides config)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := config.NewLogger(verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if inputPath != "" {
		cfg.Input.Path = inputPath
	}
	if outDir != "" {
		cfg.Output.Dir = outDir
	}

	params, err := cfg.Params()
	if err != nil {
		return err
	}

	table, err := stats.NewLoader(logger).Load(cfg.Input.Path)
	if err != nil {
		return err
	}
	info := table.Info()
	logger.Info("Dataset",
		zap.Int("rows", info.Rows),
		zap.Int("countries", info.Countries),
		zap.Int("firstYear", info.FirstYear),
		zap.Int("lastYear", info.LastYear))

	summary, err := stats.Analyze(table, params, logger)
	if err != nil {
		return err
	}

	renders := []struct {
		name   string
		render charts.RenderFunc
	}{
		{cfg.Output.LineChart, func(w io.Writer) error { return charts.RenderLine(w, summary.Series, cfg.LineOptions()) }},
		{cfg.Output.BarChart, func(w io.Writer) error { return charts.RenderStackedBar(w, summary.Comparison, cfg.BarOptions()) }},
		{cfg.Output.PieChart, func(w io.Writer) error { return charts.RenderPie(w, summary.Distribution, cfg.PieOptions()) }},
	}
	for _, r := range renders {
		path, err := charts.SavePNG(cfg.Output.Dir, r.name, r.render)
		if err != nil {
			return err
		}
		logger.Info("Saved chart", zap.String("path", path))
	}

	if cfg.Output.Workbook != "" {
		path := filepath.Join(cfg.Output.Dir, cfg.Output.Workbook)
		if err := stats.WriteWorkbook(path, summary); err != nil {
			return err
		}
		logger.Info("Saved workbook", zap.String("path", path))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Done, outputs in %s\n", cfg.Output.Dir)
	return nil
}
