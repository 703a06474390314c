package main

import (
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/anrid/cancer-stats/pkg/config"
	"github.com/anrid/cancer-stats/pkg/stats"
)

var (
	configPath string
	inputPath  string
	verbose    bool
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:          "show",
	Short:        "Print the derived cancer deaths views",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "config.toml", "TOML config file")
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "dataset path or URL (overrides config)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "dump the full summary")
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

	if debug {
		spew.Fdump(cmd.OutOrStdout(), summary.Comparison, summary.TypeTotals, summary.Distribution)
	}

	stats.PrintReport(cmd.OutOrStdout(), summary)
	return nil
}
