package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jengzang/borough-records-go/internal/config"
	"github.com/jengzang/borough-records-go/internal/database"
	"github.com/jengzang/borough-records-go/internal/dataset"
	"github.com/jengzang/borough-records-go/internal/heatmap"
	"github.com/jengzang/borough-records-go/internal/loader"
	"github.com/jengzang/borough-records-go/internal/logging"
	"github.com/jengzang/borough-records-go/internal/service"
)

// cli holds flag values shared by every subcommand
type cli struct {
	source   string
	dataPath string
	dbPath   string
	logLevel string

	from, to string
	metric   string
	hue      float64

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	defaults := config.Default()
	if cfg, err := config.Load(); err == nil {
		defaults = cfg
	}
	c := &cli{}

	root := &cobra.Command{
		Use:          "boroughctl",
		Short:        "Query London borough case, death and mobility records",
		Long:         `boroughctl loads a CSV or SQLite record source and prints heat map, statistics and latest-value queries as JSON.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.logger = logging.NewWithWriter(cmd.ErrOrStderr(), c.logLevel, logging.FormatText)
		},
	}
	root.PersistentFlags().StringVar(&c.source, "source", defaults.DataSource, "record source: csv or sqlite")
	root.PersistentFlags().StringVar(&c.dataPath, "data", defaults.DataPath, "CSV file path")
	root.PersistentFlags().StringVar(&c.dbPath, "db", defaults.DBPath, "SQLite database path")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "warn", "log level")

	heatmapCmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Per-borough cumulative values and colors for a date range",
		Args:  cobra.NoArgs,
		RunE:  c.runHeatmap,
	}
	heatmapCmd.Flags().Float64Var(&c.hue, "hue", defaults.Heatmap.HueUpperBound, "hue of the lowest value, in degrees")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Summary statistics for a date range",
		Args:  cobra.NoArgs,
		RunE:  c.runStats,
	}

	latestCmd := &cobra.Command{
		Use:   "latest",
		Short: "Each borough's most recent record with a value for the metric",
		Args:  cobra.NoArgs,
		RunE:  c.runLatest,
	}

	for _, cmd := range []*cobra.Command{heatmapCmd, statsCmd, latestCmd} {
		cmd.Flags().StringVar(&c.from, "from", "", "first date, YYYY-MM-DD (inclusive)")
		cmd.Flags().StringVar(&c.to, "to", "", "last date, YYYY-MM-DD (inclusive)")
		_ = cmd.MarkFlagRequired("from")
		_ = cmd.MarkFlagRequired("to")
	}
	heatmapCmd.Flags().StringVar(&c.metric, "metric", string(service.DefaultMetric), "metric key")
	latestCmd.Flags().StringVar(&c.metric, "metric", string(service.DefaultMetric), "metric key")

	importCmd := &cobra.Command{
		Use:   "import [csv file]",
		Short: "Replace the SQLite record table with the contents of a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runImport,
	}

	root.AddCommand(heatmapCmd, statsCmd, latestCmd, importCmd)
	return root
}

func (c *cli) provider() (*dataset.Provider, func() error, error) {
	source, closeSource, err := loader.Open(c.source, c.dataPath, c.dbPath)
	if err != nil {
		return nil, closeSource, err
	}
	return dataset.NewProvider(source, c.logger), closeSource, nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (c *cli) runHeatmap(cmd *cobra.Command, args []string) error {
	from, to, err := service.ParseRange(c.from, c.to)
	if err != nil {
		return err
	}
	metric, err := service.ParseMetric(c.metric)
	if err != nil {
		return err
	}

	p, closeSource, err := c.provider()
	defer closeSource()
	if err != nil {
		return err
	}

	palette := heatmap.DefaultPalette
	palette.UpperHue = c.hue
	result, err := service.NewHeatmapService(p, palette).Build(from, to, metric)
	if err != nil {
		return err
	}
	return printJSON(cmd, result)
}

func (c *cli) runStats(cmd *cobra.Command, args []string) error {
	from, to, err := service.ParseRange(c.from, c.to)
	if err != nil {
		return err
	}

	p, closeSource, err := c.provider()
	defer closeSource()
	if err != nil {
		return err
	}

	summary, err := service.NewStatsService(p).Summary(from, to)
	if err != nil {
		return err
	}
	return printJSON(cmd, summary)
}

func (c *cli) runLatest(cmd *cobra.Command, args []string) error {
	from, to, err := service.ParseRange(c.from, c.to)
	if err != nil {
		return err
	}
	metric, err := service.ParseMetric(c.metric)
	if err != nil {
		return err
	}

	p, closeSource, err := c.provider()
	defer closeSource()
	if err != nil {
		return err
	}

	records, err := service.NewRecordService(p).Latest(from, to, metric)
	if err != nil {
		return err
	}
	return printJSON(cmd, records)
}

func (c *cli) runImport(cmd *cobra.Command, args []string) error {
	db, err := database.Open(database.Config{Path: c.dbPath})
	if err != nil {
		return err
	}
	defer db.Close()

	n, err := loader.ImportCSV(db, args[0])
	if err != nil {
		return fmt.Errorf("import %s: %w", args[0], err)
	}
	c.logger.Info("import complete", "records", n, "db", c.dbPath)
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d records into %s\n", n, c.dbPath)
	return nil
}
