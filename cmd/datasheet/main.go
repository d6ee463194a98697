// Package main provides the CLI entry point for datasheet-go.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/datasheet-go/pkg/datasheet"
	"github.com/ukaji3/datasheet-go/pkg/datasheet/config"
	"github.com/ukaji3/datasheet-go/pkg/datasheet/models"
	"github.com/ukaji3/datasheet-go/pkg/datasheet/output"
	"github.com/ukaji3/datasheet-go/pkg/datasheet/parser"
	"go.uber.org/zap"
)

var (
	configPath string
	delimiter  string
	logLevel   string
	sheetName  string
	outputPath string
	pretty     bool
	asJSON     bool
	rowsShown  int
	cellRange  string
	pageNum    int
	pageSize   int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "datasheet",
		Short: "Inspect and summarize delimited text tables",
		Long: `datasheet-go loads CSV (or xlsx) tables into typed cells and
prints, pages, filters, summarizes and converts them.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML file with default settings")
	rootCmd.PersistentFlags().StringVarP(&delimiter, "delimiter", "d", "", "Field delimiter (default: ,)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&sheetName, "sheet", "", "Worksheet name for xlsx input (default: first)")

	describeCmd := &cobra.Command{
		Use:   "describe [input]",
		Short: "Show the first and last rows with row and column counts",
		Args:  cobra.ExactArgs(1),
		RunE:  runDescribe,
	}
	describeCmd.Flags().IntVarP(&rowsShown, "rows", "n", 0, "Leading and trailing rows to show")

	printCmd := &cobra.Command{
		Use:   "print [input]",
		Short: "Print the whole table or a cell range",
		Args:  cobra.ExactArgs(1),
		RunE:  runPrint,
	}
	printCmd.Flags().StringVar(&cellRange, "range", "", "A1-style range to print, e.g. B2:C4")

	statsCmd := &cobra.Command{
		Use:   "stats [input] [column]",
		Short: "Summarize a column",
		Args:  cobra.ExactArgs(2),
		RunE:  runStats,
	}
	statsCmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	statsCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	pageCmd := &cobra.Command{
		Use:   "page [input]",
		Short: "Print one page of body rows",
		Args:  cobra.ExactArgs(1),
		RunE:  runPage,
	}
	pageCmd.Flags().IntVar(&pageNum, "page", 1, "Page number (1-based)")
	pageCmd.Flags().IntVar(&pageSize, "size", 0, "Rows per page, at most 50")
	pageCmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	pageCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	filterCmd := &cobra.Command{
		Use:   "filter [input] [column] [value]",
		Short: "Print body rows whose column equals value",
		Args:  cobra.ExactArgs(3),
		RunE:  runFilter,
	}
	filterCmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	filterCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	convertCmd := &cobra.Command{
		Use:   "convert [input]",
		Short: "Convert between csv, csv.zst, xlsx and json",
		Args:  cobra.ExactArgs(1),
		RunE:  runConvert,
	}
	convertCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (.csv, .csv.zst, .xlsx, .json)")
	convertCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	_ = convertCmd.MarkFlagRequired("output")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the YAML settings file",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write the current settings as a YAML file (default: datasheet.yaml)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runConfigInit,
	})

	rootCmd.AddCommand(describeCmd, printCmd, statsCmd, pageCmd, filterCmd, convertCmd, configCmd)
	return rootCmd
}

// session bundles the resolved settings of one command run.
type session struct {
	cfg  *config.Config
	opts datasheet.Options
	log  *zap.Logger
}

func newSession() (*session, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if delimiter != "" {
		cfg.Delimiter = delimiter
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	return &session{
		cfg: cfg,
		opts: datasheet.Options{
			Delimiter:  cfg.DelimiterRune(),
			TrimFields: cfg.TrimFields,
			Logger:     logger,
		},
		log: logger,
	}, nil
}

func newLogger(level string) (*zap.Logger, error) {
	atomic, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = atomic
	zc.Encoding = "console"
	return zc.Build()
}

func runDescribe(cmd *cobra.Command, args []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}
	defer sess.log.Sync() //nolint:errcheck

	sheet, err := loadSheet(args[0], sess.opts)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	n := rowsShown
	if n == 0 {
		n = sess.cfg.DescribeRows
	}
	return sheet.Describe(cmd.OutOrStdout(), n)
}

func runPrint(cmd *cobra.Command, args []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}
	defer sess.log.Sync() //nolint:errcheck

	sheet, err := loadSheet(args[0], sess.opts)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	if cellRange == "" {
		return sheet.PrettyPrint(cmd.OutOrStdout())
	}

	cells, err := sheet.Region(cellRange)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, row := range cells {
		texts := make([]string, len(row))
		for i, cell := range row {
			texts[i] = cell.String()
		}
		if _, err := fmt.Fprintln(out, strings.Join(texts, string(sess.opts.FieldDelimiter()))); err != nil {
			return err
		}
	}
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}
	defer sess.log.Sync() //nolint:errcheck

	sheet, err := loadSheet(args[0], sess.opts)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	stats, err := sheet.Stats(args[1])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		data, err := output.StatsToJSON(stats, pretty || sess.cfg.Pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}
	return writeStats(out, stats)
}

func runPage(cmd *cobra.Command, args []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}
	defer sess.log.Sync() //nolint:errcheck

	sheet, err := loadSheet(args[0], sess.opts)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	size := pageSize
	if size == 0 {
		size = sess.cfg.PageSize
	}
	rows, err := sheet.Paginate(pageNum, size)
	if err != nil {
		return err
	}
	return writeRows(cmd, sheet, rows, sess.cfg.Pretty)
}

func runFilter(cmd *cobra.Command, args []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}
	defer sess.log.Sync() //nolint:errcheck

	sheet, err := loadSheet(args[0], sess.opts)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	want := parser.ParseToken(strings.TrimSpace(args[2]))
	rows, err := sheet.Filter(args[1], func(c models.Cell) bool { return c.Equal(want) })
	if err != nil {
		return err
	}
	sess.log.Debug("filter matched", zap.String("column", args[1]), zap.Int("rows", len(rows)))
	return writeRows(cmd, sheet, rows, sess.cfg.Pretty)
}

func runConvert(cmd *cobra.Command, args []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}
	defer sess.log.Sync() //nolint:errcheck

	sheet, err := loadSheet(args[0], sess.opts)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	if err := saveSheet(sheet, outputPath, pretty || sess.cfg.Pretty); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	sess.log.Info("converted", zap.String("input", args[0]), zap.String("output", outputPath))
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}
	defer sess.log.Sync() //nolint:errcheck

	path := "datasheet.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if err := config.Save(path, sess.cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}

func writeRows(cmd *cobra.Command, sheet *datasheet.Sheet, rows [][]models.Cell, prettyDefault bool) error {
	if !asJSON {
		return sheet.PrintRows(cmd.OutOrStdout(), rows)
	}
	data, err := output.RowsToJSON(sheet.Columns(), rows, pretty || prettyDefault)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
