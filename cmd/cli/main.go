package main

import (
	"fmt"
	"os"

	"goabtest/adapters/excel"
	"goabtest/internal"
	"goabtest/internal/config"
	"goabtest/internal/container"
	"goabtest/internal/testkit"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "goabtest",
		Short:         "Compare maximum bidding against average bidding",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var logLevel string
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "ERROR, WARN, INFO, DEBUG or TRACE (overrides LOG_LEVEL)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if logLevel == "" {
			return nil
		}
		level, ok := internal.ParseLogLevel(logLevel)
		if !ok {
			return fmt.Errorf("unknown log level %q", logLevel)
		}
		internal.DefaultLogger.SetLevel(level)
		return nil
	}

	rootCmd.AddCommand(
		newAnalyzeCmd(),
		newDescribeCmd(),
		newGenerateCmd(),
	)
	return rootCmd
}

// analysisFlags mirror the AB_* environment variables
type analysisFlags struct {
	file         string
	controlSheet string
	testSheet    string
	metric       string
	alpha        float64
	headRows     int
	capOutliers  bool
	format       string
}

func (f *analysisFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Workbook (.xlsx) or CSV file (AB_EXCEL_FILE)")
	cmd.Flags().StringVar(&f.controlSheet, "control-sheet", "", "Sheet holding the control group (AB_CONTROL_SHEET)")
	cmd.Flags().StringVar(&f.testSheet, "test-sheet", "", "Sheet holding the test group (AB_TEST_SHEET)")
	cmd.Flags().StringVarP(&f.metric, "metric", "m", "", "Target metric column (AB_METRIC)")
	cmd.Flags().Float64Var(&f.alpha, "alpha", 0, "Significance threshold (AB_ALPHA)")
	cmd.Flags().IntVar(&f.headRows, "head", 0, "Leading rows shown per group (AB_HEAD_ROWS)")
	cmd.Flags().BoolVar(&f.capOutliers, "cap-outliers", false, "Cap metric outliers to IQR fences before testing (AB_CAP_OUTLIERS)")
	cmd.Flags().StringVarP(&f.format, "output", "o", "", "text, markdown, html, json or yaml (AB_OUTPUT_FORMAT)")
}

// load reads the environment and applies only the flags the user set
func (f *analysisFlags) load(cmd *cobra.Command) (*container.Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("file") {
		cfg.Data.ExcelFile = f.file
	}
	if flags.Changed("control-sheet") {
		cfg.Data.ControlSheet = f.controlSheet
	}
	if flags.Changed("test-sheet") {
		cfg.Data.TestSheet = f.testSheet
	}
	if flags.Changed("metric") {
		cfg.Analysis.Metric = f.metric
	}
	if flags.Changed("alpha") {
		cfg.Analysis.Alpha = f.alpha
	}
	if flags.Changed("head") {
		cfg.Analysis.HeadRows = f.headRows
	}
	if flags.Changed("cap-outliers") {
		cfg.Analysis.CapOutliers = f.capOutliers
	}
	if flags.Changed("output") {
		cfg.Output.Format = f.format
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return container.New(cfg, internal.DefaultLogger)
}

func newAnalyzeCmd() *cobra.Command {
	var flags analysisFlags

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Profile both groups and run the hypothesis tests",
		Long: `Profile both bidding groups, compare the target metric and print the verdicts.

Example: goabtest analyze --file ab_testing.xlsx --metric Purchase --output markdown`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.load(cmd)
			if err != nil {
				return err
			}
			return c.Analyze(cmd.Context(), cmd.OutOrStdout())
		},
	}
	flags.register(cmd)
	return cmd
}

func newDescribeCmd() *cobra.Command {
	var flags analysisFlags

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print the dataset summary of both groups without testing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.load(cmd)
			if err != nil {
				return err
			}
			return c.Describe(cmd.Context(), cmd.OutOrStdout())
		},
	}
	flags.register(cmd)
	return cmd
}

func newGenerateCmd() *cobra.Command {
	cfg := testkit.DefaultConfig()
	var output, controlSheet, testSheet string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic two-sheet bidding workbook",
		Long: `Write a deterministic synthetic workbook with a control and a test sheet.

Example: goabtest generate --output ab_testing.xlsx --rows 40 --seed 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := testkit.Generate(cfg)
			if err != nil {
				return err
			}
			if err := testkit.WriteXLSX(output, ds, controlSheet, testSheet); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows per group to %s\n", cfg.Rows, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "ab_testing.xlsx", "Output workbook path")
	cmd.Flags().StringVar(&controlSheet, "control-sheet", excel.DefaultControlSheet, "Control sheet name")
	cmd.Flags().StringVar(&testSheet, "test-sheet", excel.DefaultTestSheet, "Test sheet name")
	cmd.Flags().IntVar(&cfg.Rows, "rows", cfg.Rows, "Rows per group")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed")
	cmd.Flags().Float64Var(&cfg.Control.Purchase.Mean, "control-mean", cfg.Control.Purchase.Mean, "Control Purchase mean")
	cmd.Flags().Float64Var(&cfg.Test.Purchase.Mean, "test-mean", cfg.Test.Purchase.Mean, "Test Purchase mean")
	cmd.Flags().IntVar(&cfg.MissingClicks, "missing-clicks", 0, "Blank this many Click cells per group")
	return cmd
}
