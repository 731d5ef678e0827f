package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/logging"
	"github.com/rshade/footprint/internal/tui"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// annotationSkipConfigLoad marks commands that must run even when the
// existing config file cannot be parsed.
const annotationSkipConfigLoad = "footprint/skip-config-load"

// envHideHint suppresses the interactive usage hint.
const envHideHint = "FOOTPRINT_HIDE_HINT"

// rootFlags holds the flags shared by the root command and its children.
type rootFlags struct {
	configPath   string
	debug        bool
	reportsDir   string
	reportSuffix string
	chartFile    string
	noSummary    bool
}

// runtime is the state resolved in PersistentPreRunE and used by RunE.
type runtime struct {
	cfg       *config.Config
	logResult *logging.LogPathResult
}

// NewRootCmd creates the root Cobra command for the footprint CLI.
// Running it without a subcommand starts the interactive session.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit env lookup for
// testability.
func NewRootCmdWithEnv(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	var (
		flags rootFlags
		rt    runtime
	)

	cmd := &cobra.Command{
		Use:   "footprint",
		Short: "Collect client usage figures and produce carbon footprint reports",
		Long: `footprint asks for each client's energy (kWh), transport (km) and waste (kg),
computes a weighted carbon footprint, writes a one-page PDF report per client and,
once you stop adding clients, one trend chart comparing all of them.

Footprint (kg CO2) = energy*0.233 + transport*0.12 + waste*0.5`,
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, &flags, lookupEnv)
			if err != nil {
				return &ExitError{Code: ExitCodeConfig, Err: err}
			}
			rt.cfg = cfg

			result := setupLogging(cmd, cfg)
			rt.logResult = &result
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, hideHint := lookupEnv(envHideHint)
			if tui.IsTTY(cmd.InOrStdin()) && !hideHint {
				cmd.PrintErrln("Tip: answer 'yes' to add another client, anything else to finish.")
			}
			return runSession(cmd, rt.cfg, flags.noSummary)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "",
		"config file (default $FOOTPRINT_HOME/config.yaml or ~/.footprint/config.yaml)")
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")

	cmd.Flags().StringVar(&flags.reportsDir, "reports-dir", "", "directory for per-client PDF reports")
	cmd.Flags().StringVar(&flags.reportSuffix, "report-suffix", "", "file name suffix: <client>_<suffix>.pdf")
	cmd.Flags().StringVar(&flags.chartFile, "chart-file", "", "path of the aggregate trend chart (PNG)")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "do not print the session summary table")

	cmd.AddCommand(newConfigCmd(&rt))
	withLogCleanup(cmd, &rt)

	return cmd
}

// withLogCleanup wraps every RunE in the tree so the log file is closed
// whether or not the command fails. Cobra skips post-run hooks on error.
func withLogCleanup(cmd *cobra.Command, rt *runtime) {
	if run := cmd.RunE; run != nil {
		cmd.RunE = func(c *cobra.Command, args []string) (err error) {
			defer func() {
				if closeErr := rt.closeLog(); err == nil {
					err = closeErr
				}
			}()
			return run(c, args)
		}
	}
	for _, sub := range cmd.Commands() {
		withLogCleanup(sub, rt)
	}
}

// closeLog releases the log file opened in PersistentPreRunE.
func (rt *runtime) closeLog() error {
	err := cleanupLogging(rt.logResult)
	rt.logResult = nil
	return err
}

const rootCmdExample = `  # Start an interactive session
  footprint

  # Write reports somewhere else
  footprint --reports-dir out/reports --chart-file out/trends.png

  # Feed answers from a file
  footprint < clients.txt

  # Create a config file with the defaults
  footprint config init`

// resolveConfig loads the config file and environment, then applies any
// flags that were explicitly set.
func resolveConfig(
	cmd *cobra.Command,
	flags *rootFlags,
	lookupEnv func(string) (string, bool),
) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath, lookupEnv)
	if err != nil {
		if cmd.Annotations[annotationSkipConfigLoad] != "true" {
			return nil, err
		}
		cmd.PrintErrf("Warning: ignoring unreadable config: %v\n", err)
		cfg = config.Default()
		if flags.configPath != "" {
			cfg.SetConfigPath(flags.configPath)
		}
	}

	if cmd.Flags().Changed("reports-dir") {
		cfg.Output.ReportsDir = flags.reportsDir
	}
	if cmd.Flags().Changed("report-suffix") {
		cfg.Output.ReportSuffix = flags.reportSuffix
	}
	if cmd.Flags().Changed("chart-file") {
		cfg.Output.ChartFile = flags.chartFile
	}
	if flags.debug {
		cfg.Logging.ForceDebug()
	}

	return cfg, nil
}

// newConfigCmd creates the config command group.
func newConfigCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		newConfigInitCmd(rt),
		newConfigShowCmd(rt),
		newConfigValidateCmd(rt),
	)
	return cmd
}
