package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/khanhnv2901/ssllint/internal/policy"
)

var cfgFile string
var logger = zap.NewNop().Sugar()

// Informational flags. They replace the report argument, so no file name can
// be mistaken for a command.
var (
	showPolicy  bool
	showVersion bool
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "ssllint <report.json>",
	Short: "Validate an SSL Labs scan report against the TLS policy",
	Long: `ssllint reads an SSL Labs host assessment (JSON array holding exactly one host)
and checks every endpoint against the built-in TLS policy:

- the overall grade must be A or A+ (reported, never fatal)
- every cipher suite offered for every supported protocol must be accepted
- every offered key-exchange group must be accepted
- the required key-exchange groups must be offered

The first TLS violation stops the run with a non-zero exit status unless
--all-violations is given.`,
	Example: `  ssllint results/example.com.json
  ssllint --all-violations --log-level debug scan.json
  ssllint --print-policy
  ssllint --version --verbose`,
	Args:          rootArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v, err := loadConfig(cfgFile)
		if err != nil {
			return err
		}
		applyConfigDefaults(cmd.Root().PersistentFlags(), cmd.Root().Flags(), v)

		l, err := newLogger(cliConfig.LogLevel, cliConfig.LogFormat)
		if err != nil {
			return err
		}
		logger = l

		if cliConfig.NoColor {
			color.NoColor = true
		}

		if path := v.ConfigFileUsed(); path != "" {
			logger.Debugf("config_file=%s", path)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		defer func() { _ = logger.Sync() }()

		out := cmd.OutOrStdout()
		switch {
		case showVersion:
			writeVersion(out, verbose)
			return nil
		case showPolicy:
			printPolicy(out, policy.Default())
			return nil
		}
		return runAnalyse(out, args[0], cliConfig.AllViolations)
	},
}

// Execute runs the root command and terminates the process with a non-zero
// status on any failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func printError(w io.Writer, err error) {
	errs := multierr.Errors(err)
	if len(errs) > 1 {
		fmt.Fprintf(w, "%s %d policy violations\n", colorError("Error:"), len(errs))
		for _, e := range errs {
			fmt.Fprintf(w, "  - %v\n", e)
		}
		return
	}
	fmt.Fprintf(w, "%s %v\n", colorError("Error:"), err)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.ssllint.yaml)")
	flags.StringVar(&cliConfig.LogLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	flags.StringVar(&cliConfig.LogFormat, "log-format", defaultLogFormat, "log format (console, json)")
	flags.BoolVar(&cliConfig.NoColor, "no-color", false, "disable colored output")
	local := rootCmd.Flags()
	local.BoolVar(&cliConfig.AllViolations, "all-violations", false, "report every violation instead of stopping at the first")
	local.BoolVar(&showPolicy, "print-policy", false, "print the built-in TLS policy and exit")
	local.BoolVar(&showVersion, "version", false, "print version information and exit")
	local.BoolVarP(&verbose, "verbose", "v", false, "with --version, show build details")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetFlagErrorFunc(usageFlagError)
}
