package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	defaultLogLevel  = "warn"
	defaultLogFormat = "console"
	configName       = ".ssllint"
)

// CLIConfig captures runtime settings shared across commands. The TLS policy
// itself is built in and never read from configuration.
type CLIConfig struct {
	LogLevel      string
	LogFormat     string
	NoColor       bool
	AllViolations bool
}

var cliConfig = newCLIConfig()

func newCLIConfig() *CLIConfig {
	return &CLIConfig{
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
	}
}

// loadConfig reads the config file. An explicit path must exist; the default
// $HOME/.ssllint.yaml is optional.
func loadConfig(path string) (*viper.Viper, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("$HOME")
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// applyConfigDefaults merges config file defaults into the runtime config when the user
// did not explicitly set the corresponding flag. persistent holds the global flags,
// local the root command's own flags.
func applyConfigDefaults(persistent, local *pflag.FlagSet, v *viper.Viper) {
	if v == nil {
		return
	}

	if v.IsSet("defaults.log_level") {
		applyStringDefault(persistent, "log-level", v.GetString("defaults.log_level"), func(s string) {
			cliConfig.LogLevel = s
		})
	}

	if v.IsSet("defaults.log_format") {
		applyStringDefault(persistent, "log-format", v.GetString("defaults.log_format"), func(s string) {
			cliConfig.LogFormat = s
		})
	}

	if v.IsSet("defaults.no_color") {
		applyBoolDefault(persistent, "no-color", v.GetBool("defaults.no_color"), func(b bool) {
			cliConfig.NoColor = b
		})
	}

	if v.IsSet("defaults.all_violations") {
		applyBoolDefault(local, "all-violations", v.GetBool("defaults.all_violations"), func(b bool) {
			cliConfig.AllViolations = b
		})
	}
}

func applyStringDefault(flags *pflag.FlagSet, name, value string, setter func(string)) {
	if flags == nil || setter == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag != nil && flag.Changed {
		return
	}
	setter(value)
}

func applyBoolDefault(flags *pflag.FlagSet, name string, value bool, setter func(bool)) {
	if flags == nil || setter == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag != nil && flag.Changed {
		return
	}
	setter(value)
}

// newLogger builds the operational logger. Logs go to stderr so they never mix
// with the report diagnostics on stdout.
func newLogger(level, format string) (*zap.SugaredLogger, error) {
	lvl, err := zap.ParseAtomicLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true

	switch strings.ToLower(format) {
	case "json":
		cfg.Encoding = "json"
	case "console", "text":
		cfg.Encoding = "console"
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	default:
		return nil, fmt.Errorf("invalid log format %q (want console or json)", format)
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return l.Sugar(), nil
}
