// SPDX-License-Identifier: MIT

// Package cli provides the intmat command-line interface.
//
// Configuration System:
//
//	Values are resolved with the following precedence (highest first):
//	1. Command-line flags (--log-level, --workers, --size, ...)
//	2. Environment variables with the INTMAT_ prefix (INTMAT_WORKERS, INTMAT_LOG_FORMAT, ...)
//	3. The config file given by --config, or .intmat.yaml in the working directory
//	4. Built-in defaults
package cli

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/intmat/internal/config"
	"github.com/katalvlaran/intmat/internal/logging"
	"github.com/katalvlaran/intmat/matrix"
	"github.com/katalvlaran/intmat/matrixio"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagKeys maps flag names onto configuration keys.
var flagKeys = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
	"workers":    "workers",
	"size":       "bench.size",
	"seed":       "bench.seed",
}

// app is the state shared by every command of one invocation.
type app struct {
	cfgFile string
	output  string

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCommand builds the intmat command tree.
func NewRootCommand() *cobra.Command {
	a := &app{logger: logging.Discard()}

	root := &cobra.Command{
		Use:   "intmat",
		Short: "Integer matrix algebra from the command line",
		Long: `intmat adds, multiplies, scales and transposes integer matrices stored as
YAML documents of the form "rows: [[1, 2], [3, 4]]".

Quick Start:
  intmat add a.yaml b.yaml             Element-wise sum
  intmat mul a.yaml b.yaml --parallel  Product on a bounded worker pool
  intmat transpose a.yaml              Transpose
  intmat scale a.yaml --by 3           Scalar multiple
  intmat bench --size 1000             Sequential vs parallel timing`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is .intmat.yaml)")
	pf.String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.String("log-format", config.DefaultLogFormat, "log format (text, json)")
	pf.Int("workers", config.DefaultWorkers, "parallel workers (0 = GOMAXPROCS)")

	root.AddCommand(
		a.newAddCommand(),
		a.newMulCommand(),
		a.newTransposeCommand(),
		a.newScaleCommand(),
		a.newBenchCommand(),
	)

	return root
}

// Execute runs the command tree with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

// setup loads configuration and builds the logger before any command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	v := config.New(a.cfgFile)
	if err := bindFlags(v, cmd.Flags()); err != nil {
		return err
	}
	if err := config.ReadFile(v); err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	logger, err := logging.New(&logging.Config{
		Level:     cfg.Log.Level,
		Format:    cfg.Log.Format,
		Output:    cmd.ErrOrStderr(),
		Component: "intmat",
	})
	if err != nil {
		return err
	}
	if used := v.ConfigFileUsed(); used != "" {
		logger.Debug("configuration loaded", "file", used)
	}

	a.cfg = cfg
	a.logger = logger

	return nil
}

// bindFlags binds every known flag present on the executing command.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}

	return nil
}

// matrixOptions translates the configuration into matrix options.
func (a *app) matrixOptions() []matrix.Option {
	opts := []matrix.Option{matrix.WithLogger(a.logger)}
	if a.cfg.Workers > 0 {
		opts = append(opts, matrix.WithWorkers(a.cfg.Workers))
	}

	return opts
}

// addOutputFlag registers --output on a result-producing command.
func (a *app) addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&a.output, "output", "o", "", "write the result to this file instead of stdout")
}

// writeResult emits m to --output or to the command's stdout.
func (a *app) writeResult(cmd *cobra.Command, m matrix.Matrix) error {
	if a.output != "" {
		if err := matrixio.WriteFile(a.output, m); err != nil {
			return err
		}
		a.logger.Info("result written", "file", a.output, "rows", m.Rows(), "cols", m.Cols())
		return nil
	}

	return matrixio.Encode(cmd.OutOrStdout(), m)
}
