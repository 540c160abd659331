// logprobe locates, per numeric backend, the smallest-magnitude power of a
// base whose logarithm is still finite in that backend's representation.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/edkrueger/log-precision/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string
	timeout    time.Duration

	// Loaded configuration
	cfg *config.Config

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "logprobe",
	Short: "logprobe - numeric logarithm precision boundary prober",
	Long: `logprobe finds the failure boundary of numeric logarithm backends.

For each backend it evaluates log(base^e) for decreasing integer exponents e
until the backend fails or returns negative infinity, then reports the first
failing exponent. The boundary is a property of the backend's numeric
representation: double-precision floats underflow near 10^-324, while an
arbitrary-precision decimal context underflows at min_exponent - precision.

Backends:
  float    fixed-width IEEE-754 double precision (math.Log)
  vector   the same representation through a lane-wise vectorized kernel
  decimal  arbitrary-precision decimal with an explicit context`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load config before any subcommand runs
		var err error
		if configPath != "" {
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
		} else {
			cfg = config.DefaultConfig()
		}

		// Initialize logger
		zc := zap.NewProductionConfig()
		zc.Encoding = "console"
		if cfg.Logging.JSON {
			zc.Encoding = "json"
		}
		zc.Level = zap.NewAtomicLevelAt(parseLevel(cfg.Logging.Level))
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to yaml config file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Minute, "Probe run timeout")

	// Subcommands
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(backendsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
