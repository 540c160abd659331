package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/edkrueger/log-precision/internal/backend"
	"github.com/edkrueger/log-precision/internal/probe"
)

var (
	backendKind string
	allBackends bool
	baseFlag    int
	precision   uint32
)

// probeCmd runs the boundary search against one or all backends
var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Locate the failure boundary of a logarithm backend",
	Long: `Runs the boundary search against the selected backend.

Example:
  logprobe probe --backend float
  logprobe probe --backend decimal --base 10
  logprobe probe --all`,
	RunE: runProbe,
}

// backendsCmd lists the available backends
var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List available logarithm backends",
	RunE:  listBackends,
}

var backendDescriptions = map[string]string{
	backend.KindFloat:   "fixed-width IEEE-754 double precision (math.Log)",
	backend.KindVector:  "lane-wise vectorized double precision",
	backend.KindDecimal: "arbitrary-precision decimal with an explicit context",
}

func runProbe(cmd *cobra.Command, args []string) error {
	if !allBackends && backendKind == "" {
		return fmt.Errorf("either --backend or --all is required")
	}

	// Flags override file and env
	if cmd.Flags().Changed("base") {
		cfg.Probe.Base = baseFlag
	}
	if cmd.Flags().Changed("precision") {
		cfg.Decimal.Precision = precision
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	baseCtx := cmd.Context()
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	ctx, cancel := context.WithTimeout(baseCtx, timeout)
	defer cancel()

	prober, err := probe.New(cfg.ProbeConfig(), logger)
	if err != nil {
		return err
	}

	kinds := []string{backendKind}
	if allBackends {
		kinds = backend.Kinds()
	}
	for _, kind := range kinds {
		b, err := backend.New(kind, cfg.BackendOptions())
		if err != nil {
			return err
		}
		logger.Info("probing backend",
			zap.String("backend", b.Name()),
			zap.Int("base", cfg.Probe.Base))
		res, err := prober.Run(ctx, b)
		if err != nil {
			return err
		}
		logger.Info("boundary found",
			zap.String("backend", res.Backend),
			zap.Int("boundary", res.Boundary),
			zap.Int("last_finite", res.LastFinite),
			zap.Int("steps", res.Steps))
		fmt.Fprintf(cmd.OutOrStdout(), "%s fails for input values smaller than %d^%d.\n",
			res.Backend, cfg.Probe.Base, res.Boundary)
	}
	return nil
}

func listBackends(cmd *cobra.Command, args []string) error {
	for _, kind := range backend.Kinds() {
		fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", kind, backendDescriptions[kind])
	}
	return nil
}

func init() {
	probeCmd.Flags().StringVarP(&backendKind, "backend", "b", "", "Backend to probe (float, vector, decimal)")
	probeCmd.Flags().BoolVar(&allBackends, "all", false, "Probe every backend")
	probeCmd.Flags().IntVar(&baseFlag, "base", 10, "Base of the probed powers")
	probeCmd.Flags().Uint32Var(&precision, "precision", 28, "Decimal working precision in digits")
}
