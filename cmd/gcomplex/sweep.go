package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/lukaszgryglicki/gcomplex/internal/config"
	"github.com/lukaszgryglicki/gcomplex/internal/sweep"
	"github.com/spf13/cobra"
)

var errSweepFailed = errors.New("some functions exceeded the tolerance")

func newSweepCmd(a *app) *cobra.Command {
	var (
		samples    int
		seed       uint64
		tolerance  float64
		domain     string
		precisions []string
		functions  []string
		workers    int
		timeout    time.Duration
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Compare every function with the C library over random arguments",
		Long: `sweep draws random arguments for every selected function and precision,
evaluates both gcomplex and the C library, and prints the error distribution
in ulps. A sample passes when both results are non-finite or their relative
error is within the tolerance. The exit status is 1 when any sample fails.

Powers always draw their base from 1/2 <= |z| <= 2. The quadrant domain
reaches arguments where exp, sinh and friends overflow or the real sine
loses its argument reduction, so failures there are expected.

Settings come from the built-in profile, then --config, then flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := config.Default()
			if a.cfgFile != "" {
				var err error
				if p, err = config.Load(a.cfgFile); err != nil {
					return err
				}
				a.log.Info("profile loaded", "path", a.cfgFile)
			}
			fl := cmd.Flags()
			if fl.Changed("samples") {
				p.Samples = samples
			}
			if fl.Changed("seed") {
				p.Seed = seed
			}
			if fl.Changed("tolerance") {
				p.ToleranceULPs = tolerance
			}
			if fl.Changed("domain") {
				p.Domain = domain
			}
			if fl.Changed("precision") {
				p.Precisions = precisions
			}
			if fl.Changed("function") {
				p.Functions = functions
			}
			if fl.Changed("workers") {
				p.Workers = workers
			}
			if fl.Changed("timeout") {
				p.Timeout.Duration = timeout
			}
			if err := p.Validate(); err != nil {
				return err
			}

			a.log.Info("sweep started",
				"samples", p.Samples, "precisions", p.Precisions, "domain", p.Domain, "seed", p.Seed)
			start := time.Now()
			rep, err := sweep.Run(cmd.Context(), p.Options())
			if err != nil {
				return err
			}
			for _, r := range rep.Failures() {
				a.log.Warn("function failed",
					"fn", r.Function, "precision", r.Precision, "samples", r.Samples,
					"failures", r.Failures, "worst", r.Worst)
			}
			a.log.Info("sweep finished", "elapsed", time.Since(start).Round(time.Millisecond), "failed", rep.Failed())

			if _, err := rep.WriteTo(cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			if rep.Failed() {
				return errSweepFailed
			}
			return nil
		},
	}
	fl := cmd.Flags()
	fl.IntVarP(&samples, "samples", "n", 100, "samples per function and precision")
	fl.Uint64Var(&seed, "seed", 1, "random seed")
	fl.Float64Var(&tolerance, "tolerance", 16, "tolerance in ulps")
	fl.StringVar(&domain, "domain", string(sweep.Moderate), "quadrant, unit or moderate")
	fl.StringSliceVar(&precisions, "precision", nil, "precisions to sweep (single, double, extended)")
	fl.StringSliceVar(&functions, "function", nil, "functions to sweep (default all)")
	fl.IntVar(&workers, "workers", 0, "concurrent functions (0 = GOMAXPROCS)")
	fl.DurationVar(&timeout, "timeout", 0, "abort after this long (0 = profile value)")
	return cmd
}
