package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// app carries the persistent flags and the logger to every subcommand.
type app struct {
	cfgFile string
	verbose bool
	log     *slog.Logger
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newRootCmd() *cobra.Command {
	a := &app{log: slog.New(slog.DiscardHandler)}
	root := &cobra.Command{
		Use:   "gcomplex",
		Short: "Complex elementary functions and their accuracy",
		Long: `gcomplex evaluates the complex elementary functions of the gcomplex
package and compares them with the C library's <complex.h> routines.

Commands:
  eval      - evaluate one function at one argument
  sweep     - measure every function over random arguments
  platform  - report the floating-point environment`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.log = newLogger(cmd.ErrOrStderr(), a.verbose)
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "sweep profile (TOML, or YAML for .yaml/.yml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newEvalCmd(a), newSweepCmd(a), newPlatformCmd())
	return root
}
