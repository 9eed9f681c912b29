// Package commands implements the sub-commands of the ostree driver.
package commands

import (
	"io"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command with all sub-commands but version.
func NewRootCommand() *cobra.Command {
	var verbose int

	rootCmd := &cobra.Command{
		Use:   "ostree",
		Short: "Order-statistics red-black tree driver",
		Long: `ostree exercises an order-statistics red-black tree.

Commands:
  bench     Insert and delete random keys, verify invariants, report timings
  dump      Build a tree from keys given on the command line and print it`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			SetupTracing(cmd.ErrOrStderr(), traceLevel(verbose))
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "verbose output (repeat for debug tracing)")

	rootCmd.AddCommand(NewBenchCommand())
	rootCmd.AddCommand(NewDumpCommand())

	return rootCmd
}

// SetupTracing routes all tracers of this module to a Go logger writing to w.
func SetupTracing(w io.Writer, level tracing.TraceLevel) {
	tracer := gologadapter.New()
	tracer.SetOutput(w)
	tracer.SetTraceLevel(level)
	gtrace.CoreTracer = tracer
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace {
		return tracer
	}))
}

func traceLevel(verbose int) tracing.TraceLevel {
	switch {
	case verbose >= 2:
		return tracing.LevelDebug
	case verbose == 1:
		return tracing.LevelInfo
	}
	return tracing.LevelError
}
