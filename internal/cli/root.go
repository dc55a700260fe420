// Package cli implements the lvpos command: position arithmetic from the shell.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpos/pos"
)

// Execute runs the root command and exits with status 1 on error.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	float bool
	debug bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "lvpos",
		Short: "lvpos — 2D position arithmetic",
		Long: `lvpos evaluates operations on 2D positions written as "(x, y)".

Elements are integers unless --float is given.`,
		SilenceUsage: true,
		PersistentPreRun: func(c *cobra.Command, _ []string) {
			if opts.debug {
				pos.SetLogger(slog.New(slog.NewTextHandler(c.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.float, "float", false, "use float64 elements instead of int")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log parser decisions to stderr")

	for _, op := range operations {
		cmd.AddCommand(opCmd(opts, op))
	}
	cmd.AddCommand(randomCmd(opts))
	return cmd
}
