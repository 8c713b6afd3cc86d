package cmd

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sagikazarmark/probes/probe"
)

type exceptionsOptions struct {
	inputs []int
}

func NewExceptionsCommand(cli *Cli) *cobra.Command {
	var opts exceptionsOptions

	cmd := &cobra.Command{
		Use:   "exceptions",
		Short: "Run the exception dispatch probes",
		Long: `Raise an error for each probe input, print the label of the first
handler (most specific first) that catches it, then print the input
from a cleanup step that runs exactly once per probe.

Input 0 raises IllegalArgumentException, 1 RuntimeException, 2 Exception;
any other input raises nothing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("input") {
				opts.inputs = cli.Config().ProbeInputs
			}

			return runExceptions(cli, cmd.OutOrStdout(), &opts)
		},
	}

	addExceptionsFlags(cmd.Flags(), &opts)

	return cmd
}

// addExceptionsFlags adds the flags to the exceptions command
func addExceptionsFlags(flags *pflag.FlagSet, opts *exceptionsOptions) {
	flags.IntSliceVar(
		&opts.inputs,
		"input",
		probe.DefaultProbeInputs,
		`Probe inputs to run, in order (can be specified multiple times)`,
	)
}

func runExceptions(cli *Cli, w io.Writer, opts *exceptionsOptions) error {
	_, err := probe.NewExceptions(cli.Logger()).RunProbes(w, opts.inputs)

	return err
}
