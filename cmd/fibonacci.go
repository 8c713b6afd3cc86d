package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sagikazarmark/probes/probe"
)

type fibonacciOptions struct {
	n int64
}

func NewFibonacciCommand(cli *Cli) *cobra.Command {
	var opts fibonacciOptions

	cmd := &cobra.Command{
		Use:   "fibonacci",
		Short: "Compute a Fibonacci number by naive recursion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("n") {
				opts.n = cli.Config().FibonacciIndex
			}

			return runFibonacci(cli, cmd.OutOrStdout(), &opts)
		},
	}

	flags := cmd.Flags()

	flags.Int64Var(
		&opts.n,
		"n",
		probe.DefaultFibonacciIndex,
		`Index of the Fibonacci number to compute`,
	)

	return cmd
}

func runFibonacci(cli *Cli, w io.Writer, opts *fibonacciOptions) error {
	if opts.n < 0 {
		return fmt.Errorf("fibonacci index must not be negative: %d", opts.n)
	}

	result, err := probe.PrintFibonacci(w, opts.n)
	if err != nil {
		return err
	}

	cli.Logger().Debug("fibonacci computed", zap.Int64("n", opts.n), zap.Int64("result", result))

	return nil
}
