package cmd

import (
	"github.com/spf13/cobra"
)

func NewAllCommand(cli *Cli) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every probe in order: exceptions, fibonacci, classname",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := cli.Config()
			w := cmd.OutOrStdout()

			err := runExceptions(cli, w, &exceptionsOptions{inputs: cfg.ProbeInputs})
			if err != nil {
				return err
			}

			err = runFibonacci(cli, w, &fibonacciOptions{n: cfg.FibonacciIndex})
			if err != nil {
				return err
			}

			return runClassName(cli, w, nil, &classNameOptions{})
		},
	}
}
