package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	xcmd "github.com/sagikazarmark/probes/cmd"
	"github.com/sagikazarmark/probes/internal/config"
)

func main() {
	cli := xcmd.NewCli()

	var verbose bool

	cmd := &cobra.Command{
		Use:     "probes <command>",
		Short:   "probes - a catalogue of small behavioral probes",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			return cli.Init(cfg, verbose)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			cli.Close()
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		xcmd.NewExceptionsCommand(cli),
		xcmd.NewFibonacciCommand(cli),
		xcmd.NewClassNameCommand(cli),
		xcmd.NewAllCommand(cli),
	)

	err := cmd.Execute()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("Unable to determine home directory: %w", err)
	}

	cfg, err := config.Load(homeDir)
	if err != nil {
		return nil, fmt.Errorf("Unable to load config: %w", err)
	}

	return cfg, nil
}
