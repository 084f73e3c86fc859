package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/ledgerctl/internal/cli"
	"github.com/example/ledgerctl/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "ledgerctl",
		Short:   "ledgerctl - companion CLI for the ExecLedger engine",
		Version: version.String(),
		Long: `ledgerctl manages ExecLedger projects and drives the external engine
to fetch, inspect, and export session contracts.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.ProjectCmd())
	rootCmd.AddCommand(cli.ConfigCmd())
	rootCmd.AddCommand(cli.SessionCmd())
	rootCmd.AddCommand(cli.RunsCmd())
	rootCmd.AddCommand(cli.OpenCmd())
	rootCmd.AddCommand(cli.DoctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
