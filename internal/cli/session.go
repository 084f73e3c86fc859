package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/ledgerctl/internal/ports/primary"
	"github.com/example/ledgerctl/internal/wire"
)

// SessionCmd returns the session command
func SessionCmd() *cobra.Command {
	var diagnose bool

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Fetch and export session contracts",
		Long: `Fetch session contracts from the ExecLedger engine.

The engine is invoked as a child process against the active project's
artifacts root; its JSON contract is printed or exported.

Examples:
  ledgerctl session latest
  ledgerctl session show exec_20250301 sess-001
  ledgerctl session export --out contract.json
  ledgerctl session summary`,
	}

	cmd.PersistentFlags().BoolVar(&diagnose, "diagnose", false, "Print the raw engine invocation result afterwards")

	cmd.AddCommand(sessionLatestCmd(&diagnose))
	cmd.AddCommand(sessionShowCmd(&diagnose))
	cmd.AddCommand(sessionExportCmd(&diagnose))
	cmd.AddCommand(sessionFileCmd(&diagnose, "summary", "Print the session summary file"))
	cmd.AddCommand(sessionFileCmd(&diagnose, "report", "Print the session report file"))

	return cmd
}

func sessionLatestCmd(diagnose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "latest",
		Short: "Fetch the most recent session contract",
		RunE: func(cmd *cobra.Command, args []string) error {
			defer maybeDiagnose(*diagnose)

			resp, err := wire.SessionService().Latest(context.Background())
			if err != nil {
				return fmt.Errorf("failed to fetch latest session: %w", err)
			}

			return renderSession(os.Stdout, resp)
		},
	}
}

func sessionShowCmd(diagnose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "show [exec-id] [session-id]",
		Short: "Fetch the contract for a specific session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer maybeDiagnose(*diagnose)

			resp, err := wire.SessionService().Show(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to fetch session %s/%s: %w", args[0], args[1], err)
			}

			return renderSession(os.Stdout, resp)
		},
	}
}

func sessionExportCmd(diagnose *bool) *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "export [exec-id] [session-id]",
		Short: "Export a contract JSON to a file",
		Long: `Export a session contract to a file via the engine's --out flag.
Without an exec/session pair the latest session is exported.`,
		Args: exactPairOrNone,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer maybeDiagnose(*diagnose)

			req := primary.ExportRequest{OutFile: outFile}
			if len(args) == 2 {
				req.ExecID, req.SessionID = args[0], args[1]
			}

			resp, err := wire.SessionService().Export(context.Background(), req)
			if err != nil {
				return fmt.Errorf("failed to export contract: %w", err)
			}

			fmt.Printf("✓ Contract %s exported to %s\n", resp.Contract.SessionID, resp.OutFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFile, "out", "o", "contract.json", "Output file for the contract JSON")

	return cmd
}

// sessionFileCmd builds the summary/report commands; both resolve a contract
// and print one of the files it references.
func sessionFileCmd(diagnose *bool, kind, short string) *cobra.Command {
	return &cobra.Command{
		Use:   kind + " [exec-id] [session-id]",
		Short: short,
		Args:  exactPairOrNone,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer maybeDiagnose(*diagnose)

			resp, err := fetchSession(args)
			if err != nil {
				return err
			}

			path := resp.Contract.SummaryFile
			if kind == "report" {
				path = resp.Contract.ReportFile
			}
			if path == "" {
				return fmt.Errorf("contract has no %s file", kind)
			}

			content, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("%s file not readable: %w", kind, err)
			}

			os.Stdout.Write(content)
			return nil
		},
	}
}

// exactPairOrNone accepts either no arguments or an exec/session pair.
func exactPairOrNone(cmd *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != 2 {
		return fmt.Errorf("accepts no arguments or an exec-id and session-id pair, received %d", len(args))
	}
	return nil
}

func fetchSession(args []string) (*primary.SessionResponse, error) {
	if len(args) == 2 {
		resp, err := wire.SessionService().Show(context.Background(), args[0], args[1])
		if err != nil {
			return nil, fmt.Errorf("failed to fetch session %s/%s: %w", args[0], args[1], err)
		}
		return resp, nil
	}

	resp, err := wire.SessionService().Latest(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest session: %w", err)
	}
	return resp, nil
}

// renderSession prints the raw contract JSON followed by any warnings.
func renderSession(w io.Writer, resp *primary.SessionResponse) error {
	data, err := json.MarshalIndent(resp.Raw, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render contract: %w", err)
	}
	fmt.Fprintln(w, string(data))

	for _, warning := range resp.Contract.Warnings {
		fmt.Fprintf(w, "%s %s\n", color.New(color.FgYellow).Sprint("warning:"), warning)
	}

	return nil
}

func maybeDiagnose(enabled bool) {
	if !enabled {
		return
	}
	RenderDiagnostics(os.Stdout, wire.Gateway().LastResult())
}
