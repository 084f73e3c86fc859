package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/ledgerctl/internal/wire"
)

// OpenCmd returns the open command
func OpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open [root|bundle|summary|report]",
		Short: "Open an artifact location in the OS file explorer",
		Long: `Open an artifact location in the OS file explorer or default
application.

Targets:
  root     the active project's artifacts root
  bundle   the latest session's artifacts folder
  summary  the latest session's summary file
  report   the latest session's report file`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"root", "bundle", "summary", "report"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveOpenTarget(args[0])
			if err != nil {
				return err
			}

			if err := wire.Opener().Open(path); err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			fmt.Printf("✓ Opened %s\n", path)
			return nil
		},
	}
}

func resolveOpenTarget(target string) (string, error) {
	if target == "root" {
		root := wire.Store().ArtifactsRoot()
		if root == "" {
			return "", fmt.Errorf("no artifacts root configured")
		}
		return root, nil
	}

	resp, err := wire.SessionService().Latest(context.Background())
	if err != nil {
		return "", fmt.Errorf("failed to fetch latest session: %w", err)
	}

	var path string
	switch target {
	case "bundle":
		path = resp.Contract.ArtifactsFolder
	case "summary":
		path = resp.Contract.SummaryFile
	case "report":
		path = resp.Contract.ReportFile
	default:
		return "", fmt.Errorf("unknown target %q (want root, bundle, summary, or report)", target)
	}

	if path == "" {
		return "", fmt.Errorf("contract has no %s location", target)
	}
	return path, nil
}
