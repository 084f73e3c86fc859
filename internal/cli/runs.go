package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/ledgerctl/internal/adapters/filesystem"
	"github.com/example/ledgerctl/internal/wire"
)

// RunsCmd returns the runs command
func RunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Browse the artifacts tree",
		Long: `Browse the exec_* folders the engine writes under the active
project's artifacts root, and the sessions inside them.`,
	}

	cmd.AddCommand(runsListCmd())
	cmd.AddCommand(runsWatchCmd())

	return cmd
}

func runsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [exec-id]",
		Short: "List exec folders, or the sessions of one exec folder",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if len(args) == 1 {
				sessions, err := wire.RunsService().ListSessions(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to list sessions: %w", err)
				}
				if len(sessions) == 0 {
					fmt.Printf("No sessions in %s (no milestone folder yet?)\n", args[0])
					return nil
				}
				for _, session := range sessions {
					fmt.Println(session)
				}
				return nil
			}

			folders, err := wire.RunsService().ListExecFolders(ctx)
			if err != nil {
				return fmt.Errorf("failed to list exec folders: %w", err)
			}
			if len(folders) == 0 {
				fmt.Println("No exec folders found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "EXEC FOLDER\tSESSIONS\tLATEST")
			fmt.Fprintln(w, "-----------\t--------\t------")
			for _, f := range folders {
				latest := "-"
				if len(f.Sessions) > 0 {
					latest = f.Sessions[0]
				}
				fmt.Fprintf(w, "%s\t%d\t%s\n", f.Name, len(f.Sessions), latest)
			}
			w.Flush()

			return nil
		},
	}
}

func runsWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the artifacts root for new exec folders and sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			root := wire.Store().ArtifactsRoot()

			watcher, err := filesystem.NewWatcher(root, os.Stdout)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			fmt.Printf("Watching %s (Ctrl+C to stop)\n", root)
			if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}
