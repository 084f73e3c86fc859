// Package cli contains the cobra command constructors.
package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/ledgerctl/internal/wire"
)

// ProjectCmd returns the project command
func ProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
		Long: `Manage named projects. Each project pairs a project root with its
derived artifacts root (<project root>/execledger); the artifacts root is
always derived, never set directly.`,
	}

	cmd.AddCommand(projectListCmd())
	cmd.AddCommand(projectAddCmd())
	cmd.AddCommand(projectRemoveCmd())
	cmd.AddCommand(projectUseCmd())
	cmd.AddCommand(projectShowCmd())

	return cmd
}

func projectListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := wire.Store()
			active := store.ActiveProjectName()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, " \tNAME\tPROJECT ROOT\tARTIFACTS ROOT")
			fmt.Fprintln(w, " \t----\t------------\t--------------")

			for _, p := range store.Projects() {
				marker := " "
				if p.Name == active {
					marker = "*"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", marker, p.Name, p.ProjectRoot, p.ArtifactsRoot)
			}

			w.Flush()
			return nil
		},
	}
}

func projectAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [name] [project-root]",
		Short: "Add or update a project",
		Long: `Add a project, or update the root of an existing one.

The project root is normalized (a trailing execledger or _artifacts segment
is stripped) and the artifacts root derived from it.

Examples:
  ledgerctl project add backend /home/me/src/backend
  ledgerctl project add backend /home/me/src/backend/execledger   # same result`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, root := args[0], args[1]
			if strings.TrimSpace(name) == "" {
				return fmt.Errorf("project name must not be empty")
			}
			if strings.TrimSpace(root) == "" {
				return fmt.Errorf("project root must not be empty")
			}

			store := wire.Store()
			store.UpsertProject(name, root)

			for _, p := range store.Projects() {
				if p.Name == name {
					fmt.Printf("✓ Project %s -> %s (artifacts: %s)\n", p.Name, p.ProjectRoot, p.ArtifactsRoot)
					break
				}
			}
			return nil
		},
	}
}

func projectRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [name]",
		Short: "Remove a project",
		Long: `Remove a project by name. The last remaining project cannot be
removed; when the active project is removed, the first remaining project
becomes active.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := wire.Store()
			if !store.RemoveProject(args[0]) {
				return fmt.Errorf("cannot remove project %q (unknown name, or it is the last remaining project)", args[0])
			}

			fmt.Printf("✓ Project %s removed (active: %s)\n", args[0], store.ActiveProjectName())
			return nil
		},
	}
}

func projectUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use [name]",
		Short: "Set the active project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := wire.Store()
			if !store.SetActiveProject(args[0]) {
				return fmt.Errorf("no project named %q", args[0])
			}

			fmt.Printf("✓ Active project: %s\n", args[0])
			return nil
		},
	}
}

func projectShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active project",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := wire.Store().ActiveProject()
			if p == nil {
				return fmt.Errorf("no active project")
			}

			fmt.Printf("Name: %s\n", p.Name)
			fmt.Printf("Project root: %s\n", p.ProjectRoot)
			fmt.Printf("Artifacts root: %s\n", p.ArtifactsRoot)
			return nil
		},
	}
}
