package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/ledgerctl/internal/adapters/engine"
	"github.com/example/ledgerctl/internal/wire"
)

// checkResult represents the outcome of a single check
type checkResult struct {
	Name    string
	OK      bool
	Details string
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the ledgerctl environment",
		Long: `Environment health check.

Validates:
- Config file readable
- Active project set
- Artifacts root present on disk
- Engine command resolvable

Examples:
  ledgerctl doctor           # Run full health check
  ledgerctl doctor --quiet   # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := []checkResult{
				checkConfigFile(),
				checkActiveProject(),
				checkArtifactsRoot(),
				checkEngineCommand(),
			}

			hasErrors := false
			for _, r := range results {
				if !r.OK {
					hasErrors = true
					break
				}
			}

			if !quiet {
				pass := color.New(color.FgGreen).Sprint("✓")
				fail := color.New(color.FgRed).Sprint("✗")
				for _, r := range results {
					icon := pass
					if !r.OK {
						icon = fail
					}
					fmt.Printf("%s %-16s %s\n", icon, r.Name, r.Details)
				}
			}

			if hasErrors {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Exit code only, no output")

	return cmd
}

func checkConfigFile() checkResult {
	path := wire.Store().Path()
	if _, err := os.Stat(path); err != nil {
		return checkResult{Name: "config file", OK: true, Details: fmt.Sprintf("%s (not yet written, using defaults)", path)}
	}
	return checkResult{Name: "config file", OK: true, Details: path}
}

func checkActiveProject() checkResult {
	p := wire.Store().ActiveProject()
	if p == nil {
		return checkResult{Name: "active project", Details: "active pointer references no project"}
	}
	return checkResult{Name: "active project", OK: true, Details: p.Name}
}

func checkArtifactsRoot() checkResult {
	root := wire.Store().ArtifactsRoot()
	if root == "" {
		return checkResult{Name: "artifacts root", Details: "not configured"}
	}
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return checkResult{Name: "artifacts root", Details: fmt.Sprintf("%s (missing, run the engine at least once)", root)}
	}
	return checkResult{Name: "artifacts root", OK: true, Details: root}
}

func checkEngineCommand() checkResult {
	projectRoot := ""
	if p := wire.Store().ActiveProject(); p != nil {
		projectRoot = p.ProjectRoot
	}
	argv := engine.ResolveEngine(projectRoot)

	if _, err := exec.LookPath(argv[0]); err != nil {
		return checkResult{Name: "engine command", Details: fmt.Sprintf("%s not found in PATH", argv[0])}
	}
	// The default node engine also needs its entry script on disk.
	if argv[0] == "node" && len(argv) > 1 {
		if _, err := os.Stat(argv[1]); err != nil {
			return checkResult{Name: "engine command", Details: fmt.Sprintf("engine script missing: %s", argv[1])}
		}
	}

	return checkResult{Name: "engine command", OK: true, Details: argv[0]}
}
