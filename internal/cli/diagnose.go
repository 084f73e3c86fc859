package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/example/ledgerctl/internal/models"
)

// RenderDiagnostics writes the raw detail of an engine invocation: exact
// argv, both output streams, the exit code, and the contract document with
// its warnings. Mirrors what the diagnostics view showed in dev mode.
func RenderDiagnostics(w io.Writer, res *models.EngineResult) {
	if res == nil {
		fmt.Fprintln(w, "No engine invocations recorded.")
		return
	}

	fmt.Fprintln(w, "--- engine diagnostics ---")
	fmt.Fprintf(w, "command: %s\n", strings.Join(res.Command, " "))

	exitLabel := color.New(color.FgRed).Sprint(res.ExitCode)
	if res.ExitCode == 0 {
		exitLabel = color.New(color.FgGreen).Sprint(res.ExitCode)
	}
	fmt.Fprintf(w, "exit code: %s\n", exitLabel)

	fmt.Fprintf(w, "stdout:\n%s\n", indent(res.Stdout))
	fmt.Fprintf(w, "stderr:\n%s\n", indent(res.Stderr))

	if res.Contract == nil {
		fmt.Fprintln(w, "contract: none (engine failed)")
		return
	}

	data, err := json.MarshalIndent(res.Contract, "", "  ")
	if err != nil {
		fmt.Fprintf(w, "contract: unrenderable: %v\n", err)
		return
	}
	fmt.Fprintf(w, "contract:\n%s\n", indent(string(data)))

	contract := models.ContractFromMap(res.Contract)
	if len(contract.Warnings) == 0 {
		fmt.Fprintln(w, "warnings: none")
		return
	}
	for _, warning := range contract.Warnings {
		fmt.Fprintf(w, "%s %s\n", color.New(color.FgYellow).Sprint("warning:"), warning)
	}
}

func indent(s string) string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return "  (empty)"
	}
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}
