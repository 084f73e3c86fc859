// Package engine contains the subprocess adapter for the ExecLedger engine.
package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/example/ledgerctl/internal/models"
	"github.com/example/ledgerctl/internal/ports/secondary"
)

// DefaultTimeout bounds a single engine invocation. A run that exceeds it is
// classified as failed; no partial output is trusted.
const DefaultTimeout = 30 * time.Second

// EnvEngineCommand overrides the engine command line (whitespace-split).
const EnvEngineCommand = "LEDGERCTL_ENGINE"

// Gateway runs the ExecLedger engine as a child process with the fixed
// argument grammar (--root, then --latest or --exec/--session, optionally
// --out) and classifies the outcome. The most recent result is retained in a
// single slot for diagnostic display; there is no queue and no history.
//
// Gateway methods never return errors and never retry: every failure path
// produces a result with OK=false and a diagnostic in Stderr.
type Gateway struct {
	engine  []string // argv prefix, e.g. ["node", ".../engine/src/index.js"]
	timeout time.Duration
	last    *models.EngineResult
}

// New creates a Gateway invoking the given engine argv prefix. A
// non-positive timeout falls back to DefaultTimeout.
func New(engine []string, timeout time.Duration) *Gateway {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Gateway{engine: engine, timeout: timeout}
}

// ResolveEngine returns the engine argv prefix: $LEDGERCTL_ENGINE when set,
// else the node engine shipped inside the project root.
func ResolveEngine(projectRoot string) []string {
	if env := strings.TrimSpace(os.Getenv(EnvEngineCommand)); env != "" {
		return strings.Fields(env)
	}
	return []string{"node", filepath.Join(projectRoot, "engine", "src", "index.js")}
}

// LatestSession requests the most recent session contract under root.
func (g *Gateway) LatestSession(ctx context.Context, root string) *models.EngineResult {
	return g.run(ctx, []string{"--root", root, "--latest"})
}

// Session requests the contract for a specific exec/session pair.
func (g *Gateway) Session(ctx context.Context, root, execID, sessionID string) *models.EngineResult {
	return g.run(ctx, []string{"--root", root, "--exec", execID, "--session", sessionID})
}

// ExportContract asks the engine to additionally write the contract JSON to
// outFile. An empty execID/sessionID pair exports the latest session.
func (g *Gateway) ExportContract(ctx context.Context, root, outFile, execID, sessionID string) *models.EngineResult {
	args := []string{"--root", root, "--out", outFile}
	if execID != "" && sessionID != "" {
		args = append(args, "--exec", execID, "--session", sessionID)
	} else {
		args = append(args, "--latest")
	}
	return g.run(ctx, args)
}

// LastResult returns the most recent invocation result, or nil before the
// first invocation.
func (g *Gateway) LastResult() *models.EngineResult {
	return g.last
}

func (g *Gateway) run(ctx context.Context, args []string) *models.EngineResult {
	argv := make([]string, 0, len(g.engine)+len(args))
	argv = append(argv, g.engine...)
	argv = append(argv, args...)

	res := &models.EngineResult{Command: argv}
	g.last = res

	if len(argv) == 0 {
		res.ExitCode = models.LaunchFailureCode
		res.Stderr = "engine execution failed: no engine command configured"
		return res
	}

	runCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(runCtx, argv[0], argv[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res.Stdout = stdout.String()
	res.Stderr = stderr.String()

	switch {
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		// No partial output is trusted after a timeout.
		res.ExitCode = models.LaunchFailureCode
		res.Stdout = ""
		res.Stderr = fmt.Sprintf("engine timeout after %s", g.timeout)
	case err != nil:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
		} else {
			// Launch failure: binary missing, permission denied, etc.
			res.ExitCode = models.LaunchFailureCode
			res.Stderr = fmt.Sprintf("engine execution failed: %v", err)
		}
	default:
		var contract map[string]any
		if jsonErr := json.Unmarshal(stdout.Bytes(), &contract); jsonErr != nil {
			// A zero exit does not imply a usable contract.
			res.Stderr = fmt.Sprintf("JSON parse error: %v\n%s", jsonErr, res.Stderr)
		} else {
			res.Contract = contract
			res.OK = true
		}
	}

	return res
}

var _ secondary.EngineGateway = (*Gateway)(nil)
