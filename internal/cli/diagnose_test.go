package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/example/ledgerctl/internal/models"
)

func TestRenderDiagnostics(t *testing.T) {
	color.NoColor = true

	res := &models.EngineResult{
		OK:       true,
		ExitCode: 0,
		Stdout:   `{"sessionId":"sess-001"}`,
		Stderr:   "",
		Command:  []string{"node", "engine/src/index.js", "--root", "/tmp/execledger", "--latest"},
		Contract: map[string]any{
			"sessionId": "sess-001",
			"warnings":  []any{"report truncated"},
		},
	}

	var buf bytes.Buffer
	RenderDiagnostics(&buf, res)
	out := buf.String()

	for _, want := range []string{
		"--root /tmp/execledger --latest",
		"exit code: 0",
		`"sessionId": "sess-001"`,
		"warning: report truncated",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("diagnostics output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderDiagnostics_Failure(t *testing.T) {
	color.NoColor = true

	res := &models.EngineResult{
		ExitCode: -1,
		Stderr:   "engine timeout after 30s",
		Command:  []string{"node", "index.js", "--root", "/x", "--latest"},
	}

	var buf bytes.Buffer
	RenderDiagnostics(&buf, res)
	out := buf.String()

	if !strings.Contains(out, "exit code: -1") {
		t.Errorf("missing exit code:\n%s", out)
	}
	if !strings.Contains(out, "engine timeout after 30s") {
		t.Errorf("missing stderr diagnostic:\n%s", out)
	}
	if !strings.Contains(out, "contract: none") {
		t.Errorf("missing contract absence marker:\n%s", out)
	}
}

func TestRenderDiagnostics_NoInvocation(t *testing.T) {
	var buf bytes.Buffer
	RenderDiagnostics(&buf, nil)

	if !strings.Contains(buf.String(), "No engine invocations recorded") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}
