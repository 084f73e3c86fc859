package app

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/ledgerctl/internal/config"
	"github.com/example/ledgerctl/internal/models"
	"github.com/example/ledgerctl/internal/ports/primary"
)

// fakeGateway implements secondary.EngineGateway with canned results so
// service tests never spawn real processes.
type fakeGateway struct {
	result   *models.EngineResult
	lastRoot string
	lastArgs []string
}

func (f *fakeGateway) LatestSession(ctx context.Context, root string) *models.EngineResult {
	f.lastRoot = root
	f.lastArgs = []string{"--latest"}
	return f.result
}

func (f *fakeGateway) Session(ctx context.Context, root, execID, sessionID string) *models.EngineResult {
	f.lastRoot = root
	f.lastArgs = []string{"--exec", execID, "--session", sessionID}
	return f.result
}

func (f *fakeGateway) ExportContract(ctx context.Context, root, outFile, execID, sessionID string) *models.EngineResult {
	f.lastRoot = root
	f.lastArgs = []string{"--out", outFile, "--exec", execID, "--session", sessionID}
	return f.result
}

func (f *fakeGateway) LastResult() *models.EngineResult {
	return f.result
}

func testStore(t *testing.T) *config.Store {
	t.Helper()
	s := config.Load(filepath.Join(t.TempDir(), "config.json"))
	s.UpsertProject("X", "/repo")
	if !s.SetActiveProject("X") {
		t.Fatal("failed to activate test project")
	}
	return s
}

func okResult(contract map[string]any) *models.EngineResult {
	return &models.EngineResult{OK: true, Contract: contract, ExitCode: 0}
}

func TestSessionService_Latest(t *testing.T) {
	gw := &fakeGateway{result: okResult(map[string]any{
		"sessionId":   "sess-001",
		"sessionRoot": "/repo/execledger/exec_1/milestone/sess-001",
		"summaryFile": "/repo/execledger/exec_1/milestone/sess-001/summary.md",
		"warnings":    []any{"report truncated"},
	})}
	svc := NewSessionService(gw, testStore(t))

	resp, err := svc.Latest(context.Background())
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}

	// The gateway receives the active project's derived artifacts root.
	if gw.lastRoot != "/repo/execledger" {
		t.Errorf("gateway root = %q, want /repo/execledger", gw.lastRoot)
	}
	if resp.Contract.SessionID != "sess-001" {
		t.Errorf("sessionId = %q", resp.Contract.SessionID)
	}
	if resp.Contract.ExecID() != "exec_1" {
		t.Errorf("ExecID() = %q, want exec_1", resp.Contract.ExecID())
	}
	if len(resp.Contract.Warnings) != 1 || resp.Contract.Warnings[0] != "report truncated" {
		t.Errorf("warnings = %v", resp.Contract.Warnings)
	}
}

func TestSessionService_FailureCarriesDiagnostic(t *testing.T) {
	gw := &fakeGateway{result: &models.EngineResult{
		OK:       false,
		ExitCode: -1,
		Stderr:   "engine timeout after 30s",
	}}
	svc := NewSessionService(gw, testStore(t))

	_, err := svc.Latest(context.Background())
	if err == nil {
		t.Fatal("expected error for failed result")
	}
	if !strings.Contains(err.Error(), "engine timeout after 30s") {
		t.Errorf("error should carry the diagnostic, got: %v", err)
	}
	if !strings.Contains(err.Error(), "-1") {
		t.Errorf("error should carry the exit code, got: %v", err)
	}
}

func TestSessionService_Show(t *testing.T) {
	gw := &fakeGateway{result: okResult(map[string]any{"sessionId": "sess-042"})}
	svc := NewSessionService(gw, testStore(t))

	resp, err := svc.Show(context.Background(), "exec_7", "sess-042")
	if err != nil {
		t.Fatalf("Show failed: %v", err)
	}
	if resp.Contract.SessionID != "sess-042" {
		t.Errorf("sessionId = %q", resp.Contract.SessionID)
	}
	want := []string{"--exec", "exec_7", "--session", "sess-042"}
	if strings.Join(gw.lastArgs, " ") != strings.Join(want, " ") {
		t.Errorf("gateway args = %v, want %v", gw.lastArgs, want)
	}
}

func TestSessionService_Export(t *testing.T) {
	gw := &fakeGateway{result: okResult(map[string]any{"sessionId": "sess-001"})}
	svc := NewSessionService(gw, testStore(t))

	resp, err := svc.Export(context.Background(), primary.ExportRequest{OutFile: "/tmp/contract.json"})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if resp.OutFile != "/tmp/contract.json" {
		t.Errorf("out file = %q", resp.OutFile)
	}
	if resp.Contract.SessionID != "sess-001" {
		t.Errorf("sessionId = %q", resp.Contract.SessionID)
	}
}
