package app

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/example/ledgerctl/internal/models"
)

// fakeScanner implements secondary.RunsScanner over an in-memory tree.
type fakeScanner struct {
	tree map[string][]string // exec folder name -> sessions
}

func (f *fakeScanner) ListExecFolders(root string) ([]models.ExecFolder, error) {
	if f.tree == nil {
		return nil, fmt.Errorf("artifacts root does not exist: %s", root)
	}
	var folders []models.ExecFolder
	for name := range f.tree {
		folders = append(folders, models.ExecFolder{Name: name, Path: root + "/" + name})
	}
	return folders, nil
}

func (f *fakeScanner) ListSessions(root, execID string) ([]string, error) {
	sessions, ok := f.tree[execID]
	if !ok {
		return nil, fmt.Errorf("exec folder not found: %s", execID)
	}
	return sessions, nil
}

func TestRunsService_ListExecFolders(t *testing.T) {
	scanner := &fakeScanner{tree: map[string][]string{
		"exec_20250301": {"sess-002", "sess-001"},
	}}
	svc := NewRunsService(scanner, testStore(t))

	folders, err := svc.ListExecFolders(context.Background())
	if err != nil {
		t.Fatalf("ListExecFolders failed: %v", err)
	}
	if len(folders) != 1 {
		t.Fatalf("got %d folders, want 1", len(folders))
	}
	if !reflect.DeepEqual(folders[0].Sessions, []string{"sess-002", "sess-001"}) {
		t.Errorf("sessions = %v", folders[0].Sessions)
	}
}

func TestRunsService_ListSessions_UnknownExec(t *testing.T) {
	svc := NewRunsService(&fakeScanner{tree: map[string][]string{}}, testStore(t))

	_, err := svc.ListSessions(context.Background(), "exec_missing")
	if err == nil {
		t.Error("expected error for unknown exec folder")
	}
}

func TestRunsService_MissingRoot(t *testing.T) {
	svc := NewRunsService(&fakeScanner{}, testStore(t))

	_, err := svc.ListExecFolders(context.Background())
	if err == nil {
		t.Error("expected error when scanner reports missing root")
	}
}
