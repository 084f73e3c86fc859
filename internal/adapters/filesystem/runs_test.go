package filesystem

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// makeArtifactsTree builds root/exec_X/milestone/<session> directories.
func makeArtifactsTree(t *testing.T, tree map[string][]string) string {
	t.Helper()
	root := t.TempDir()
	for execName, sessions := range tree {
		base := filepath.Join(root, execName)
		if len(sessions) == 0 {
			if err := os.MkdirAll(base, 0755); err != nil {
				t.Fatalf("failed to create %s: %v", base, err)
			}
			continue
		}
		for _, session := range sessions {
			dir := filepath.Join(base, "milestone", session)
			if err := os.MkdirAll(dir, 0755); err != nil {
				t.Fatalf("failed to create %s: %v", dir, err)
			}
		}
	}
	return root
}

func TestListExecFolders(t *testing.T) {
	root := makeArtifactsTree(t, map[string][]string{
		"exec_20250101": {"sess-a"},
		"exec_20250301": {"sess-b"},
		"exec_20250201": nil,
	})
	// Non-exec directories and files are ignored.
	if err := os.MkdirAll(filepath.Join(root, "scratch"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "exec_notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	folders, err := NewScanner().ListExecFolders(root)
	if err != nil {
		t.Fatalf("ListExecFolders failed: %v", err)
	}

	var names []string
	for _, f := range folders {
		names = append(names, f.Name)
	}
	want := []string{"exec_20250301", "exec_20250201", "exec_20250101"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("exec folders = %v, want %v (newest first)", names, want)
	}
}

func TestListExecFolders_MissingRoot(t *testing.T) {
	_, err := NewScanner().ListExecFolders(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Error("expected error for missing artifacts root")
	}
}

func TestListSessions(t *testing.T) {
	root := makeArtifactsTree(t, map[string][]string{
		"exec_20250301": {"sess-001", "sess-003", "sess-002"},
	})

	sessions, err := NewScanner().ListSessions(root, "exec_20250301")
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}

	want := []string{"sess-003", "sess-002", "sess-001"}
	if !reflect.DeepEqual(sessions, want) {
		t.Errorf("sessions = %v, want %v (newest first)", sessions, want)
	}
}

func TestListSessions_MissingMilestone(t *testing.T) {
	root := makeArtifactsTree(t, map[string][]string{
		"exec_20250301": nil,
	})

	sessions, err := NewScanner().ListSessions(root, "exec_20250301")
	if err != nil {
		t.Fatalf("missing milestone dir should not be an error: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("sessions = %v, want empty", sessions)
	}
}

func TestListSessions_MissingExecFolder(t *testing.T) {
	root := makeArtifactsTree(t, nil)

	_, err := NewScanner().ListSessions(root, "exec_missing")
	if err == nil {
		t.Error("expected error for missing exec folder")
	}
}
