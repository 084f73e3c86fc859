// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/example/ledgerctl/internal/models"
	"github.com/example/ledgerctl/internal/ports/secondary"
)

// milestoneDirName is the subdirectory of an exec folder that holds its
// session directories. The layout is owned by the engine; the scanner only
// reads it.
const milestoneDirName = "milestone"

// Scanner implements secondary.RunsScanner over the local filesystem.
type Scanner struct{}

// NewScanner creates a new artifacts-tree scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// ListExecFolders returns the exec_* directories directly under root,
// newest first (reverse lexical, exec folder names sort by creation time).
func (s *Scanner) ListExecFolders(root string) ([]models.ExecFolder, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("artifacts root does not exist: %s", root)
		}
		return nil, fmt.Errorf("failed to scan artifacts root: %w", err)
	}

	var folders []models.ExecFolder
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), models.ExecFolderPrefix) {
			continue
		}
		folders = append(folders, models.ExecFolder{
			Name: entry.Name(),
			Path: filepath.Join(root, entry.Name()),
		})
	}

	sort.Slice(folders, func(i, j int) bool {
		return folders[i].Name > folders[j].Name
	})

	return folders, nil
}

// ListSessions returns the session directories under
// <root>/<execID>/milestone, newest first. A missing milestone directory
// yields an empty list; a missing exec folder is an error.
func (s *Scanner) ListSessions(root, execID string) ([]string, error) {
	execPath := filepath.Join(root, execID)
	if _, err := os.Stat(execPath); err != nil {
		return nil, fmt.Errorf("exec folder not found: %s", execPath)
	}

	entries, err := os.ReadDir(filepath.Join(execPath, milestoneDirName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan sessions in %s: %w", execID, err)
	}

	var sessions []string
	for _, entry := range entries {
		if entry.IsDir() {
			sessions = append(sessions, entry.Name())
		}
	}

	sort.Sort(sort.Reverse(sort.StringSlice(sessions)))

	return sessions, nil
}

var _ secondary.RunsScanner = (*Scanner)(nil)
