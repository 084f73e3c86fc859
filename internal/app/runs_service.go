package app

import (
	"context"
	"fmt"

	"github.com/example/ledgerctl/internal/config"
	"github.com/example/ledgerctl/internal/models"
	"github.com/example/ledgerctl/internal/ports/primary"
	"github.com/example/ledgerctl/internal/ports/secondary"
)

// RunsServiceImpl implements primary.RunsService over the artifacts-tree
// scanner.
type RunsServiceImpl struct {
	scanner secondary.RunsScanner
	store   *config.Store
}

// NewRunsService creates a RunsService with injected dependencies.
func NewRunsService(scanner secondary.RunsScanner, store *config.Store) *RunsServiceImpl {
	return &RunsServiceImpl{scanner: scanner, store: store}
}

// ListExecFolders lists the exec folders under the active artifacts root,
// newest first, with session names populated per folder.
func (s *RunsServiceImpl) ListExecFolders(ctx context.Context) ([]models.ExecFolder, error) {
	root, err := s.artifactsRoot()
	if err != nil {
		return nil, err
	}

	folders, err := s.scanner.ListExecFolders(root)
	if err != nil {
		return nil, err
	}

	for i := range folders {
		sessions, err := s.scanner.ListSessions(root, folders[i].Name)
		if err != nil {
			return nil, err
		}
		folders[i].Sessions = sessions
	}

	return folders, nil
}

// ListSessions lists the sessions of one exec folder, newest first.
func (s *RunsServiceImpl) ListSessions(ctx context.Context, execID string) ([]string, error) {
	root, err := s.artifactsRoot()
	if err != nil {
		return nil, err
	}
	return s.scanner.ListSessions(root, execID)
}

func (s *RunsServiceImpl) artifactsRoot() (string, error) {
	root := s.store.ArtifactsRoot()
	if root == "" {
		return "", fmt.Errorf("no artifacts root configured (add a project first)")
	}
	return root, nil
}

var _ primary.RunsService = (*RunsServiceImpl)(nil)
