package primary

import (
	"context"

	"github.com/example/ledgerctl/internal/models"
)

// RunsService defines the primary port for browsing the artifacts tree.
type RunsService interface {
	// ListExecFolders lists the exec folders under the active artifacts
	// root, newest first, with their session names populated.
	ListExecFolders(ctx context.Context) ([]models.ExecFolder, error)

	// ListSessions lists the sessions of one exec folder, newest first.
	ListSessions(ctx context.Context, execID string) ([]string, error)
}
