// Package primary defines the primary ports (driving interfaces) for the application.
package primary

import (
	"context"

	"github.com/example/ledgerctl/internal/models"
)

// SessionService defines the primary port for session contract operations.
type SessionService interface {
	// Latest retrieves the contract for the most recent session under the
	// active project's artifacts root.
	Latest(ctx context.Context) (*SessionResponse, error)

	// Show retrieves the contract for a specific exec/session pair.
	Show(ctx context.Context, execID, sessionID string) (*SessionResponse, error)

	// Export asks the engine to write the contract JSON to a file.
	Export(ctx context.Context, req ExportRequest) (*ExportResponse, error)
}

// SessionResponse contains a decoded contract plus the raw engine document.
type SessionResponse struct {
	Contract *models.Contract
	Raw      map[string]any
}

// ExportRequest contains parameters for exporting a contract.
type ExportRequest struct {
	OutFile   string
	ExecID    string // optional; empty pair exports the latest session
	SessionID string
}

// ExportResponse contains the result of a contract export.
type ExportResponse struct {
	OutFile  string
	Contract *models.Contract
}
