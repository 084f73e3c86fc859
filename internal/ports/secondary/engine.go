// Package secondary defines the secondary ports (driven adapters) for the application.
package secondary

import (
	"context"

	"github.com/example/ledgerctl/internal/models"
)

// EngineGateway defines the secondary port for the external ExecLedger engine.
//
// Implementations never return errors: launch failure, timeout, non-zero exit
// and unparseable stdout are all folded into the returned result with OK=false
// and a human-readable diagnostic in Stderr. Callers branch on OK only.
type EngineGateway interface {
	// LatestSession requests the most recent session contract under root.
	LatestSession(ctx context.Context, root string) *models.EngineResult

	// Session requests the contract for a specific exec/session pair.
	Session(ctx context.Context, root, execID, sessionID string) *models.EngineResult

	// ExportContract asks the engine to additionally write the contract JSON
	// to outFile. An empty execID/sessionID pair exports the latest session.
	ExportContract(ctx context.Context, root, outFile, execID, sessionID string) *models.EngineResult

	// LastResult returns the most recent invocation result for diagnostic
	// display, or nil before the first invocation. Exactly one result is
	// retained; each invocation overwrites it.
	LastResult() *models.EngineResult
}
