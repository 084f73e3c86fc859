// Package app contains the service implementations behind the primary ports.
package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/ledgerctl/internal/config"
	"github.com/example/ledgerctl/internal/models"
	"github.com/example/ledgerctl/internal/ports/primary"
	"github.com/example/ledgerctl/internal/ports/secondary"
)

// SessionServiceImpl implements primary.SessionService over the engine
// gateway. The gateway boundary returns result objects; this is the layer
// where a failed result becomes a Go error carrying the diagnostic.
type SessionServiceImpl struct {
	gateway secondary.EngineGateway
	store   *config.Store
}

// NewSessionService creates a SessionService with injected dependencies.
func NewSessionService(gateway secondary.EngineGateway, store *config.Store) *SessionServiceImpl {
	return &SessionServiceImpl{gateway: gateway, store: store}
}

// Latest retrieves the most recent session contract under the active
// artifacts root.
func (s *SessionServiceImpl) Latest(ctx context.Context) (*primary.SessionResponse, error) {
	root, err := s.artifactsRoot()
	if err != nil {
		return nil, err
	}
	return sessionResponse(s.gateway.LatestSession(ctx, root))
}

// Show retrieves the contract for a specific exec/session pair.
func (s *SessionServiceImpl) Show(ctx context.Context, execID, sessionID string) (*primary.SessionResponse, error) {
	root, err := s.artifactsRoot()
	if err != nil {
		return nil, err
	}
	return sessionResponse(s.gateway.Session(ctx, root, execID, sessionID))
}

// Export asks the engine to write the contract JSON to req.OutFile.
func (s *SessionServiceImpl) Export(ctx context.Context, req primary.ExportRequest) (*primary.ExportResponse, error) {
	root, err := s.artifactsRoot()
	if err != nil {
		return nil, err
	}

	res := s.gateway.ExportContract(ctx, root, req.OutFile, req.ExecID, req.SessionID)
	if !res.OK {
		return nil, resultError(res)
	}

	return &primary.ExportResponse{
		OutFile:  req.OutFile,
		Contract: models.ContractFromMap(res.Contract),
	}, nil
}

func (s *SessionServiceImpl) artifactsRoot() (string, error) {
	root := s.store.ArtifactsRoot()
	if root == "" {
		return "", fmt.Errorf("no artifacts root configured (add a project first)")
	}
	return root, nil
}

func sessionResponse(res *models.EngineResult) (*primary.SessionResponse, error) {
	if !res.OK {
		return nil, resultError(res)
	}
	return &primary.SessionResponse{
		Contract: models.ContractFromMap(res.Contract),
		Raw:      res.Contract,
	}, nil
}

func resultError(res *models.EngineResult) error {
	return fmt.Errorf("engine invocation failed (exit %d): %s", res.ExitCode, strings.TrimSpace(res.Stderr))
}

var _ primary.SessionService = (*SessionServiceImpl)(nil)
