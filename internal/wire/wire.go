// Package wire provides dependency injection for the ledgerctl application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"sync"

	"github.com/example/ledgerctl/internal/adapters/engine"
	"github.com/example/ledgerctl/internal/adapters/filesystem"
	"github.com/example/ledgerctl/internal/app"
	"github.com/example/ledgerctl/internal/config"
	"github.com/example/ledgerctl/internal/ports/primary"
	"github.com/example/ledgerctl/internal/ports/secondary"
)

var (
	store          *config.Store
	gateway        secondary.EngineGateway
	opener         secondary.FileOpener
	sessionService primary.SessionService
	runsService    primary.RunsService
	once           sync.Once
)

// Store returns the singleton configuration handle.
func Store() *config.Store {
	once.Do(initServices)
	return store
}

// Gateway returns the singleton engine gateway. The same instance backs the
// session service, so its last-result slot covers every invocation made
// during this process.
func Gateway() secondary.EngineGateway {
	once.Do(initServices)
	return gateway
}

// Opener returns the singleton OS file opener.
func Opener() secondary.FileOpener {
	once.Do(initServices)
	return opener
}

// SessionService returns the singleton SessionService instance.
func SessionService() primary.SessionService {
	once.Do(initServices)
	return sessionService
}

// RunsService returns the singleton RunsService instance.
func RunsService() primary.RunsService {
	once.Do(initServices)
	return runsService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	path, err := config.DefaultPath()
	if err != nil {
		log.Fatalf("failed to resolve config path: %v", err)
	}
	store = config.Load(path)

	projectRoot := ""
	if p := store.ActiveProject(); p != nil {
		projectRoot = p.ProjectRoot
	}

	// Secondary adapters
	gateway = engine.New(engine.ResolveEngine(projectRoot), engine.DefaultTimeout)
	scanner := filesystem.NewScanner()
	opener = filesystem.NewOpener()

	// Services (primary ports implementation)
	sessionService = app.NewSessionService(gateway, store)
	runsService = app.NewRunsService(scanner, store)
}
