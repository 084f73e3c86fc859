package secondary

import "github.com/example/ledgerctl/internal/models"

// RunsScanner defines the secondary port for reading the engine-owned
// artifacts tree. The layout (exec_* folders containing milestone/<session>
// directories) is an external contract; the scanner only reads it.
type RunsScanner interface {
	// ListExecFolders returns the exec_* directories directly under root,
	// newest first.
	ListExecFolders(root string) ([]models.ExecFolder, error)

	// ListSessions returns the session directories under
	// <root>/<execID>/milestone, newest first. A missing milestone directory
	// yields an empty list, not an error.
	ListSessions(root, execID string) ([]string, error)
}

// FileOpener defines the secondary port for revealing a file or directory in
// the OS default application or file explorer.
type FileOpener interface {
	Open(path string) error
}
