package filesystem

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/example/ledgerctl/internal/models"
)

// Watcher follows the artifacts root and reports newly created exec folders
// and sessions. It watches three levels: the root (new exec_* folders), each
// exec folder (its milestone directory appearing), and each milestone
// directory (new sessions).
type Watcher struct {
	root    string
	watcher *fsnotify.Watcher
	out     io.Writer
}

// NewWatcher creates a Watcher for the given artifacts root.
func NewWatcher(root string, out io.Writer) (*Watcher, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("artifacts root does not exist: %s", root)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &Watcher{root: root, watcher: fsw, out: out}, nil
}

// Run watches until ctx is cancelled. Existing exec folders and their
// milestone directories are registered up front so sessions created inside
// them are seen too.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	if err := w.watcher.Add(w.root); err != nil {
		return fmt.Errorf("failed to watch artifacts root: %w", err)
	}

	entries, err := os.ReadDir(w.root)
	if err != nil {
		return fmt.Errorf("failed to scan artifacts root: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), models.ExecFolderPrefix) {
			w.watchExecFolder(filepath.Join(w.root, entry.Name()))
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Create != 0 {
				w.handleCreate(event.Name)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(w.out, "watch error: %v\n", err)
		}
	}
}

func (w *Watcher) handleCreate(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}

	base := filepath.Base(path)
	parent := filepath.Dir(path)

	switch {
	case parent == w.root && strings.HasPrefix(base, models.ExecFolderPrefix):
		fmt.Fprintf(w.out, "new exec folder: %s\n", base)
		w.watchExecFolder(path)
	case base == milestoneDirName:
		// Milestone directory appeared inside a watched exec folder.
		w.watcher.Add(path)
	case filepath.Base(parent) == milestoneDirName:
		execID := filepath.Base(filepath.Dir(parent))
		fmt.Fprintf(w.out, "new session: %s/%s\n", execID, base)
	}
}

// watchExecFolder registers an exec folder and, when present, its milestone
// directory.
func (w *Watcher) watchExecFolder(path string) {
	if err := w.watcher.Add(path); err != nil {
		fmt.Fprintf(w.out, "watch error: %v\n", err)
		return
	}
	milestone := filepath.Join(path, milestoneDirName)
	if info, err := os.Stat(milestone); err == nil && info.IsDir() {
		w.watcher.Add(milestone)
	}
}
