package filesystem

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/example/ledgerctl/internal/ports/secondary"
)

// Opener implements secondary.FileOpener by shelling out to the platform's
// open command.
type Opener struct{}

// NewOpener creates a new OS file opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open reveals path in the OS default application or file explorer.
func (o *Opener) Open(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("path does not exist: %s", path)
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("explorer", path)
	case "darwin":
		cmd = exec.Command("open", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	return nil
}

var _ secondary.FileOpener = (*Opener)(nil)
