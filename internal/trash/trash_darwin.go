//go:build darwin

package trash

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// moveToTrash asks Finder to delete the file, which places it in the
// user's Trash where it can be put back.
func moveToTrash(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("trash %s: %w", path, err)
	}
	if _, err := os.Lstat(abs); err != nil {
		return fmt.Errorf("trash %s: %w", filepath.Base(abs), err)
	}
	script := fmt.Sprintf("tell application %q to delete POSIX file %q", "Finder", abs)
	cmd := exec.Command("osascript", "-e", script)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("trash %s: %v: %s", filepath.Base(abs), err, out)
	}
	return nil
}
