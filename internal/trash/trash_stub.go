//go:build !linux && !darwin && !windows

package trash

import "fmt"

// moveToTrash reports that no trash integration exists on this platform.
// Callers keep the file in place rather than deleting permanently.
func moveToTrash(path string) error {
	return fmt.Errorf("trash is not supported on this platform")
}
