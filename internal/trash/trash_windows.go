//go:build windows

package trash

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

func psQuote(s string) string {
	escaped := strings.ReplaceAll(s, "'", "''")
	return "'" + escaped + "'"
}

// moveToTrash sends the file to the Recycle Bin through the shell API.
func moveToTrash(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("trash %s: %w", path, err)
	}
	if _, err := os.Lstat(abs); err != nil {
		return fmt.Errorf("trash %s: %w", filepath.Base(abs), err)
	}
	script := fmt.Sprintf(`Add-Type -AssemblyName Microsoft.VisualBasic; `+
		`[Microsoft.VisualBasic.FileIO.FileSystem]::DeleteFile(%s, 'OnlyErrorDialogs', 'SendToRecycleBin')`,
		psQuote(abs))
	cmd := exec.Command("powershell", "-NoProfile", "-NonInteractive", "-Command", script)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("trash %s: %v: %s", filepath.Base(abs), err, out)
	}
	return nil
}
