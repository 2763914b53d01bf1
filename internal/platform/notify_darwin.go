//go:build darwin

package platform

import (
	"fmt"
	"os/exec"
)

// Notify posts a notification through macOS Notification Center. The icon
// and timeout options have no osascript equivalent and are ignored.
func Notify(title, body string, opts Options) error {
	script := fmt.Sprintf("display notification %q with title %q", body, title)
	return exec.Command("osascript", "-e", script).Run()
}
