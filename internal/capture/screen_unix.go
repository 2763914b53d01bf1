//go:build linux || freebsd || openbsd || netbsd || dragonfly

package capture

import (
	"image"
	"os"
	"strings"
)

func captureScreen() (*image.RGBA, error) {
	if runningOnWayland() {
		// X fallback cannot see a wayland screen, so the portal result
		// is final either way.
		return portalScreenshot()
	}
	img, err := x11Screenshot()
	if err != nil {
		// Some X sessions still route grabs through the portal.
		if pimg, perr := portalScreenshot(); perr == nil {
			return pimg, nil
		}
		return nil, err
	}
	return img, nil
}

func runningOnWayland() bool {
	sessionType := strings.ToLower(strings.TrimSpace(os.Getenv("XDG_SESSION_TYPE")))
	if sessionType == "wayland" {
		return true
	}
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		return true
	}
	return false
}
