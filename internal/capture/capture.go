// Package capture grabs a whole-screen image for the grab subcommand.
//
// On Wayland sessions the XDG desktop portal takes the screenshot; on X11
// the root window is read directly. Other platforms report capture as
// unsupported.
package capture

import "image"

// Screen captures the entire default screen.
func Screen() (*image.RGBA, error) {
	return captureScreen()
}
