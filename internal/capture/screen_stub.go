//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package capture

import (
	"fmt"
	"image"
	"runtime"
)

func captureScreen() (*image.RGBA, error) {
	return nil, fmt.Errorf("screen capture is not supported on %s", runtime.GOOS)
}
