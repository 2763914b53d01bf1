package platform

import "time"

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// IconPath, when non-empty, points to an image file the notification center
	// should display with the notification if supported by the platform.
	IconPath string

	// Timeout overrides how long the notification stays visible where the
	// platform supports it. Zero means the platform default.
	Timeout time.Duration
}
