// Package config holds build-time application constants and the runtime mode.
package config

import "os"

const (
	// AppName is the user-visible product name used for window titles,
	// tray tooltips and notification branding.
	AppName = "Unpod"

	// BackendPort is the fixed port the bundled backend service listens on.
	BackendPort = 3000

	// UpdateOwner/UpdateRepo identify the GitHub repository that publishes
	// release artifacts for the auto-updater.
	UpdateOwner = "unpod-app"
	UpdateRepo  = "unpod-desktop"
)

// Version is stamped at build time via
// -ldflags "-X unpod-desktop/internal/config.Version=x.y.z".
var Version = "0.1.0"

// buildMode is stamped at build time. Development builds assume an
// externally-run backend and disable the updater.
var buildMode = "production"

// Mode selects between a packaged production install and a developer setup.
type Mode int

const (
	Production Mode = iota
	Development
)

func (m Mode) String() string {
	if m == Development {
		return "development"
	}
	return "production"
}

// CurrentMode resolves the runtime mode once at startup. The UNPOD_ENV
// environment variable overrides the build stamp in either direction, so a
// packaged binary can be pointed at a locally-run backend and a development
// build can be exercised against the bundled one.
func CurrentMode() Mode {
	switch os.Getenv("UNPOD_ENV") {
	case "development":
		return Development
	case "production":
		return Production
	}
	if buildMode == "development" {
		return Development
	}
	return Production
}
