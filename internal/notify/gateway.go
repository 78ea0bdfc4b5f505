// Package notify is the gateway to the OS notification subsystem: permission
// query/request plus best-effort display of titled alerts with an icon
// fallback.
package notify

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gen2brain/beeep"

	"unpod-desktop/internal/config"
	"unpod-desktop/internal/platform"
)

// Permission mirrors the OS-owned notification permission state. It is
// observed per call and never cached locally.
type Permission int

const (
	Unknown Permission = iota
	Granted
	Denied
)

func (p Permission) String() string {
	switch p {
	case Granted:
		return "granted"
	case Denied:
		return "denied"
	default:
		return "unknown"
	}
}

var (
	// ErrPermissionDenied is returned when the OS does not grant
	// notification permission after a request.
	ErrPermissionDenied = errors.New("notification permission not granted")
	// ErrDisplayFailed is returned when both the icon and icon-less
	// display attempts fail.
	ErrDisplayFailed = errors.New("failed to display notification")
)

// Prober answers permission queries against the OS notification subsystem.
type Prober interface {
	Query() Permission
	Request() Permission
}

// osProber reports Granted: the transports beeep drives (D-Bus, Windows
// toasts, osascript) deliver without a runtime grant. The protocol is kept
// so a gated platform can slot in a real prober.
type osProber struct{}

func (osProber) Query() Permission   { return Granted }
func (osProber) Request() Permission { return Granted }

type displayFunc func(title, body, icon string) error

// Gateway negotiates permission and shows notifications.
type Gateway struct {
	mode    config.Mode
	prober  Prober
	display displayFunc
	logger  *slog.Logger
}

// NewGateway creates the gateway wired to the real OS.
func NewGateway(mode config.Mode, logger *slog.Logger) *Gateway {
	beeep.AppName = config.AppName
	return &Gateway{
		mode:    mode,
		prober:  osProber{},
		display: func(title, body, icon string) error {
			return beeep.Notify(title, body, icon)
		},
		logger:  logger,
	}
}

// Query returns the current permission state as the OS reports it.
func (g *Gateway) Query() Permission {
	return g.prober.Query()
}

// Request asks the OS for notification permission. Returns true iff the
// resulting state is Granted.
func (g *Gateway) Request() bool {
	return g.prober.Request() == Granted
}

// Show displays a notification. Permission is re-requested on every call —
// a previous denial is never cached, the OS decides whether the re-ask is
// effective. The application icon is attached when it exists on disk, with
// an icon-less retry on any display failure.
func (g *Gateway) Show(title, body string) error {
	if g.prober.Request() != Granted {
		return ErrPermissionDenied
	}

	if icon := g.iconPath(); icon != "" {
		err := g.display(title, body, icon)
		if err == nil {
			return nil
		}
		g.logger.Warn("Notification with icon failed, retrying without", "icon", icon, "error", err)
	}

	if err := g.display(title, body, ""); err != nil {
		return fmt.Errorf("%w: %v", ErrDisplayFailed, err)
	}
	return nil
}

// iconPath resolves the application icon, returning "" when it is not on
// disk. Development runs from the project root; production reads it from
// the bundled resources.
func (g *Gateway) iconPath() string {
	var p string
	if g.mode == config.Development {
		p = filepath.Join("build", "appicon.png")
	} else {
		exe, err := os.Executable()
		if err != nil {
			return ""
		}
		p = filepath.Join(platform.ResourcesDir(platform.Current(), exe), "icons", "icon.png")
	}
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}
