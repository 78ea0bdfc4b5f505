// Package tray renders the system tray icon/menu and owns the badge state
// that drives the tray tooltip, the window title and the OS badge surface.
package tray

import (
	"fmt"
	"log/slog"
	"sync"

	"unpod-desktop/internal/config"
)

// WindowTitler is the window-title surface the badge writes to.
type WindowTitler interface {
	SetTitle(title string)
}

// BadgeSetter applies the unread count to the OS-level badge indicator
// (dock or taskbar). Implementations are best-effort; an unsupported
// platform returns an error that the controller logs and moves past.
type BadgeSetter interface {
	SetBadge(count uint) error
}

// Callbacks are the tray menu actions. CheckUpdates is invoked on its own
// goroutine and must log its own failures; Quit terminates the application.
type Callbacks struct {
	Show         func()
	CheckUpdates func()
	Quit         func()
}

// Controller owns the tray state. The badge count is shared between frontend
// commands and tray callbacks, so it sits behind a mutex.
type Controller struct {
	logger *slog.Logger
	titler WindowTitler
	badge  BadgeSetter
	cb     Callbacks

	mu      sync.Mutex
	count   uint
	running bool
}

// NewController creates the tray controller. Run must be called once the
// window exists.
func NewController(titler WindowTitler, badge BadgeSetter, cb Callbacks, logger *slog.Logger) *Controller {
	return &Controller{logger: logger, titler: titler, badge: badge, cb: cb}
}

// Tooltip derives the tray tooltip from the unread count.
func Tooltip(count uint) string {
	if count == 0 {
		return config.AppName
	}
	suffix := ""
	if count > 1 {
		suffix = "s"
	}
	return fmt.Sprintf("%s - %d unread notification%s", config.AppName, count, suffix)
}

// WindowTitle derives the main window title from the unread count.
func WindowTitle(count uint) string {
	if count == 0 {
		return config.AppName
	}
	return fmt.Sprintf("(%d) %s", count, config.AppName)
}

// SetBadge records the unread count and applies it to the three observable
// surfaces. Each surface is independent: a platform without an OS badge
// still gets its tooltip and title updated.
func (c *Controller) SetBadge(count uint) {
	c.mu.Lock()
	c.count = count
	running := c.running
	c.mu.Unlock()

	if running {
		setTrayTooltip(Tooltip(count))
	}
	c.titler.SetTitle(WindowTitle(count))
	if err := c.badge.SetBadge(count); err != nil {
		c.logger.Debug("OS badge not applied", "count", count, "error", err)
	}
}

// Count returns the current unread count.
func (c *Controller) Count() uint {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

func (c *Controller) setRunning(v bool) {
	c.mu.Lock()
	c.running = v
	c.mu.Unlock()
}
