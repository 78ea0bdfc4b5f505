// Package activate collapses the overlapping runtime signals that all mean
// "bring the application to the foreground" into one idempotent operation.
package activate

import (
	"context"
	"log/slog"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// WindowController is the minimal window surface the coordinator drives.
// Every operation is idempotent at the OS level, which is what makes the
// shared activation path safe without any debouncing.
type WindowController interface {
	Unminimise()
	Show()
	Focus()
	// ActivateApp promotes the application itself to the foreground on
	// platforms where that is distinct from window activation (macOS).
	ActivateApp()
}

// activationEvents are the independently-firing sources that all request
// activation. A single user action (e.g. clicking a notification) can fire
// several of them at once, in no guaranteed order; any one alone must be
// sufficient to reach the fully-activated state.
var activationEvents = []string{
	"notification-action",
	"notification",
	"notification:clicked",
	"window:focus",
	"app:show",
}

// Coordinator funnels every activation signal through Activate.
type Coordinator struct {
	win    WindowController
	logger *slog.Logger
}

// NewCoordinator creates a coordinator driving the given window.
func NewCoordinator(win WindowController, logger *slog.Logger) *Coordinator {
	return &Coordinator{win: win, logger: logger}
}

// Subscribe registers one handler per event source on the Wails event bus.
func (c *Coordinator) Subscribe(ctx context.Context) {
	for _, name := range activationEvents {
		name := name
		runtime.EventsOn(ctx, name, func(_ ...interface{}) {
			c.logger.Debug("Activation event received", "source", name)
			c.Activate()
		})
	}
}

// Activate brings the main window to a visible, focused, unminimized state.
// Invoking it back-to-back for overlapping events produces no flicker or
// error because each underlying step is itself idempotent.
func (c *Coordinator) Activate() {
	c.win.Unminimise()
	c.win.Show()
	c.win.Focus()
	c.win.ActivateApp()
}

// EventNames returns the subscribed activation sources.
func EventNames() []string {
	return append([]string(nil), activationEvents...)
}
