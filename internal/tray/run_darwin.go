//go:build darwin

package tray

// Run is a no-op on macOS: systray needs the main thread, which the Wails
// run loop already owns (AppDelegate conflict). The Dock icon and the
// application menu cover show/quit there.
func (c *Controller) Run() {
	c.logger.Info("System tray disabled on macOS, using Dock and app menu")
}

// Quit is a no-op on macOS; there is no tray to tear down.
func (c *Controller) Quit() {}

func setTrayTooltip(tooltip string) {}
