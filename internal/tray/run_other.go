//go:build !darwin

package tray

import "github.com/getlantern/systray"

// Run registers the tray icon off the main thread; the Wails run loop owns
// the main thread, which systray tolerates on Windows and Linux.
func (c *Controller) Run() {
	go systray.Run(c.onReady, c.onExit)
}

// Quit tears the tray down at application shutdown.
func (c *Controller) Quit() {
	systray.Quit()
}

func setTrayTooltip(tooltip string) {
	systray.SetTooltip(tooltip)
}

func (c *Controller) onReady() {
	systray.SetIcon(iconPNG)
	systray.SetTooltip(Tooltip(c.Count()))

	mShow := systray.AddMenuItem("Show App", "Show the Unpod window")
	systray.AddSeparator()
	mUpdates := systray.AddMenuItem("Check for Updates", "Check for a newer version")
	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "Quit Unpod")

	c.setRunning(true)
	c.logger.Info("System tray ready")

	go func() {
		for {
			select {
			case <-mShow.ClickedCh:
				c.cb.Show()
			case <-mUpdates.ClickedCh:
				// Non-blocking; the checker logs its own failures.
				go c.cb.CheckUpdates()
			case <-mQuit.ClickedCh:
				c.cb.Quit()
				return
			}
		}
	}()
}

func (c *Controller) onExit() {
	c.setRunning(false)
}
