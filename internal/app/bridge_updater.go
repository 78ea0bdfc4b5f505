package app

import "github.com/wailsapp/wails/v2/pkg/runtime"

// CheckForUpdates queries the release feed and returns a human-readable
// status string. Disabled entirely in development builds.
func (a *App) CheckForUpdates() (string, error) {
	status, err := a.checker.Check()
	if err != nil {
		a.logger.Error("Update check failed", "error", err)
		return "", err
	}
	a.logger.Info("Update check", "status", status)
	return status, nil
}

// DownloadAndInstallUpdate downloads the platform installer for the latest
// release and launches it. Disabled entirely in development builds.
func (a *App) DownloadAndInstallUpdate() error {
	if err := a.checker.DownloadAndInstall(); err != nil {
		a.logger.Error("Update install failed", "error", err)
		return err
	}
	return nil
}

// checkUpdatesFromTray is the tray menu action: it runs on its own
// goroutine, failures are logged and never surfaced to the user.
func (a *App) checkUpdatesFromTray() {
	status, err := a.checker.Check()
	if err != nil {
		a.logger.Error("Update check failed", "error", err)
		return
	}
	a.logger.Info("Update check", "status", status)
	runtime.EventsEmit(a.ctx, "update:status", status)
}
