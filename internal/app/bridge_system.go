package app

import (
	goruntime "runtime"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"unpod-desktop/internal/config"
)

// GetPlatform returns the OS identifier string.
func (a *App) GetPlatform() string {
	return goruntime.GOOS
}

// GetAppVersion returns the semantic version stamped at build time.
func (a *App) GetAppVersion() string {
	return config.Version
}

// GetTheme returns the UI theme. OS theme detection has not landed; light is
// the default.
func (a *App) GetTheme() string {
	return "light"
}

// WindowMinimize minimizes the main window.
func (a *App) WindowMinimize() {
	runtime.WindowMinimise(a.ctx)
}

// WindowMaximize toggles between maximized and restored based on the current
// state.
func (a *App) WindowMaximize() {
	runtime.WindowToggleMaximise(a.ctx)
}

// WindowClose requests application close; the BeforeClose hook stops the
// backend on the way out.
func (a *App) WindowClose() {
	runtime.Quit(a.ctx)
}

// ToggleFullscreen flips the fullscreen state (View menu action).
func (a *App) ToggleFullscreen() {
	if runtime.WindowIsFullscreen(a.ctx) {
		runtime.WindowUnfullscreen(a.ctx)
	} else {
		runtime.WindowFullscreen(a.ctx)
	}
}

// OpenExternal opens url in the user's default browser.
func (a *App) OpenExternal(url string) error {
	a.logger.Info("frontend_request", "method", "OpenExternal", "url", url)
	runtime.BrowserOpenURL(a.ctx, url)
	return nil
}
