// Package app provides the Wails bridge between the frontend and the host
// shell. It is split into multiple files by domain for maintainability.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"unpod-desktop/internal/activate"
	"unpod-desktop/internal/config"
	"unpod-desktop/internal/logger"
	"unpod-desktop/internal/notify"
	"unpod-desktop/internal/session"
	"unpod-desktop/internal/supervisor"
	"unpod-desktop/internal/tray"
	"unpod-desktop/internal/updater"
)

// App is the main Wails application binding. It owns the session store and
// the backend process handle for the life of the process; everything else
// reaches them through the bridge methods.
type App struct {
	ctx          context.Context
	logger       *slog.Logger
	wailsHandler *logger.WailsHandler
	mode         config.Mode

	store   *session.Store
	gateway *notify.Gateway
	backend *supervisor.Supervisor
	trayCtl *tray.Controller
	coord   *activate.Coordinator
	checker *updater.Checker
}

// NewApp wires the application controller with all dependencies injected.
func NewApp(
	log *slog.Logger,
	wailsHandler *logger.WailsHandler,
	mode config.Mode,
	store *session.Store,
	backend *supervisor.Supervisor,
) *App {
	a := &App{
		logger:       log,
		wailsHandler: wailsHandler,
		mode:         mode,
		store:        store,
		backend:      backend,
	}
	a.gateway = notify.NewGateway(mode, log)
	a.coord = activate.NewCoordinator(wailsWindow{a}, log)
	a.trayCtl = tray.NewController(windowTitler{a}, tray.NewBadgeSetter(), tray.Callbacks{
		Show:         a.ShowApp,
		CheckUpdates: a.checkUpdatesFromTray,
		Quit:         a.QuitApp,
	}, log)
	return a
}

// Startup is called when the app starts. Backend launch, tray construction
// and activation wiring all complete before this returns, so the window only
// becomes interactive with the shell fully assembled. The settle wait inside
// Start runs here, off the UI dispatch loop.
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx
	if a.wailsHandler != nil {
		a.wailsHandler.SetContext(ctx)
	}

	installID, err := a.store.InstallID()
	if err != nil {
		a.logger.Warn("Failed to load install id", "error", err)
	}
	a.checker = updater.NewChecker(a.mode, installID, a.logger)

	if _, err := a.backend.Start(); err != nil {
		a.logger.Error("Failed to start backend", "error", err)
		if a.mode == config.Production {
			runtime.MessageDialog(a.ctx, runtime.MessageDialogOptions{
				Type:    runtime.ErrorDialog,
				Title:   "Backend Start Error",
				Message: fmt.Sprintf("Failed to start the Unpod backend: %v\n\nPlease reinstall the application.", err),
			})
		}
	}

	a.trayCtl.Run()
	a.coord.Subscribe(ctx)

	a.logger.Info("App started",
		"mode", a.mode.String(),
		"version", config.Version,
		"install_id", installID,
	)
}

// BeforeClose is the close-requested hook: it stops the backend and lets the
// window close proceed. Stop swallows termination failures, so exit is never
// blocked here.
func (a *App) BeforeClose(ctx context.Context) (prevent bool) {
	a.logger.Info("Close requested, stopping backend")
	a.backend.Stop()
	return false
}

// Shutdown runs as the process exits. A second Stop after BeforeClose finds
// the sentinel handle and does nothing.
func (a *App) Shutdown(ctx context.Context) {
	a.backend.Stop()
	a.trayCtl.Quit()
}

// QuitApp is invoked from the tray menu and the application menu.
func (a *App) QuitApp() {
	a.backend.Stop()
	a.trayCtl.Quit()
	runtime.Quit(a.ctx)
}

// ShowApp brings the main window to the foreground. Tray and menu "show"
// actions share the coordinator's activation path with the event sources.
func (a *App) ShowApp() {
	a.coord.Activate()
}
