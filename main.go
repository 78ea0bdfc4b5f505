package main

import (
	"embed"
	"os"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/menu/keys"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"unpod-desktop/internal/app"
	"unpod-desktop/internal/config"
	"unpod-desktop/internal/logger"
	"unpod-desktop/internal/session"
	"unpod-desktop/internal/supervisor"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	log, wailsHandler, err := logger.New(os.Stdout)
	if err != nil {
		println("Error initializing logger:", err.Error())
		return
	}

	mode := config.CurrentMode()

	storePath, err := session.DefaultPath()
	if err != nil {
		log.Error("Failed to resolve session store path", "error", err)
		os.Exit(1)
	}
	store := session.NewStore(storePath)

	backend := supervisor.New(mode, log)

	a := app.NewApp(log, wailsHandler, mode, store, backend)

	err = wails.Run(&options.App{
		Title:  config.AppName,
		Width:  1280,
		Height: 800,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 255, G: 255, B: 255, A: 1},
		OnStartup:        a.Startup,
		OnBeforeClose:    a.BeforeClose,
		OnShutdown:       a.Shutdown,
		Menu:             buildMenu(a),
		Bind: []interface{}{
			a,
		},
	})

	if err != nil {
		// Window or menu construction failing is a non-recoverable
		// startup error.
		log.Error("Failed to run application", "error", err)
		os.Exit(1)
	}
}

// buildMenu constructs the static application menu. Edit comes from the
// role-based default so clipboard shortcuts work inside the webview.
func buildMenu(a *app.App) *menu.Menu {
	appMenu := menu.NewMenu()

	fileMenu := appMenu.AddSubmenu("File")
	fileMenu.AddText("Quit", keys.CmdOrCtrl("q"), func(_ *menu.CallbackData) {
		a.QuitApp()
	})

	appMenu.Append(menu.EditMenu())

	viewMenu := appMenu.AddSubmenu("View")
	viewMenu.AddText("Toggle Full Screen", keys.Key("f11"), func(_ *menu.CallbackData) {
		a.ToggleFullscreen()
	})

	windowMenu := appMenu.AddSubmenu("Window")
	windowMenu.AddText("Minimize", keys.CmdOrCtrl("m"), func(_ *menu.CallbackData) {
		a.WindowMinimize()
	})
	windowMenu.AddText("Close", keys.CmdOrCtrl("w"), func(_ *menu.CallbackData) {
		a.WindowClose()
	})

	return appMenu
}
