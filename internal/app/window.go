package app

import "github.com/wailsapp/wails/v2/pkg/runtime"

// wailsWindow adapts the Wails runtime window calls to the coordinator's
// WindowController. Each call is idempotent at the OS level.
type wailsWindow struct {
	a *App
}

func (w wailsWindow) Unminimise() {
	if runtime.WindowIsMinimised(w.a.ctx) {
		runtime.WindowUnminimise(w.a.ctx)
	}
}

func (w wailsWindow) Show() {
	runtime.WindowShow(w.a.ctx)
}

// Focus raises the window via a momentary always-on-top toggle; the v2
// runtime exposes no direct focus call.
func (w wailsWindow) Focus() {
	runtime.WindowSetAlwaysOnTop(w.a.ctx, true)
	runtime.WindowSetAlwaysOnTop(w.a.ctx, false)
}

// ActivateApp promotes the application itself to the foreground, which on
// macOS is distinct from raising the window.
func (w wailsWindow) ActivateApp() {
	runtime.Show(w.a.ctx)
}

// windowTitler is the badge surface writing to the window title.
type windowTitler struct {
	a *App
}

func (t windowTitler) SetTitle(title string) {
	if t.a.ctx == nil {
		return
	}
	runtime.WindowSetTitle(t.a.ctx, title)
}
