// Package logger builds the application logger: a slog fanout that writes
// JSON to a log file, colored lines to the console, and re-emits records as
// Wails events once the runtime context is available.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// ANSI color codes
const (
	reset  = "\033[0m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	gray   = "\033[37m"
)

type ConsoleHandler struct {
	mu  sync.Mutex
	out io.Writer
}

func NewConsoleHandler(out io.Writer) *ConsoleHandler {
	return &ConsoleHandler{out: out}
}

func (h *ConsoleHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return true
}

func (h *ConsoleHandler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	levelColor := reset
	switch r.Level {
	case slog.LevelDebug:
		levelColor = gray
	case slog.LevelInfo:
		levelColor = green
	case slog.LevelWarn:
		levelColor = yellow
	case slog.LevelError:
		levelColor = red
	}

	timeStr := r.Time.Format(time.TimeOnly)
	msg := fmt.Sprintf("%s%s%s [%s] %s\n", levelColor, r.Level.String()[:4], reset, timeStr, r.Message)

	_, err := h.out.Write([]byte(msg))
	return err
}

func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h
}

func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	return h
}

// WailsHandler forwards log records to the frontend as "log:entry" events.
// Records emitted before SetContext are dropped.
type WailsHandler struct {
	mu  sync.Mutex
	ctx context.Context
}

func NewWailsHandler() *WailsHandler {
	return &WailsHandler{}
}

func (h *WailsHandler) SetContext(ctx context.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ctx = ctx
}

func (h *WailsHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return true
}

func (h *WailsHandler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.ctx == nil {
		return nil
	}

	data := make(map[string]interface{})
	r.Attrs(func(a slog.Attr) bool {
		data[a.Key] = a.Value.Any()
		return true
	})

	runtime.EventsEmit(h.ctx, "log:entry", map[string]interface{}{
		"level":   r.Level.String(),
		"message": r.Message,
		"time":    r.Time.Format(time.RFC3339),
		"data":    data,
	})

	return nil
}

func (h *WailsHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h
}

func (h *WailsHandler) WithGroup(name string) slog.Handler {
	return h
}

// New creates the application logger (JSON file + console + Wails events).
// The WailsHandler is returned separately so the app can attach the runtime
// context to it at startup.
func New(consoleOutput io.Writer) (*slog.Logger, *WailsHandler, error) {
	appData, err := os.UserConfigDir()
	if err != nil {
		return nil, nil, err
	}
	logDir := filepath.Join(appData, "Unpod", "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(filepath.Join(logDir, "app.json"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	jsonHandler := slog.NewJSONHandler(f, nil)
	consoleHandler := NewConsoleHandler(consoleOutput)
	wailsHandler := NewWailsHandler()

	handler := &FanoutHandler{
		handlers: []slog.Handler{jsonHandler, consoleHandler, wailsHandler},
	}

	return slog.New(handler), wailsHandler, nil
}

// FanoutHandler duplicates records to every child handler.
type FanoutHandler struct {
	handlers []slog.Handler
}

func (h *FanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *FanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, handler := range h.handlers {
		_ = handler.Handle(ctx, r)
	}
	return nil
}

func (h *FanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &FanoutHandler{handlers: newHandlers}
}

func (h *FanoutHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &FanoutHandler{handlers: newHandlers}
}
