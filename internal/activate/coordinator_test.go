package activate

import (
	"io"
	"log/slog"
	"sync"
	"testing"
)

// fakeWindow tracks window state the way an OS window manager would: each
// operation is idempotent on its own.
type fakeWindow struct {
	mu        sync.Mutex
	visible   bool
	focused   bool
	minimised bool
	activated bool
}

func (f *fakeWindow) Unminimise() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.minimised = false
}

func (f *fakeWindow) Show() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.visible = true
}

func (f *fakeWindow) Focus() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.focused = true
}

func (f *fakeWindow) ActivateApp() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.activated = true
}

func (f *fakeWindow) state() (visible, focused, minimised, activated bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.visible, f.focused, f.minimised, f.activated
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestActivate_ReachesForegroundState(t *testing.T) {
	win := &fakeWindow{minimised: true}
	c := NewCoordinator(win, discardLogger())

	c.Activate()

	visible, focused, minimised, activated := win.state()
	if !visible || !focused || minimised || !activated {
		t.Errorf("state after Activate = visible=%v focused=%v minimised=%v activated=%v",
			visible, focused, minimised, activated)
	}
}

func TestActivate_Idempotent(t *testing.T) {
	win := &fakeWindow{minimised: true}
	c := NewCoordinator(win, discardLogger())

	// A notification click fires several overlapping events; each handler
	// calls Activate independently.
	for i := 0; i < 5; i++ {
		c.Activate()
	}

	visible, focused, minimised, _ := win.state()
	if !visible || !focused || minimised {
		t.Errorf("state after repeated Activate = visible=%v focused=%v minimised=%v",
			visible, focused, minimised)
	}
}

func TestActivate_ConcurrentEvents(t *testing.T) {
	win := &fakeWindow{minimised: true}
	c := NewCoordinator(win, discardLogger())

	var wg sync.WaitGroup
	for range EventNames() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Activate()
		}()
	}
	wg.Wait()

	visible, focused, minimised, activated := win.state()
	if !visible || !focused || minimised || !activated {
		t.Errorf("state after concurrent Activate = visible=%v focused=%v minimised=%v activated=%v",
			visible, focused, minimised, activated)
	}
}

func TestEventNames(t *testing.T) {
	names := EventNames()
	want := map[string]bool{
		"notification-action":  true,
		"notification":         true,
		"notification:clicked": true,
		"window:focus":         true,
		"app:show":             true,
	}
	if len(names) != len(want) {
		t.Fatalf("EventNames() = %v, want %d sources", names, len(want))
	}
	for _, n := range names {
		if !want[n] {
			t.Errorf("unexpected event source %q", n)
		}
	}

	// The returned slice is a copy; mutating it must not affect the
	// subscription list.
	names[0] = "tampered"
	if EventNames()[0] == "tampered" {
		t.Error("EventNames() leaks the internal slice")
	}
}
