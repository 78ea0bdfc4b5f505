package supervisor

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"unpod-desktop/internal/config"
	"unpod-desktop/internal/platform"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStart_DevelopmentSentinel(t *testing.T) {
	s := New(config.Development, discardLogger())

	h, err := s.Start()
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if h.Pid != 0 {
		t.Errorf("Start() pid = %d, want sentinel 0", h.Pid)
	}
	if h.Mode != config.Development {
		t.Errorf("Start() mode = %v, want Development", h.Mode)
	}
	if got := s.Handle(); got != h {
		t.Errorf("Handle() = %+v, want %+v", got, h)
	}
}

func TestStart_ProductionMissingResources(t *testing.T) {
	s := New(config.Production, discardLogger())

	// The test binary is not a packaged install, so the bundled server
	// directory cannot exist next to it.
	_, err := s.Start()
	if !errors.Is(err, ErrMissingResource) {
		t.Fatalf("Start() error = %v, want ErrMissingResource", err)
	}
}

func TestStart_ProductionMissingRuntime(t *testing.T) {
	exe, err := os.Executable()
	if err != nil {
		t.Fatal(err)
	}

	// Stage the server directory next to the test binary so resolution gets
	// past the resource check; the bundled node binary stays absent.
	serverDir := ServerDir(platform.Current(), exe)
	if err := os.MkdirAll(serverDir, 0o755); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(serverDir) })

	s := New(config.Production, discardLogger())
	_, err = s.Start()
	if !errors.Is(err, ErrMissingRuntime) {
		t.Fatalf("Start() error = %v, want ErrMissingRuntime", err)
	}
}

func TestStop_SentinelIsNoOp(t *testing.T) {
	s := New(config.Development, discardLogger())
	called := false
	s.kill = func(pid int) error {
		called = true
		return nil
	}

	if _, err := s.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	s.Stop()

	if called {
		t.Error("Stop() signalled the sentinel handle")
	}
}

func TestStop_KillsRecordedPidOnce(t *testing.T) {
	s := New(config.Production, discardLogger())
	var killed []int
	s.kill = func(pid int) error {
		killed = append(killed, pid)
		return nil
	}

	s.setHandle(Handle{Pid: 4242, Mode: config.Production})

	s.Stop()
	s.Stop() // second stop finds the sentinel

	if len(killed) != 1 || killed[0] != 4242 {
		t.Errorf("killed pids = %v, want [4242]", killed)
	}
	if got := s.Handle(); got.Pid != 0 {
		t.Errorf("Handle() after Stop = %+v, want sentinel", got)
	}
}

func TestStop_SwallowsKillFailure(t *testing.T) {
	s := New(config.Production, discardLogger())
	s.kill = func(pid int) error {
		return errors.New("process already gone")
	}
	s.setHandle(Handle{Pid: 99, Mode: config.Production})

	// Must not panic or retry; the handle resets regardless.
	s.Stop()

	if got := s.Handle(); got.Pid != 0 {
		t.Errorf("Handle() after failed Stop = %+v, want sentinel", got)
	}
}

func TestServerDir(t *testing.T) {
	exe := filepath.Join("/opt", "unpod", "unpod")
	want := filepath.Join("/opt", "unpod", "resources", "server")
	if got := ServerDir(platform.Linux, exe); got != want {
		t.Errorf("ServerDir(Linux, %q) = %q, want %q", exe, got, want)
	}
}
