// Package supervisor launches the bundled backend service as a child process
// and terminates it at shutdown.
package supervisor

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/process"

	"unpod-desktop/internal/config"
	"unpod-desktop/internal/platform"
)

// settleInterval is a best-effort grace period after launch, not a readiness
// probe. Callers must not assume the service accepts connections instantly.
const settleInterval = 2 * time.Second

var (
	// ErrMissingResource means the bundled server directory is absent.
	ErrMissingResource = errors.New("backend server directory not found")
	// ErrMissingRuntime means the bundled Node.js binary is absent.
	ErrMissingRuntime = errors.New("bundled runtime binary not found")
)

// Handle identifies the managed backend process. Pid 0 is the sentinel for
// "no managed process" (development mode) and is never signalled.
type Handle struct {
	Pid  int
	Mode config.Mode
}

type killFunc func(pid int) error

// Supervisor owns the backend child process for the life of the application.
// The handle is mutex-guarded: the tray quit action and the close-requested
// hook may race to terminate the same process.
type Supervisor struct {
	mode   config.Mode
	logger *slog.Logger

	mu     sync.Mutex
	handle Handle

	kill killFunc
}

// New creates a supervisor for the given mode.
func New(mode config.Mode, logger *slog.Logger) *Supervisor {
	return &Supervisor{mode: mode, logger: logger, kill: killProcess}
}

// ServerDir returns the directory holding the bundled backend for an install
// whose executable lives at exePath.
func ServerDir(p platform.Platform, exePath string) string {
	return filepath.Join(platform.ResourcesDir(p, exePath), "server")
}

// Start resolves the bundled runtime, spawns the backend and records its pid.
// It blocks for the settle interval before returning, so run it off the main
// loop. In development mode the sentinel handle is returned immediately,
// assuming an externally-run backend on the fixed port.
func (s *Supervisor) Start() (Handle, error) {
	if s.mode == config.Development {
		s.logger.Info("Development mode - assuming backend is already running", "port", config.BackendPort)
		h := Handle{Pid: 0, Mode: s.mode}
		s.setHandle(h)
		return h, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return Handle{}, fmt.Errorf("failed to locate executable: %w", err)
	}

	plat := platform.Current()
	serverDir := ServerDir(plat, exe)
	if _, err := os.Stat(serverDir); err != nil {
		return Handle{}, fmt.Errorf("%w: %s", ErrMissingResource, serverDir)
	}

	nodePath := platform.RuntimeBinary(plat, exe)
	if _, err := os.Stat(nodePath); err != nil {
		return Handle{}, fmt.Errorf("%w: %s", ErrMissingRuntime, nodePath)
	}

	cmd := exec.Command(nodePath, filepath.Join(serverDir, "server.js"))
	cmd.Dir = serverDir
	cmd.Env = append(os.Environ(),
		"NODE_ENV=production",
		"PORT="+strconv.Itoa(config.BackendPort),
	)
	// Standard streams stay discarded; the backend does its own logging.
	setDetached(cmd)

	if err := cmd.Start(); err != nil {
		return Handle{}, fmt.Errorf("failed to start backend: %w", err)
	}

	h := Handle{Pid: cmd.Process.Pid, Mode: s.mode}
	s.setHandle(h)
	s.logger.Info("Backend started", "pid", h.Pid, "port", config.BackendPort)

	// Reap the child so a crashed backend leaves no zombie behind.
	go func() {
		if err := cmd.Wait(); err != nil {
			s.logger.Warn("Backend process exited", "pid", h.Pid, "error", err)
		}
	}()

	time.Sleep(settleInterval)
	return h, nil
}

// Stop forcefully terminates the managed process. The sentinel handle is a
// no-op, and termination failures are swallowed: shutdown must never block
// application exit. There is no graceful-shutdown protocol with the backend;
// a second Stop after a successful one finds the sentinel and does nothing.
func (s *Supervisor) Stop() {
	s.mu.Lock()
	h := s.handle
	s.handle = Handle{Mode: s.mode}
	s.mu.Unlock()

	if h.Pid == 0 {
		return
	}

	s.logger.Info("Stopping backend", "pid", h.Pid)
	if err := s.kill(h.Pid); err != nil {
		s.logger.Warn("Failed to stop backend", "pid", h.Pid, "error", err)
	}
}

// Handle returns the current process handle.
func (s *Supervisor) Handle() Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handle
}

func (s *Supervisor) setHandle(h Handle) {
	s.mu.Lock()
	s.handle = h
	s.mu.Unlock()
}

// killProcess sends a forceful termination signal to pid. A lookup failure
// means the process already exited.
func killProcess(pid int) error {
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return err
	}
	return p.Kill()
}
