//go:build !linux

package tray

import "errors"

var errBadgeUnsupported = errors.New("OS badge not supported on this platform")

// stubBadge stands in where no badge indicator is reachable from Go: the
// macOS Dock and Windows taskbar badges need toolkit hooks Wails v2 does not
// expose. Callers treat the error as best-effort noise.
type stubBadge struct{}

// NewBadgeSetter returns the stub badge surface.
func NewBadgeSetter() BadgeSetter {
	return stubBadge{}
}

func (stubBadge) SetBadge(count uint) error {
	return errBadgeUnsupported
}
