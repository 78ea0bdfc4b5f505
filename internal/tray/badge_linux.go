//go:build linux

package tray

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

// unityBadge publishes the unread count via the com.canonical.Unity
// LauncherEntry signal, which most Linux docks understand.
type unityBadge struct {
	desktopID string
}

// NewBadgeSetter returns the Linux taskbar badge surface.
func NewBadgeSetter() BadgeSetter {
	return &unityBadge{desktopID: "application://unpod.desktop"}
}

func (b *unityBadge) SetBadge(count uint) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return fmt.Errorf("session bus unavailable: %w", err)
	}
	props := map[string]dbus.Variant{
		"count":         dbus.MakeVariant(int64(count)),
		"count-visible": dbus.MakeVariant(count > 0),
	}
	return conn.Emit(
		"/com/canonical/unity/launcherentry/1",
		"com.canonical.Unity.LauncherEntry.Update",
		b.desktopID, props,
	)
}
