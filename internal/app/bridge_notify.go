package app

import "fmt"

// CheckNotificationPermission returns "granted", "denied" or "unknown".
func (a *App) CheckNotificationPermission() string {
	return a.gateway.Query().String()
}

// RequestNotificationPermission asks the OS for notification permission and
// returns true iff the resulting state is granted.
func (a *App) RequestNotificationPermission() bool {
	return a.gateway.Request()
}

// ShowNotification displays a titled alert. The gateway re-requests
// permission on every call and falls back to an icon-less display when the
// application icon cannot be used.
func (a *App) ShowNotification(title, body string) error {
	if err := a.gateway.Show(title, body); err != nil {
		a.logger.Error("Failed to show notification", "title", title, "error", err)
		return err
	}
	return nil
}

// UpdateNotificationBadge sets the unread count, which drives the tray
// tooltip, the window title and the OS badge.
func (a *App) UpdateNotificationBadge(count int) error {
	if count < 0 {
		return fmt.Errorf("badge count must be non-negative, got %d", count)
	}
	a.trayCtl.SetBadge(uint(count))
	return nil
}
