package app

// SessionGetToken returns the stored auth token, or null when absent.
func (a *App) SessionGetToken() (*string, error) {
	token, ok, err := a.store.Token()
	if err != nil {
		a.logger.Error("Failed to read auth token", "error", err)
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &token, nil
}

// SessionSetToken stores the auth token.
func (a *App) SessionSetToken(token string) (bool, error) {
	if err := a.store.SetToken(token); err != nil {
		a.logger.Error("Failed to persist auth token", "error", err)
		return false, err
	}
	return true, nil
}

// SessionDeleteToken removes the auth token.
func (a *App) SessionDeleteToken() (bool, error) {
	if err := a.store.DeleteToken(); err != nil {
		a.logger.Error("Failed to delete auth token", "error", err)
		return false, err
	}
	return true, nil
}

// SessionGet returns the stored value for key, or null when absent.
func (a *App) SessionGet(key string) (*string, error) {
	value, ok, err := a.store.Get(key)
	if err != nil {
		a.logger.Error("Failed to read session value", "key", key, "error", err)
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &value, nil
}

// SessionSet stores key=value.
func (a *App) SessionSet(key, value string) (bool, error) {
	if err := a.store.Set(key, value); err != nil {
		a.logger.Error("Failed to persist session value", "key", key, "error", err)
		return false, err
	}
	return true, nil
}

// SessionDelete removes key.
func (a *App) SessionDelete(key string) (bool, error) {
	if err := a.store.Delete(key); err != nil {
		a.logger.Error("Failed to delete session value", "key", key, "error", err)
		return false, err
	}
	return true, nil
}

// SessionClear removes every stored session value.
func (a *App) SessionClear() (bool, error) {
	if err := a.store.Clear(); err != nil {
		a.logger.Error("Failed to clear session store", "error", err)
		return false, err
	}
	return true, nil
}
