package tray

import _ "embed"

// Tray icon, embedded at build time.
//
//go:embed icon.png
var iconPNG []byte
