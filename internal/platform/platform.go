// Package platform models the closed set of supported operating systems and
// the per-platform layout of a packaged install. Resolution functions are
// pure path mappings so they can be tested without the real OS.
package platform

import (
	"path/filepath"
	"runtime"
)

// Platform is the closed variant of supported OS families.
type Platform int

const (
	Linux Platform = iota
	MacOS
	Windows
)

func (p Platform) String() string {
	switch p {
	case MacOS:
		return "darwin"
	case Windows:
		return "windows"
	default:
		return "linux"
	}
}

// Current resolves the running platform once at startup.
func Current() Platform {
	switch runtime.GOOS {
	case "darwin":
		return MacOS
	case "windows":
		return Windows
	default:
		return Linux
	}
}

// ResourcesDir returns the bundled-resources directory for an install whose
// executable lives at exePath.
//
// Installers place resources differently per packaging convention:
//   - macOS: the exe sits in Unpod.app/Contents/MacOS, resources in
//     Contents/Resources.
//   - Windows: resources are unpacked next to the exe.
//   - Linux: a resources/ directory sits next to the exe.
func ResourcesDir(p Platform, exePath string) string {
	exeDir := filepath.Dir(exePath)
	switch p {
	case MacOS:
		return filepath.Join(filepath.Dir(exeDir), "Resources")
	case Windows:
		return exeDir
	default:
		return filepath.Join(exeDir, "resources")
	}
}

// RuntimeBinary returns the path of the bundled Node.js runtime for an
// install whose executable lives at exePath.
//
//   - macOS: auxiliary binaries are signed into Contents/MacOS next to the exe.
//   - Windows: node.exe is bundled next to the exe.
//   - Linux: the runtime lives inside the resources directory.
func RuntimeBinary(p Platform, exePath string) string {
	exeDir := filepath.Dir(exePath)
	switch p {
	case MacOS:
		return filepath.Join(exeDir, "node")
	case Windows:
		return filepath.Join(exeDir, "node.exe")
	default:
		return filepath.Join(ResourcesDir(p, exePath), "node")
	}
}
