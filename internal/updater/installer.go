package updater

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"unpod-desktop/internal/config"
	"unpod-desktop/internal/platform"
)

// DownloadAndInstall fetches the installer asset matching the running
// platform and hands it to the OS opener; the installer takes over from
// there. Artifact integrity is the installer pipeline's concern, not ours.
func (c *Checker) DownloadAndInstall() error {
	if c.mode == config.Development {
		return ErrDisabled
	}

	rel, err := c.latest()
	if err != nil {
		return err
	}
	if !isNewer(rel.TagName, config.Version) {
		c.logger.Info("No update to install", "current", config.Version)
		return nil
	}

	asset := pickAsset(rel.Assets, platform.Current())
	if asset == nil {
		return fmt.Errorf("release %s has no installer for %s", rel.TagName, platform.Current())
	}

	c.logger.Info("Downloading update", "version", rel.TagName, "asset", asset.Name)
	path, err := c.download(asset)
	if err != nil {
		return fmt.Errorf("failed to download update: %w", err)
	}

	c.logger.Info("Launching installer", "path", path)
	return openInstaller(path)
}

// pickAsset chooses the first asset whose extension matches the platform's
// installer convention.
func pickAsset(assets []Asset, p platform.Platform) *Asset {
	var exts []string
	switch p {
	case platform.MacOS:
		exts = []string{".dmg", ".pkg"}
	case platform.Windows:
		exts = []string{".exe", ".msi"}
	default:
		exts = []string{".AppImage", ".deb"}
	}
	for _, ext := range exts {
		for i := range assets {
			if strings.HasSuffix(assets[i].Name, ext) {
				return &assets[i]
			}
		}
	}
	return nil
}

// download streams the asset into the temp directory and returns its path.
func (c *Checker) download(a *Asset) (string, error) {
	resp, err := c.client.Get(a.BrowserDownloadURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return "", fmt.Errorf("asset download returned %d", resp.StatusCode)
	}

	path := filepath.Join(os.TempDir(), a.Name)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

// openInstaller opens the artifact with the platform's default handler.
func openInstaller(path string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	case "darwin":
		cmd = exec.Command("open", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	default:
		return fmt.Errorf("unsupported platform")
	}

	return cmd.Start()
}
