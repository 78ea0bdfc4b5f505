// Package updater checks GitHub releases for a newer version and can
// download and hand off the matching installer artifact.
package updater

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"unpod-desktop/internal/config"
)

// ErrDisabled is returned for every updater operation in development mode.
var ErrDisabled = errors.New("auto-updates disabled in development")

// Release represents a GitHub release
type Release struct {
	TagName string  `json:"tag_name"`
	Body    string  `json:"body"`
	HTMLURL string  `json:"html_url"`
	Assets  []Asset `json:"assets"`
}

// Asset is one downloadable artifact attached to a release.
type Asset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

// Checker queries the release feed. A rate limiter caps how often the tray
// menu can trigger real network checks.
type Checker struct {
	mode      config.Mode
	owner     string
	repo      string
	installID string
	logger    *slog.Logger

	client  *http.Client
	baseURL string
	limiter *rate.Limiter
}

// NewChecker creates an update checker identified by the per-install id.
func NewChecker(mode config.Mode, installID string, logger *slog.Logger) *Checker {
	return &Checker{
		mode:      mode,
		owner:     config.UpdateOwner,
		repo:      config.UpdateRepo,
		installID: installID,
		logger:    logger,
		client:    &http.Client{Timeout: 10 * time.Second},
		baseURL:   "https://api.github.com",
		limiter:   rate.NewLimiter(rate.Every(30*time.Second), 1),
	}
}

// Check queries the latest release and returns a human-readable status.
func (c *Checker) Check() (string, error) {
	if c.mode == config.Development {
		return "", ErrDisabled
	}
	if !c.limiter.Allow() {
		return "Update check already performed recently", nil
	}

	rel, err := c.latest()
	if err != nil {
		return "", err
	}
	if isNewer(rel.TagName, config.Version) {
		return fmt.Sprintf("Update available: %s", rel.TagName), nil
	}
	return "No update available", nil
}

// latest fetches the newest release from the GitHub API.
func (c *Checker) latest() (*Release, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.baseURL, c.owner, c.repo)
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", fmt.Sprintf("Unpod-Updater/%s (%s)", config.Version, c.installID))

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("failed to check update: %d", resp.StatusCode)
	}

	var rel Release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil, err
	}
	return &rel, nil
}

// isNewer reports whether remote is strictly newer than current. Versions
// are compared segment-wise after stripping the 'v' prefix; pre-release
// labels are ignored.
func isNewer(remote, current string) bool {
	return compareVersions(remote, current) > 0
}

func versionBase(v string) string {
	v = strings.TrimPrefix(v, "v")
	if idx := strings.Index(v, "-"); idx != -1 {
		return v[:idx]
	}
	return v
}

// compareVersions returns 1 if a > b, -1 if a < b, 0 if equal.
func compareVersions(a, b string) int {
	aParts := strings.Split(versionBase(a), ".")
	bParts := strings.Split(versionBase(b), ".")

	maxLen := len(aParts)
	if len(bParts) > maxLen {
		maxLen = len(bParts)
	}

	for i := 0; i < maxLen; i++ {
		var aNum, bNum int
		if i < len(aParts) {
			aNum, _ = strconv.Atoi(aParts[i])
		}
		if i < len(bParts) {
			bNum, _ = strconv.Atoi(bParts[i])
		}
		if aNum > bNum {
			return 1
		}
		if aNum < bNum {
			return -1
		}
	}
	return 0
}
