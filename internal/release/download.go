package release

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/ferrite-build/dist/internal/config"
	"github.com/ferrite-build/dist/internal/platform"
	"github.com/ferrite-build/dist/internal/runner"
)

var (
	// ErrMissingDownloadTool is returned when neither curl nor wget is
	// available to perform the transfer.
	ErrMissingDownloadTool = errors.New("no download tool available (install curl or wget)")

	// ErrDownloadIncomplete is returned when the asset file is absent
	// after the transfer finished.
	ErrDownloadIncomplete = errors.New("download incomplete")
)

// Downloader installs the binary from a release host. It discovers the
// latest tag, maps the host platform to an asset name, and hands the
// transfer to curl or wget so partially fetched files can be resumed
// with range requests.
type Downloader struct {
	Config config.Config
	Runner runner.Runner
	Client *http.Client
	Log    zerolog.Logger
}

// New returns a Downloader with a discovery-scoped HTTP client.
func New(cfg config.Config, r runner.Runner, log zerolog.Logger) *Downloader {
	return &Downloader{
		Config: cfg,
		Runner: r,
		Client: &http.Client{Timeout: DiscoveryTimeout},
		Log:    log,
	}
}

// Install fetches the latest release binary into targetDir and marks
// it executable. It returns the path the binary was written to.
func (d *Downloader) Install(targetDir string) (string, error) {
	d.checkConnectivity()

	tag, err := LatestTag(d.Client, d.Config.BaseURL, d.Config.Repo)
	if err != nil {
		return "", err
	}
	d.Log.Info().Str("tag", tag).Msg("resolved latest release")

	key := platform.Resolve()
	asset, err := AssetFor(d.Config, key, tag)
	if err != nil {
		return "", err
	}

	dest := filepath.Join(targetDir, binaryName(d.Config.Binary, key))
	d.Log.Info().Str("asset", asset.Filename).Str("dest", dest).Msg("downloading release asset")

	if err := d.transfer(asset.URL, dest); err != nil {
		return "", err
	}

	if _, err := os.Stat(dest); err != nil {
		return "", fmt.Errorf("%w: %s was not written; fetch it manually from %s", ErrDownloadIncomplete, dest, asset.URL)
	}

	if key.OS != "win32" {
		if err := os.Chmod(dest, 0755); err != nil {
			return "", fmt.Errorf("mark %s executable: %w", dest, err)
		}
	}
	return dest, nil
}

// transfer runs the asset download through the first available tool,
// resumable first, one full re-download on failure. No integrity
// verification is performed on the fetched artifact.
func (d *Downloader) transfer(url, dest string) error {
	tool, resume, full := d.pickTool(url, dest)
	if tool == "" {
		return ErrMissingDownloadTool
	}

	if err := d.Runner.Run("", tool, resume...); err != nil {
		d.Log.Warn().Err(err).Str("tool", tool).Msg("resumable transfer failed, retrying from scratch")
		if err := d.Runner.Run("", tool, full...); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrDownloadIncomplete, url, err)
		}
	}
	return nil
}

// pickTool selects curl or wget and builds the resume/full argument
// lists for each. An empty tool name means neither is on PATH.
func (d *Downloader) pickTool(url, dest string) (tool string, resume, full []string) {
	if _, err := d.Runner.LookPath("curl"); err == nil {
		return "curl",
			[]string{"-f", "-L", "-C", "-", "-o", dest, url},
			[]string{"-f", "-L", "-o", dest, url}
	}
	if _, err := d.Runner.LookPath("wget"); err == nil {
		return "wget",
			[]string{"-c", "-O", dest, url},
			[]string{"-O", dest, url}
	}
	return "", nil, nil
}

// checkConnectivity probes the release host before committing to the
// download. A failed probe is only worth a warning; the transfer tool
// produces the authoritative error.
func (d *Downloader) checkConnectivity() {
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Head(d.Config.BaseURL)
	if err != nil {
		d.Log.Warn().Err(err).Str("host", d.Config.BaseURL).Msg("release host unreachable")
		return
	}
	resp.Body.Close()
}

// binaryName is the local filename for the installed binary.
func binaryName(name string, key platform.Key) string {
	if key.OS == "win32" {
		return name + ".exe"
	}
	return name
}
