package resolve

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/ferrite-build/dist/internal/manifest"
	"github.com/ferrite-build/dist/internal/platform"
	"github.com/ferrite-build/dist/internal/runner"
)

// ErrFallbackInstall tags a fallback install attempt that did not
// leave the binary resolvable. It is a reportable condition, not a
// fatal one: the wrapping package install still succeeds.
var ErrFallbackInstall = errors.New("fallback install failed")

// Installer performs the one-shot fallback install of a missing
// platform package: look up the declared pin, shell out to the
// registry client, and re-resolve. No retries, no backoff.
type Installer struct {
	Locator Locator
	Runner  runner.Runner

	// Dir scopes the registry install. Empty means the current
	// working directory.
	Dir string

	// ManifestPath points at the invoking package's own package.json,
	// where the platform package's version pin is declared. Empty
	// means Dir/package.json.
	ManifestPath string

	Log zerolog.Logger
}

// EnsureInstalled installs pkg on demand and re-resolves its binary.
// Calling it when the binary is already resolvable is a no-op.
func (i Installer) EnsureInstalled(pkg platform.Package) InstallOutcome {
	if res := i.Locator.Locate(pkg); res.Found() {
		return InstallOutcome{Result: res}
	}

	version := i.declaredVersion(pkg.Name)
	spec := pkg.Name + "@" + version

	i.Log.Info().
		Str("package", spec).
		Str("manager", DetectManager()).
		Msg("platform binary missing, installing companion package")

	if err := i.Runner.Run(i.Dir, "npm", "install", spec); err != nil {
		return InstallOutcome{
			Result: Result{Package: pkg.Name},
			Reason: fmt.Errorf("%w: npm install %s: %v", ErrFallbackInstall, spec, err),
		}
	}

	res := i.Locator.Locate(pkg)
	if !res.Found() {
		return InstallOutcome{
			Result: res,
			Reason: fmt.Errorf("%w: %s installed but binary still unresolvable", ErrFallbackInstall, spec),
		}
	}
	return InstallOutcome{Result: res}
}

// declaredVersion reads the pin for pkg from the invoking package's
// optional-dependency declarations, falling back to "latest" when the
// manifest is missing or does not declare it.
func (i Installer) declaredVersion(pkg string) string {
	path := i.ManifestPath
	if path == "" {
		path = filepath.Join(i.Dir, "package.json")
	}

	m, err := manifest.Load(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			i.Log.Debug().Err(err).Str("file", path).Msg("could not read own manifest")
		}
		return "latest"
	}
	if v := m.DeclaredVersion(pkg); v != "" {
		return v
	}
	return "latest"
}
