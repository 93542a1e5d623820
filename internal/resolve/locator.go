package resolve

import (
	"os"
	"path/filepath"

	"github.com/ferrite-build/dist/internal/platform"
)

// Locator resolves the installed location of a platform package's
// binary. It mirrors module-resolution semantics for a known subpath:
// probe node_modules in the start directory, then in each ancestor.
type Locator struct {
	// Start is the directory the walk begins from. Empty means the
	// current working directory.
	Start string
}

// Locate probes for pkg's binary. It is a read-only check and never
// fails the lifecycle: an unresolvable package yields a not-found
// Result, not an error.
func (l Locator) Locate(pkg platform.Package) Result {
	res := Result{Package: pkg.Name}

	dir := l.Start
	if dir == "" {
		dir = "."
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return res
	}

	for {
		candidate := filepath.Join(dir, "node_modules", pkg.Name, filepath.FromSlash(pkg.BinPath))
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			res.Path = candidate
			return res
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return res
		}
		dir = parent
	}
}
