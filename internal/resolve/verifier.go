package resolve

import (
	"fmt"

	"github.com/ferrite-build/dist/internal/platform"
)

// Verifier is the independent installation check. It reports whether
// the platform binary is currently resolvable and never attempts to
// fix anything, so it is safe to run as its own lifecycle hook or as a
// manual diagnostic at any time.
type Verifier struct {
	Locator Locator
}

// Verify resolves the host platform and probes for its binary. The
// only error is platform.ErrUnsupportedPlatform; a merely missing
// binary comes back as a not-found Result.
func (v Verifier) Verify() (Result, error) {
	key := platform.Resolve()
	pkg, err := platform.LookupPackage(key)
	if err != nil {
		return Result{}, err
	}
	return v.Locator.Locate(pkg), nil
}

// Report is the structured form of a verification for -o json/yaml.
type Report struct {
	Platform string `json:"platform" yaml:"platform"`
	Package  string `json:"package" yaml:"package"`
	Found    bool   `json:"found" yaml:"found"`
	Path     string `json:"path,omitempty" yaml:"path,omitempty"`
}

// String renders the report for plain-text output.
func (r Report) String() string {
	if r.Found {
		return fmt.Sprintf("%s: binary resolved at %s", r.Package, r.Path)
	}
	return fmt.Sprintf("%s: binary not resolved (platform %s)", r.Package, r.Platform)
}

// ReportOf converts a resolution result into a Report.
func ReportOf(res Result) Report {
	return Report{
		Platform: platform.Resolve().String(),
		Package:  res.Package,
		Found:    res.Found(),
		Path:     res.Path,
	}
}
