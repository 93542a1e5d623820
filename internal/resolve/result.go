// Package resolve locates the platform binary inside its registry
// package and falls back to an on-demand install when it is missing.
package resolve

// Result is the outcome of a binary resolution attempt. A missing
// binary is an expected condition (optional dependencies are often
// skipped), so it is modeled as data rather than an error.
type Result struct {
	Package string // platform package identifier that was probed
	Path    string // resolved binary path, empty when not found
}

// Found reports whether the binary was resolved.
func (r Result) Found() bool {
	return r.Path != ""
}

// InstallOutcome reports a single fallback install attempt. There is
// exactly one attempt per invocation; callers inspect the outcome
// instead of receiving an error, because a failed fallback must not
// crash the surrounding install lifecycle.
type InstallOutcome struct {
	Result Result
	Reason error // nil when the binary resolved after the attempt
}

// Succeeded reports whether the binary is resolvable after the attempt.
func (o InstallOutcome) Succeeded() bool {
	return o.Reason == nil
}
