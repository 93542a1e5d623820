package manifest

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

// Syncer bulk-rewrites the version field of every generated
// distribution manifest beneath a root, along with any dependency pin
// that references a sibling platform package. The edit is best-effort:
// a manifest that cannot be parsed or written is reported and skipped,
// never aborting the run.
type Syncer struct {
	// Family is the package-name prefix identifying sibling platform
	// packages whose dependency pins must stay in lockstep.
	Family string

	// DryRun reports planned rewrites without writing any file.
	DryRun bool

	Log zerolog.Logger
}

// Rewrite records one version pin change inside a manifest.
type Rewrite struct {
	Field string // "version" or the dependency name
	Old   string
	New   string
}

// FileReport is the per-manifest outcome of an Apply run.
type FileReport struct {
	Path     string
	Rewrites []Rewrite
	Err      error
}

// Apply walks root for package.json files and pins each one to
// newVersion. Rewrites are textual substitutions on the raw bytes so
// formatting and unrelated fields are preserved exactly. Returns a
// report per discovered manifest; the error covers only the walk
// itself.
func (s Syncer) Apply(newVersion, root string) ([]FileReport, error) {
	var reports []FileReport

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Installed dependency trees are not ours to edit.
			if d.Name() == "node_modules" {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() != "package.json" {
			return nil
		}
		reports = append(reports, s.syncFile(path, newVersion))
		return nil
	})
	if err != nil {
		return reports, fmt.Errorf("walk %s: %w", root, err)
	}
	return reports, nil
}

// syncFile rewrites a single manifest. Failures are captured in the
// report rather than returned.
func (s Syncer) syncFile(path, newVersion string) FileReport {
	report := FileReport{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		report.Err = fmt.Errorf("read: %w", err)
		s.Log.Warn().Err(err).Str("file", path).Msg("skipping manifest")
		return report
	}

	m, err := parse(data, path)
	if err != nil {
		report.Err = err
		s.Log.Warn().Err(err).Str("file", path).Msg("skipping manifest")
		return report
	}

	content := data
	if m.Version != "" && m.Version != newVersion {
		content = replacePin(content, "version", m.Version, newVersion)
		report.Rewrites = append(report.Rewrites, Rewrite{Field: "version", Old: m.Version, New: newVersion})
	}

	for _, deps := range []map[string]string{m.Dependencies, m.OptionalDependencies, m.DevDependencies} {
		for name, old := range deps {
			if !strings.HasPrefix(name, s.Family) || old == newVersion {
				continue
			}
			content = replacePin(content, name, old, newVersion)
			report.Rewrites = append(report.Rewrites, Rewrite{Field: name, Old: old, New: newVersion})
		}
	}

	if len(report.Rewrites) == 0 || s.DryRun {
		return report
	}

	mode := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(path, content, mode); err != nil {
		report.Err = fmt.Errorf("write: %w", err)
		report.Rewrites = nil
		s.Log.Warn().Err(err).Str("file", path).Msg("manifest not updated")
		return report
	}

	s.Log.Debug().Str("file", path).Int("rewrites", len(report.Rewrites)).Msg("manifest updated")
	return report
}

// replacePin swaps the quoted value of a `"key": "old"` pair for the
// new version, keeping the original whitespace around the colon. Only
// the exact old value is matched, so every other byte survives.
func replacePin(content []byte, key, old, next string) []byte {
	pattern := regexp.MustCompile(`("` + regexp.QuoteMeta(key) + `"\s*:\s*)"` + regexp.QuoteMeta(old) + `"`)
	return pattern.ReplaceAll(content, []byte(`${1}"`+next+`"`))
}

func parse(data []byte, path string) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &m, nil
}
