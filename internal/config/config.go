// Package config loads optional downloader overrides from a
// .ferrite-dist file next to the install target.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds the release-download settings that can be overridden.
type Config struct {
	// Repo is the owner/name slug on the release host.
	Repo string `toml:"repo" yaml:"repo" json:"repo"`
	// BaseURL is the release host root.
	BaseURL string `toml:"base_url" yaml:"base_url" json:"base_url"`
	// Binary is the name the downloaded executable is written as.
	Binary string `toml:"binary" yaml:"binary" json:"binary"`
}

// Default returns the stock ferrite release coordinates.
func Default() Config {
	return Config{
		Repo:    "ferrite-build/ferrite",
		BaseURL: "https://github.com",
		Binary:  "ferrite",
	}
}

// candidates are checked in order; the first existing file wins.
var candidates = []string{
	".ferrite-dist.toml",
	".ferrite-dist.yaml",
	".ferrite-dist.yml",
	".ferrite-dist.json",
	".ferrite-dist",
}

// Load returns the defaults overlaid with the first overrides file
// found in dir. A missing file is not an error; a malformed one is.
func Load(dir string) (Config, error) {
	cfg := Default()

	for _, name := range candidates {
		path := filepath.Join(dir, name)
		content, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return cfg, fmt.Errorf("read %s: %w", path, err)
		}
		if err := decode(path, content, &cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}
	return cfg, nil
}

// Format represents the file format of an overrides file.
type Format int

const (
	FormatUnknown Format = iota
	FormatTOML
	FormatYAML
	FormatJSON
)

func decode(path string, content []byte, cfg *Config) error {
	switch detectFormat(path, content) {
	case FormatTOML:
		if err := toml.Unmarshal(content, cfg); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	case FormatJSON:
		if err := json.Unmarshal(content, cfg); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return fmt.Errorf("parse %s: unrecognized format", path)
	}
	return nil
}

// detectFormat determines the file format from the extension, falling
// back to content sniffing for extensionless files.
func detectFormat(path string, content []byte) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	}
	return sniffFormat(content)
}

// sniffFormat guesses the format from content shape: JSON opens with a
// brace, TOML uses `key = value` or [sections], YAML uses colons.
func sniffFormat(content []byte) Format {
	trimmed := strings.TrimSpace(string(content))

	if strings.HasPrefix(trimmed, "{") {
		return FormatJSON
	}

	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.Contains(line, " = ") || strings.HasPrefix(line, "[") {
			return FormatTOML
		}
		if strings.Contains(line, ":") {
			return FormatYAML
		}
	}
	return FormatUnknown
}
