package release

import (
	"fmt"

	"github.com/ferrite-build/dist/internal/config"
	"github.com/ferrite-build/dist/internal/platform"
)

// triplets maps platform keys to the arch triplet used in release
// asset names. This table is independent of the registry package
// table: the release pipeline names artifacts by compiler target, not
// by package suffix.
var triplets = map[platform.Key]string{
	{OS: "darwin", Arch: "x64"}:   "x86_64-apple-darwin",
	{OS: "darwin", Arch: "arm64"}: "aarch64-apple-darwin",
	{OS: "linux", Arch: "x64"}:    "x86_64-unknown-linux-gnu",
	{OS: "linux", Arch: "arm64"}:  "aarch64-unknown-linux-gnu",
	{OS: "win32", Arch: "x64"}:    "x86_64-pc-windows-msvc",
	{OS: "win32", Arch: "arm64"}:  "aarch64-pc-windows-msvc",
}

// Asset identifies one downloadable release artifact. Computed fresh
// per invocation, never cached.
type Asset struct {
	Tag      string
	Filename string
	URL      string
}

// AssetFor builds the expected asset name and download URL for a
// platform at a given release tag.
func AssetFor(cfg config.Config, key platform.Key, tag string) (Asset, error) {
	triplet, ok := triplets[key]
	if !ok {
		return Asset{}, fmt.Errorf("%w: no release artifact for %s", platform.ErrUnsupportedPlatform, key)
	}

	filename := cfg.Binary + "-" + triplet
	if key.OS == "win32" {
		filename += ".exe"
	}

	return Asset{
		Tag:      tag,
		Filename: filename,
		URL:      fmt.Sprintf("%s/%s/releases/download/%s/%s", cfg.BaseURL, cfg.Repo, tag, filename),
	}, nil
}
