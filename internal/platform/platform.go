// Package platform maps the host OS and CPU architecture to the
// registry package that carries the ferrite binary for that host.
package platform

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrUnsupportedPlatform is returned when the host OS/arch combination
// has no platform package. There is no binary to fall back to.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// Key identifies a host platform using registry naming conventions
// (process.platform / process.arch): darwin, linux, win32; x64, arm64.
type Key struct {
	OS   string
	Arch string
}

// String renders the key the way the registry spells platforms,
// e.g. "linux x64".
func (k Key) String() string {
	return k.OS + " " + k.Arch
}

// Package describes the platform package bundling the compiled binary.
type Package struct {
	Name    string // registry package identifier
	BinPath string // binary subpath inside the package
}

// packages is the single source of truth for which platforms are
// supported. Keys not present here are rejected by LookupPackage.
var packages = map[Key]Package{
	{OS: "darwin", Arch: "x64"}:   {Name: "@ferrite-build/cli-darwin-x64", BinPath: "bin/ferrite"},
	{OS: "darwin", Arch: "arm64"}: {Name: "@ferrite-build/cli-darwin-arm64", BinPath: "bin/ferrite"},
	{OS: "linux", Arch: "x64"}:    {Name: "@ferrite-build/cli-linux-x64", BinPath: "bin/ferrite"},
	{OS: "linux", Arch: "arm64"}:  {Name: "@ferrite-build/cli-linux-arm64", BinPath: "bin/ferrite"},
	{OS: "win32", Arch: "x64"}:    {Name: "@ferrite-build/cli-win32-x64", BinPath: "bin/ferrite.exe"},
	{OS: "win32", Arch: "arm64"}:  {Name: "@ferrite-build/cli-win32-arm64", BinPath: "bin/ferrite.exe"},
}

// Resolve returns the platform key for the current host. It always
// returns a key; unsupported combinations are rejected later by
// LookupPackage.
func Resolve() Key {
	return Key{
		OS:   registryOS(runtime.GOOS),
		Arch: registryArch(runtime.GOARCH),
	}
}

// LookupPackage returns the platform package for key, or
// ErrUnsupportedPlatform when no package exists for it.
func LookupPackage(key Key) (Package, error) {
	pkg, ok := packages[key]
	if !ok {
		return Package{}, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, key)
	}
	return pkg, nil
}

// Supported returns every platform key present in the package table.
func Supported() []Key {
	keys := make([]Key, 0, len(packages))
	for k := range packages {
		keys = append(keys, k)
	}
	return keys
}

// registryOS maps GOOS values to registry platform names.
func registryOS(goos string) string {
	switch goos {
	case "windows":
		return "win32"
	default:
		return goos
	}
}

// registryArch maps GOARCH values to registry CPU names.
func registryArch(goarch string) string {
	switch goarch {
	case "amd64":
		return "x64"
	case "386":
		return "ia32"
	default:
		return goarch
	}
}
