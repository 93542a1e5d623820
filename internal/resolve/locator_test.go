package resolve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ferrite-build/dist/internal/platform"
)

var linuxX64 = platform.Package{
	Name:    "@ferrite-build/cli-linux-x64",
	BinPath: "bin/ferrite",
}

// plantBinary creates the platform package layout under dir and
// returns the binary path.
func plantBinary(t *testing.T, dir string, pkg platform.Package) string {
	t.Helper()
	path := filepath.Join(dir, "node_modules", pkg.Name, filepath.FromSlash(pkg.BinPath))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLocateFound(t *testing.T) {
	dir := t.TempDir()
	want := plantBinary(t, dir, linuxX64)

	res := Locator{Start: dir}.Locate(linuxX64)
	if !res.Found() {
		t.Fatal("Locate should find the planted binary")
	}
	if res.Path != want {
		t.Errorf("Path = %s, want %s", res.Path, want)
	}
	if res.Package != linuxX64.Name {
		t.Errorf("Package = %s, want %s", res.Package, linuxX64.Name)
	}
}

func TestLocateWalksUp(t *testing.T) {
	dir := t.TempDir()
	want := plantBinary(t, dir, linuxX64)

	nested := filepath.Join(dir, "a", "b", "c")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	res := Locator{Start: nested}.Locate(linuxX64)
	if !res.Found() {
		t.Fatal("Locate should find the binary in an ancestor node_modules")
	}
	if res.Path != want {
		t.Errorf("Path = %s, want %s", res.Path, want)
	}
}

func TestLocateNotFound(t *testing.T) {
	res := Locator{Start: t.TempDir()}.Locate(linuxX64)
	if res.Found() {
		t.Errorf("Locate in an empty tree should not resolve, got %s", res.Path)
	}
	if res.Package != linuxX64.Name {
		t.Errorf("not-found result should still carry the package identifier")
	}
}

func TestLocateIgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	// A directory where the binary should be is not a resolution.
	path := filepath.Join(dir, "node_modules", linuxX64.Name, "bin", "ferrite")
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatal(err)
	}

	if res := (Locator{Start: dir}).Locate(linuxX64); res.Found() {
		t.Errorf("Locate resolved a directory as the binary: %s", res.Path)
	}
}
