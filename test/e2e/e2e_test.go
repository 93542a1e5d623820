package e2e

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

const binaryName = "ferrite-dist"

var binaryPath string

// TestMain builds the binary before running tests
func TestMain(m *testing.M) {
	cmd := exec.Command("go", "build", "-o", binaryName, "../../cmd/ferrite-dist")
	if err := cmd.Run(); err != nil {
		panic("failed to build binary: " + err.Error())
	}

	binaryPath, _ = filepath.Abs(binaryName)

	code := m.Run()

	os.Remove(binaryName)
	os.Exit(code)
}

// runDist executes the ferrite-dist binary in dir with given arguments
func runDist(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = dir

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestVerifyNotFoundExitsZero(t *testing.T) {
	dir := t.TempDir()

	stdout, stderr, err := runDist(t, dir, "verify")
	if err != nil {
		t.Fatalf("verify must not fail the hook: %v\nstderr: %s", err, stderr)
	}
	if !strings.Contains(stdout, "not resolved") {
		t.Errorf("stdout = %q, want a not-resolved report", stdout)
	}
	if !strings.Contains(stderr, "optional") {
		t.Errorf("stderr = %q, want the optional-dependencies warning", stderr)
	}
}

func TestVerifyJSONOutput(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := runDist(t, dir, "verify", "-o", "json")
	if err != nil {
		t.Fatalf("verify returned error: %v", err)
	}

	var report struct {
		Platform string `json:"platform"`
		Package  string `json:"package"`
		Found    bool   `json:"found"`
	}
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatalf("stdout is not valid JSON: %v\n%s", err, stdout)
	}
	if report.Found {
		t.Error("nothing is installed; report should say not found")
	}
	if report.Package == "" || report.Platform == "" {
		t.Errorf("report should name the package and platform: %+v", report)
	}
}

func TestVerifyFindsPlantedBinary(t *testing.T) {
	dir := t.TempDir()

	// Discover the package this host resolves to, then plant it.
	stdout, _, err := runDist(t, dir, "verify", "-o", "json")
	if err != nil {
		t.Fatalf("verify returned error: %v", err)
	}
	var report struct {
		Package string `json:"package"`
	}
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatal(err)
	}

	bin := "bin/ferrite"
	if strings.Contains(report.Package, "win32") {
		bin = "bin/ferrite.exe"
	}
	writeFile(t, filepath.Join(dir, "node_modules", report.Package, bin), "#!/bin/sh\n")

	stdout, _, err = runDist(t, dir, "verify")
	if err != nil {
		t.Fatalf("verify returned error: %v", err)
	}
	if !strings.Contains(stdout, "resolved at") {
		t.Errorf("stdout = %q, want a resolved report", stdout)
	}
}

func TestSyncVersion(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "npm", "cli-linux-x64", "package.json"), `{
  "name": "@ferrite-build/cli-linux-x64",
  "version": "1.3.9"
}`)
	writeFile(t, filepath.Join(dir, "npm", "core", "package.json"), `{
  "name": "ferrite-cli",
  "version": "1.3.9",
  "optionalDependencies": {
    "@ferrite-build/cli-linux-x64": "1.3.9"
  }
}`)

	stdout, stderr, err := runDist(t, dir, "sync-version", "1.4.0")
	if err != nil {
		t.Fatalf("sync-version returned error: %v\nstderr: %s", err, stderr)
	}
	if !strings.Contains(stdout, "updated 2 manifest(s)") {
		t.Errorf("stdout = %q, want both manifests updated", stdout)
	}

	data, err := os.ReadFile(filepath.Join(dir, "npm", "core", "package.json"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "1.3.9") {
		t.Errorf("old version survived the sync:\n%s", data)
	}
}

func TestSyncVersionDryRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "npm", "package.json")
	original := `{"name": "ferrite-cli", "version": "1.3.9"}`
	writeFile(t, path, original)

	stdout, _, err := runDist(t, dir, "sync-version", "--dry-run", "1.4.0")
	if err != nil {
		t.Fatalf("sync-version returned error: %v", err)
	}
	if !strings.Contains(stdout, "dry run") {
		t.Errorf("stdout = %q, want a dry-run summary", stdout)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != original {
		t.Errorf("dry run modified the manifest: %s", data)
	}
}

func TestSyncVersionMissingRoot(t *testing.T) {
	if _, _, err := runDist(t, t.TempDir(), "sync-version", "1.4.0"); err == nil {
		t.Fatal("sync-version should fail when the manifests root does not exist")
	}
}

func TestSyncVersionRequiresArgument(t *testing.T) {
	if _, _, err := runDist(t, t.TempDir(), "sync-version"); err == nil {
		t.Fatal("sync-version without a version should fail")
	}
}

func TestPostinstallWithPlantedBinary(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := runDist(t, dir, "verify", "-o", "json")
	if err != nil {
		t.Fatalf("verify returned error: %v", err)
	}
	var report struct {
		Package string `json:"package"`
	}
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatal(err)
	}

	bin := "bin/ferrite"
	if strings.Contains(report.Package, "win32") {
		bin = "bin/ferrite.exe"
	}
	writeFile(t, filepath.Join(dir, "node_modules", report.Package, bin), "#!/bin/sh\n")

	// Binary resolvable: postinstall is a silent no-op.
	if _, stderr, err := runDist(t, dir, "postinstall"); err != nil {
		t.Fatalf("postinstall returned error: %v\nstderr: %s", err, stderr)
	}
}

func TestHelp(t *testing.T) {
	stdout, _, err := runDist(t, t.TempDir(), "--help")
	if err != nil {
		t.Fatalf("--help returned error: %v", err)
	}
	for _, sub := range []string{"postinstall", "verify", "download", "sync-version"} {
		if !strings.Contains(stdout, sub) {
			t.Errorf("help output missing subcommand %s", sub)
		}
	}
}
