package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ferrite-build/dist/internal/platform"
	"github.com/ferrite-build/dist/internal/resolve"
	"github.com/ferrite-build/dist/internal/runner"
)

func newPostinstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "postinstall",
		Short: "Resolve the platform binary, installing its package on demand",
		Long: `Postinstall runs as the registry install hook. It checks that the
platform companion package delivered the ferrite binary, and when it did
not (commonly because optional dependencies were skipped) it runs one
fallback install of that package.

A failed fallback never fails the surrounding install: the binary may
still resolve lazily at runtime.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPostinstall()
		},
	}
}

func runPostinstall() error {
	logger := newLogger()

	key := platform.Resolve()
	pkg, err := platform.LookupPackage(key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ferrite does not ship a prebuilt binary for %s.\n", key)
		fmt.Fprintln(os.Stderr, "Supported platforms: darwin/linux/win32 on x64 or arm64.")
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determine working directory: %w", err)
	}

	locator := resolve.Locator{Start: cwd}
	if res := locator.Locate(pkg); res.Found() {
		logger.Debug().Str("path", res.Path).Msg("platform binary already resolvable")
		return nil
	}

	logger.Debug().Str("agent", resolve.DetectManager()).Msg("registry client detected")

	installer := resolve.Installer{
		Locator: locator,
		Runner:  runner.ExecRunner{},
		Dir:     cwd,
		Log:     logger,
	}

	outcome := installer.EnsureInstalled(pkg)
	if outcome.Succeeded() {
		logger.Info().Str("path", outcome.Result.Path).Msg("platform binary installed")
		return nil
	}

	logger.Warn().Err(outcome.Reason).Msg("fallback install did not produce a usable binary")
	printFallbackGuidance(pkg.Name)
	// Non-fatal: the wrapping package install must still succeed.
	return nil
}

func printFallbackGuidance(pkg string) {
	fmt.Fprintf(os.Stderr, `
ferrite could not install its platform binary automatically. To fix this:

  - install the platform package directly:  npm install %s
  - check that your platform is supported:  ferrite-dist verify
  - avoid skipping optional dependencies (--no-optional / --omit=optional)

ferrite will try to resolve the binary again the next time it runs.
`, pkg)
}
