package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ferrite-build/dist/internal/config"
	"github.com/ferrite-build/dist/internal/platform"
	"github.com/ferrite-build/dist/internal/release"
	"github.com/ferrite-build/dist/internal/runner"
)

func newDownloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "download",
		Short: "Fetch the latest ferrite release binary into this directory",
		Long: `Download bypasses the package registry entirely: it discovers the
latest tagged release, downloads the asset for this platform into the
current directory with resume support, and marks it executable.

The downloaded artifact is not integrity-checked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDownload()
		},
	}
}

func runDownload() error {
	logger := newLogger()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determine working directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return err
	}

	logger.Debug().Str("host", platform.Describe(context.Background())).Str("repo", cfg.Repo).Msg("starting release download")

	path, err := release.New(cfg, runner.ExecRunner{}, logger).Install(cwd)
	if err != nil {
		printDownloadRemediation(err, cfg)
		return err
	}

	fmt.Printf("Installed %s\n", path)
	fmt.Println("Note: the artifact was not integrity-checked; verify it out of band if your environment requires that.")
	fmt.Printf("\nAdd it to your PATH:\n\n  export PATH=\"%s:$PATH\"\n", filepath.Dir(path))
	return nil
}

// printDownloadRemediation turns the downloader's fatal conditions
// into actionable text before the non-zero exit.
func printDownloadRemediation(err error, cfg config.Config) {
	switch {
	case errors.Is(err, release.ErrVersionDiscovery):
		fmt.Fprintf(os.Stderr, "Could not find the latest release. Verify that %s/%s exists and has published releases.\n", cfg.BaseURL, cfg.Repo)
	case errors.Is(err, release.ErrMissingDownloadTool):
		fmt.Fprintln(os.Stderr, "Install curl or wget, then re-run this command.")
	case errors.Is(err, release.ErrDownloadIncomplete):
		fmt.Fprintln(os.Stderr, "The release asset could not be written. The direct URL above can be fetched manually.")
	case errors.Is(err, platform.ErrUnsupportedPlatform):
		fmt.Fprintf(os.Stderr, "No release artifact is published for %s.\n", platform.Resolve())
	}
}
