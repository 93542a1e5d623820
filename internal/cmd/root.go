// Package cmd wires the install-resolution entry points into a CLI.
package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ferrite-build/dist/internal/logging"
)

// packageFamily prefixes every sibling platform package name.
const packageFamily = "@ferrite-build/cli-"

var (
	// Global flags
	verbose bool
	quiet   bool
)

func Execute(version, commit, date string) error {
	rootCmd := &cobra.Command{
		Use:   "ferrite-dist",
		Short: "Installation resolution for the ferrite CLI",
		Long: `ferrite-dist acquires the correct ferrite binary for this machine.

It resolves the platform-specific companion package installed by the
registry, installs it on demand when resolution fails, and can fetch a
release artifact directly when the registry is bypassed.`,
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.SetVersionTemplate("ferrite-dist {{.Version}} (commit " + commit + ", built " + date + ")\n")

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose diagnostics")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")

	// Add subcommands
	rootCmd.AddCommand(newPostinstallCmd())
	rootCmd.AddCommand(newVerifyCmd())
	rootCmd.AddCommand(newDownloadCmd())
	rootCmd.AddCommand(newSyncVersionCmd())

	return rootCmd.Execute()
}

// newLogger builds the diagnostic logger from the global flags.
func newLogger() zerolog.Logger {
	return logging.New(verbose, quiet)
}
