package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ferrite-build/dist/internal/manifest"
)

var (
	syncRoot   string
	syncDryRun bool
)

func newSyncVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync-version <version>",
		Short: "Pin every distribution manifest to one version",
		Long: `Sync-version runs at release time. It rewrites the version field of
every generated package manifest beneath the manifests root, along with
any dependency pin referencing a sibling platform package, so the whole
platform matrix ships self-consistent versions.

Each file is edited independently; a manifest that cannot be processed
is reported and skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSyncVersion(args[0])
		},
	}

	cmd.Flags().StringVar(&syncRoot, "root", "npm", "Directory containing the generated manifests")
	cmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Report planned rewrites without writing")
	return cmd
}

func runSyncVersion(version string) error {
	logger := newLogger()

	syncer := manifest.Syncer{
		Family: packageFamily,
		DryRun: syncDryRun,
		Log:    logger,
	}

	reports, err := syncer.Apply(version, syncRoot)
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		return fmt.Errorf("no package manifests found under %s", syncRoot)
	}

	var processed, failed int
	for _, r := range reports {
		if r.Err != nil {
			failed++
			fmt.Printf("skipped %s: %v\n", r.Path, r.Err)
			continue
		}
		processed++
		for _, rw := range r.Rewrites {
			fmt.Printf("%s: %s %s -> %s\n", r.Path, rw.Field, rw.Old, rw.New)
		}
	}

	if syncDryRun {
		fmt.Printf("dry run: %d manifest(s) would be updated, %d skipped\n", processed, failed)
	} else {
		fmt.Printf("updated %d manifest(s), skipped %d\n", processed, failed)
	}

	if processed == 0 {
		return fmt.Errorf("no manifest under %s could be processed", syncRoot)
	}
	return nil
}
