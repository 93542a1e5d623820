package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ferrite-build/dist/internal/output"
	"github.com/ferrite-build/dist/internal/platform"
	"github.com/ferrite-build/dist/internal/resolve"
)

var verifyFormat string

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Report whether the platform binary is resolvable",
		Long: `Verify is a read-only diagnostic. It never installs anything; it only
reports whether the ferrite binary for this platform can currently be
resolved. It is safe to run at any time.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify()
		},
	}

	cmd.Flags().StringVarP(&verifyFormat, "output", "o", "text", "Output format: text, json, yaml")
	return cmd
}

func runVerify() error {
	logger := newLogger()

	format, err := output.ParseFormat(verifyFormat)
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determine working directory: %w", err)
	}

	logger.Debug().Str("host", platform.Describe(context.Background())).Msg("verifying installation")

	verifier := resolve.Verifier{Locator: resolve.Locator{Start: cwd}}
	res, err := verifier.Verify()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ferrite does not ship a prebuilt binary for %s.\n", platform.Resolve())
		return err
	}

	if err := output.Render(os.Stdout, format, resolve.ReportOf(res)); err != nil {
		return err
	}

	if !res.Found() {
		fmt.Fprintf(os.Stderr, `
warning: the ferrite binary is not resolvable right now. Either optional
dependencies were skipped during install, or %s is not available
for this platform. Resolution will be attempted again at runtime.
`, res.Package)
	}
	return nil
}
