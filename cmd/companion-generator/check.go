package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"companion-generator/internal/gen"
)

var errStale = errors.New("generated files are out of date")

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify that generated files on disk are up to date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cfg, err := a.setup(cmd)
			if err != nil {
				return err
			}

			res, err := a.runOnce(ctx, cfg)
			if err != nil {
				return err
			}

			printDiagnostics(a.errOut, res.Diagnostics)

			stale, err := gen.Stale(a.fs, res.Files, cfg.Output)
			if err != nil {
				return err
			}

			for _, name := range stale {
				fmt.Fprintf(a.out, "stale: %s\n", name)
			}

			switch {
			case len(stale) > 0:
				return fmt.Errorf("%w: %d file(s), run gen", errStale, len(stale))
			case res.Diagnostics.HasErrors():
				return errDiagnostics
			}

			fmt.Fprintf(a.out, "%d file(s) up to date\n", len(res.Files))

			return nil
		},
	}

	addRunFlags(cmd)

	return cmd
}
