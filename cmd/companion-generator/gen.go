package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"companion-generator/internal/gen"
)

func newGenCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate companion files from the snapshot",
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

			if err := gen.WriteFiles(a.fs, res.Files, cfg.Output); err != nil {
				return err
			}

			fmt.Fprintf(a.out, "wrote %d file(s) to %s\n", len(res.Files), cfg.Output)

			if res.Diagnostics.HasErrors() {
				return errDiagnostics
			}

			return nil
		},
	}

	addRunFlags(cmd)

	return cmd
}
