package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"companion-generator/internal/snapshot"
)

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Re-encode a snapshot file; formats follow the file extensions",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			f, err := snapshot.LoadFile(a.fs, args[0])
			if err != nil {
				return err
			}

			format, err := snapshot.FormatFromPath(args[1])
			if err != nil {
				return err
			}

			data, err := snapshot.Encode(f, format)
			if err != nil {
				return fmt.Errorf("encoding %s: %w", args[1], err)
			}

			if err := afero.WriteFile(a.fs, args[1], data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", args[1], err)
			}

			fmt.Fprintf(a.out, "%s -> %s (%d types)\n", args[0], args[1], len(f.Types))

			return nil
		},
	}
}
