package main

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"companion-generator/internal/common"
)

func newInspectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show marked declarations, or dump the bound symbol graph",
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

			if dump, _ := cmd.Flags().GetBool("graph"); dump {
				cs := spew.ConfigState{
					Indent:                  "  ",
					DisablePointerAddresses: true,
					DisableCapacities:       true,
					SortKeys:                true,
					MaxDepth:                4,
				}

				for decl := range res.Graph.Declarations() {
					fmt.Fprintf(a.out, "%s %s", decl.Kind, decl.ID)

					if common.IsMultiple(decl.Files) {
						fmt.Fprintf(a.out, " (partial, %d files)", len(decl.Files))
					}

					fmt.Fprintln(a.out)
					cs.Fdump(a.out, decl.Members)
				}

				return nil
			}

			for _, e := range res.Plan.Entries {
				names := make([]string, 0, len(e.Members))
				for _, m := range e.Members {
					names = append(names, m.Name)
				}

				fmt.Fprintf(a.out, "%s <- %s %s [%s]\n", e.Key, e.Decl.Kind, e.Decl.ID, strings.Join(names, ", "))
			}

			printDiagnostics(a.errOut, res.Diagnostics)

			return nil
		},
	}

	addRunFlags(cmd)
	cmd.Flags().Bool("graph", false, "dump every bound declaration with its members")

	return cmd
}
