// Package main provides the CLI entrypoint for companion-generator.
//
// companion-generator reads program snapshots (declarations, members and
// marker attributes of a C# program), finds types marked for companion
// generation and writes the partial declarations that complete them:
//   - OptionalConstructor: a constructor with one defaulted parameter per
//     immutable member
//   - PickFrom: copies of the instance fields of another type
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// errDiagnostics signals a completed run that reported errors.
var errDiagnostics = errors.New("generation reported errors")

type app struct {
	fs     afero.Fs
	out    io.Writer
	errOut io.Writer
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "companion-generator",
		Short:         "Generate partial companion declarations from marked types",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
				color.NoColor = true
			}
		},
	}

	root.SetOut(a.out)
	root.SetErr(a.errOut)

	root.PersistentFlags().String("config", "", "config file (default "+defaultConfigHint+")")
	root.PersistentFlags().String("log-level", "", "log level (debug|info|warn|error|disabled)")
	root.PersistentFlags().Bool("no-color", false, "disable colored output")

	root.AddCommand(
		newGenCmd(a),
		newCheckCmd(a),
		newInspectCmd(a),
		newWatchCmd(a),
		newConvertCmd(a),
		newVersionCmd(a),
	)

	return root
}

func main() {
	a := &app{fs: afero.NewOsFs(), out: os.Stdout, errOut: os.Stderr}

	if err := newRootCmd(a).Execute(); err != nil {
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		}

		os.Exit(1)
	}
}
