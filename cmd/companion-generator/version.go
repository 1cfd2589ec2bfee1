package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"companion-generator/internal/snapshot"
)

// version can be overridden at build time via -ldflags.
var version = "0.1.0-dev"

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(a.out, "companion-generator %s\n", color.New(color.FgGreen, color.Bold).Sprint(version))
			fmt.Fprintf(a.out, "snapshot schema %s\n", snapshot.CurrentVersion)
		},
	}
}
