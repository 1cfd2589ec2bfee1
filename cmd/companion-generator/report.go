package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"companion-generator/internal/diagnostic"
)

var (
	errorColor = color.New(color.FgRed, color.Bold)
	warnColor  = color.New(color.FgYellow, color.Bold)
	infoColor  = color.New(color.FgCyan)
)

func severityColor(s diagnostic.DiagnosticSeverity) *color.Color {
	switch s {
	case diagnostic.DiagnosticError:
		return errorColor
	case diagnostic.DiagnosticWarning:
		return warnColor
	default:
		return infoColor
	}
}

// printDiagnostics writes one line per diagnostic and a summary.
func printDiagnostics(w io.Writer, d diagnostic.Diagnostics) {
	for _, dg := range d.All() {
		fmt.Fprintf(w, "%s %s\n", severityColor(dg.Severity).Sprint(dg.Severity), dg)
	}

	if d.Count() > 0 {
		fmt.Fprintf(w, "%d error(s), %d warning(s), %d info(s)\n",
			len(d.Errors), len(d.Warnings), len(d.Infos))
	}
}
