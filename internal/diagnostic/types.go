package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"companion-generator/internal/common"
)

// Diagnostic codes shared across stages.
const (
	CodeUnbindableDeclaration = "unbindable_declaration"
	CodeUnbindableMember      = "unbindable_member"
	CodeUnresolvedReference   = "unresolved_reference"
	CodeMarkerArity           = "marker_arity"
	CodeRepeatedMarker        = "repeated_marker"
	CodeUnsupportedKind       = "unsupported_declaration_kind"
	CodeDuplicateMember       = "duplicate_member"
	CodeDuplicateOutputKey    = "duplicate_output_key"
	CodeEmptySelection        = "empty_selection"
)

// Diagnostics holds all diagnostic information from a run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Declaration is the fully qualified declaration this relates to (if any).
	Declaration string
	// Member identifies which member or marker this relates to (if any).
	Member string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Add appends a diagnostic to the list matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, declaration, member string) {
	d.Add(Diagnostic{
		Severity:    DiagnosticError,
		Code:        code,
		Message:     message,
		Declaration: declaration,
		Member:      member,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, declaration, member string) {
	d.Add(Diagnostic{
		Severity:    DiagnosticWarning,
		Code:        code,
		Message:     message,
		Declaration: declaration,
		Member:      member,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, declaration, member string) {
	d.Add(Diagnostic{
		Severity:    DiagnosticInfo,
		Code:        code,
		Message:     message,
		Declaration: declaration,
		Member:      member,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns every diagnostic, errors first, then warnings, then infos.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	out = append(out, d.Errors...)
	out = append(out, d.Warnings...)

	return append(out, d.Infos...)
}

// Count returns the total number of diagnostics.
func (d *Diagnostics) Count() int {
	return len(d.Errors) + len(d.Warnings) + len(d.Infos)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Declaration != "" {
		prefix = append(prefix, "["+d.Declaration+"]")
	}

	if d.Member != "" {
		prefix = append(prefix, d.Member)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
