package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_AddAndMerge(t *testing.T) {
	var d Diagnostics
	d.AddWarning(CodeUnresolvedReference, "type \"Foo\" not found", "App.Config", "PickFields")
	d.AddInfo("note", "nothing selected", "App.Config", "")
	assert.False(t, d.HasErrors())
	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())

	var other Diagnostics
	other.AddError(CodeUnsupportedKind, "marker on enum", "App.Color", "")
	d.Merge(other)

	assert.True(t, d.HasErrors())
	assert.Equal(t, 3, d.Count())
	assert.Equal(t, DiagnosticError, d.All()[0].Severity)
	require.Error(t, d.Error())
	assert.Contains(t, d.Error().Error(), "[App.Color]: [unsupported_declaration_kind] marker on enum")
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{
		Code:        CodeUnresolvedReference,
		Message:     "type \"NetworkSetings\" not found",
		Declaration: "App.Config",
		Member:      "PickFields",
		Suggestions: []string{"App.NetworkSettings"},
	}

	assert.Equal(t,
		"[App.Config] PickFields: [unresolved_reference] type \"NetworkSetings\" not found (did you mean App.NetworkSettings?)",
		d.String())

	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}
