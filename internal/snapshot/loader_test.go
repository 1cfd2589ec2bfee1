package snapshot

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pointYAML = `
version: "1.2"
usings: [System]
types:
  - name: Point
    kind: struct
    namespace: Geometry
    accessibility: public
    markers:
      - name: ParametersOptional
      - name: PickFields
        args: Geometry.Origin
    members:
      - {name: x, kind: field, type: int, readonly: true}
      - {name: Y, kind: property, type: int, readonly: true, auto: true}
    types:
      - name: Inner
        kind: class
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(pointYAML), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "v1.2", f.Version)
	assert.Equal(t, []string{"System"}, f.Usings)
	require.Len(t, f.Types, 1)

	td := f.Types[0]
	assert.Equal(t, "Point", td.Name)
	assert.Equal(t, "struct", td.Kind)
	assert.Equal(t, "Geometry", td.Namespace)

	require.Len(t, td.Markers, 2)
	assert.Empty(t, td.Markers[0].Args)
	assert.Equal(t, StringOrArray{"Geometry.Origin"}, td.Markers[1].Args)

	require.Len(t, td.Members, 2)
	assert.True(t, td.Members[0].ReadOnly)
	assert.True(t, td.Members[1].Auto)

	require.Len(t, td.Types, 1)
	assert.Equal(t, "Inner", td.Types[0].Name)
}

func TestParseMinimal(t *testing.T) {
	f, err := Parse([]byte(`types: []`), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, f.Version)
	assert.Empty(t, f.Types)
}

func TestParseJSON(t *testing.T) {
	f, err := Parse([]byte(`{"types": [{"name": "A", "kind": "class"}]}`), FormatYAML)
	require.NoError(t, err)
	require.Len(t, f.Types, 1)
	assert.Equal(t, "A", f.Types[0].Name)
}

func TestParseVersion(t *testing.T) {
	_, err := Parse([]byte("version: v2.0.0\ntypes: []"), FormatYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported snapshot version")

	_, err = Parse([]byte("version: banana\ntypes: []"), FormatYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid snapshot version")
}

func TestParseStringOrArray(t *testing.T) {
	f, err := Parse([]byte(`
types:
  - name: C
    kind: class
    markers:
      - {name: PickFields, args: [A, B]}
      - {name: PickFields, args: ""}
`), FormatYAML)
	require.NoError(t, err)

	m := f.Types[0].Markers
	assert.Equal(t, StringOrArray{"A", "B"}, m[0].Args)
	assert.Empty(t, m[1].Args)
}

func TestEncodeRoundTripMsgpack(t *testing.T) {
	f, err := Parse([]byte(pointYAML), FormatYAML)
	require.NoError(t, err)

	data, err := Encode(f, FormatMsgpack)
	require.NoError(t, err)

	back, err := Parse(data, FormatMsgpack)
	require.NoError(t, err)
	assert.Equal(t, f, back)
}

func TestFormatFromPath(t *testing.T) {
	for p, want := range map[string]Format{
		"a.yaml": FormatYAML, "a.YML": FormatYAML, "a.json": FormatYAML,
		"a.msgpack": FormatMsgpack, "a.mpk": FormatMsgpack,
	} {
		got, err := FormatFromPath(p)
		require.NoError(t, err, p)
		assert.Equal(t, want, got, p)
	}

	_, err := FormatFromPath("a.txt")
	require.Error(t, err)
}

func TestLoadGlob(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/snap/nested", 0o755))
	require.NoError(t, afero.WriteFile(fsys, "/snap/b.yaml", []byte(pointYAML), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/snap/nested/a.yaml", []byte(`types: [{name: A, kind: class}]`), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/snap/README.md", []byte("ignored"), 0o644))

	f, err := Parse([]byte(pointYAML), FormatYAML)
	require.NoError(t, err)
	mp, err := Encode(f, FormatMsgpack)
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fsys, "/snap/c.msgpack", mp, 0o644))

	prog, err := LoadGlob(fsys, "/snap/**/*", "/snap/b.yaml")
	require.NoError(t, err)
	require.Len(t, prog.Files, 3)

	assert.Equal(t, "/snap/b.yaml", prog.Files[0].Path)
	assert.Equal(t, "/snap/c.msgpack", prog.Files[1].Path)
	assert.Equal(t, "/snap/nested/a.yaml", prog.Files[2].Path)
	assert.Equal(t, "Point", prog.Files[1].Types[0].Name)
}

func TestLoadGlob_NoMatch(t *testing.T) {
	_, err := LoadGlob(afero.NewMemMapFs(), "/nothing/*.yaml")
	require.ErrorIs(t, err, ErrNoFiles)
}

func TestLoadFile_BadYAML(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/bad.yaml", []byte("types: [\n"), 0o644))

	_, err := LoadFile(fsys, "/bad.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/bad.yaml")
}
