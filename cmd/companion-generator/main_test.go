package main

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"companion-generator/internal/config"
	"companion-generator/internal/snapshot"
)

const snapshotYAML = `
usings: [System]
types:
  - name: Point
    kind: struct
    namespace: Geo
    markers: [{name: ParametersOptional}]
    members:
      - {name: x, kind: field, type: Int32, readonly: true}
`

const pointPartial = `// <auto-generated/>
using System;

namespace Geo
{
    partial struct Point
    {
        public Point(int x = default(int))
        {
            this.x = x;
        }
    }
}
`

type harness struct {
	fs     afero.Fs
	out    bytes.Buffer
	errOut bytes.Buffer
}

func newHarness(t *testing.T, files map[string]string) *harness {
	t.Helper()

	h := &harness{fs: afero.NewMemMapFs()}
	for name, body := range files {
		require.NoError(t, afero.WriteFile(h.fs, name, []byte(body), 0o644))
	}

	return h
}

func (h *harness) run(t *testing.T, args ...string) error {
	t.Helper()

	h.out.Reset()
	h.errOut.Reset()

	cmd := newRootCmd(&app{fs: h.fs, out: &h.out, errOut: &h.errOut})
	cmd.SetArgs(append(args, "--no-color"))

	return cmd.ExecuteContext(t.Context())
}

func TestGen(t *testing.T) {
	h := newHarness(t, map[string]string{"/work/snap/geo.yaml": snapshotYAML})

	require.NoError(t, h.run(t, "gen", "-i", "/work/snap/*.yaml", "-o", "/work/out"))
	assert.Contains(t, h.out.String(), "wrote 1 file(s) to /work/out")

	got, err := afero.ReadFile(h.fs, "/work/out/Point_Partial.cs")
	require.NoError(t, err)
	assert.Equal(t, pointPartial, string(got))
}

func TestGen_UsesConfigFile(t *testing.T) {
	h := newHarness(t, map[string]string{
		"/work/snap/geo.yaml": snapshotYAML,
		"/work/cfg.yaml": `
inputs: ["/work/snap/**/*.yaml"]
output: /work/generated
no_header: true
`,
	})

	require.NoError(t, h.run(t, "gen", "--config", "/work/cfg.yaml"))

	got, err := afero.ReadFile(h.fs, "/work/generated/Point_Partial.cs")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(got, []byte("using System;\n\nnamespace Geo\n")), string(got))
}

func TestGen_ErrorsExitNonZero(t *testing.T) {
	h := newHarness(t, map[string]string{"/work/snap/geo.yaml": `
types:
  - {name: Money, kind: record, markers: [{name: ParametersOptional}]}
`})

	err := h.run(t, "gen", "-i", "/work/snap/*.yaml", "-o", "/work/out")
	require.ErrorIs(t, err, errDiagnostics)
	assert.Contains(t, h.errOut.String(), "unsupported_declaration_kind")
	assert.Contains(t, h.errOut.String(), "1 error(s)")
}

func TestGen_NoInputs(t *testing.T) {
	h := newHarness(t, nil)

	err := h.run(t, "gen", "-i", "/work/none/*.yaml")
	require.ErrorIs(t, err, snapshot.ErrNoFiles)
}

func TestCheck(t *testing.T) {
	h := newHarness(t, map[string]string{"/work/snap/geo.yaml": snapshotYAML})
	args := []string{"-i", "/work/snap/*.yaml", "-o", "/work/out"}

	err := h.run(t, append([]string{"check"}, args...)...)
	require.ErrorIs(t, err, errStale)
	assert.Contains(t, h.out.String(), "stale: Point_Partial.cs")

	require.NoError(t, h.run(t, append([]string{"gen"}, args...)...))
	require.NoError(t, h.run(t, append([]string{"check"}, args...)...))
	assert.Contains(t, h.out.String(), "1 file(s) up to date")
}

func TestInspect(t *testing.T) {
	h := newHarness(t, map[string]string{"/work/snap/geo.yaml": snapshotYAML})

	require.NoError(t, h.run(t, "inspect", "-i", "/work/snap/*.yaml"))
	assert.Equal(t, "Point_Partial.cs <- struct Geo.Point [x]\n", h.out.String())

	require.NoError(t, h.run(t, "inspect", "--graph", "-i", "/work/snap/*.yaml"))
	assert.Contains(t, h.out.String(), "struct Geo.Point")
	assert.Contains(t, h.out.String(), `Name: (string) (len=1) "x"`)
}

func TestConvert(t *testing.T) {
	h := newHarness(t, map[string]string{"/work/snap/geo.yaml": snapshotYAML})

	require.NoError(t, h.run(t, "convert", "/work/snap/geo.yaml", "/work/snap/geo.msgpack"))
	assert.Contains(t, h.out.String(), "(1 types)")

	f, err := snapshot.LoadFile(h.fs, "/work/snap/geo.msgpack")
	require.NoError(t, err)
	require.Len(t, f.Types, 1)
	assert.Equal(t, "Point", f.Types[0].Name)

	// The binary snapshot generates the same output as its source.
	require.NoError(t, h.run(t, "gen", "-i", "/work/snap/geo.msgpack", "-o", "/work/out"))

	got, err := afero.ReadFile(h.fs, "/work/out/Point_Partial.cs")
	require.NoError(t, err)
	assert.Equal(t, pointPartial, string(got))
}

func TestVersion(t *testing.T) {
	h := newHarness(t, nil)

	require.NoError(t, h.run(t, "version"))
	assert.Contains(t, h.out.String(), "companion-generator "+version)
	assert.Contains(t, h.out.String(), "snapshot schema "+snapshot.CurrentVersion)
}

func TestSnapshotDirs(t *testing.T) {
	h := newHarness(t, map[string]string{
		"/work/a/one.yaml": snapshotYAML,
		"/work/a/two.yml":  snapshotYAML,
		"/work/b/c/x.json": "{}",
	})

	cfg := config.Default()
	cfg.Inputs = []string{"/work/**/*"}

	dirs, err := (&app{fs: h.fs}).snapshotDirs(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"/work/a", "/work/b/c"}, dirs)
}
