package gen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"companion-generator/internal/analyze"
	"companion-generator/internal/plan"
	"companion-generator/internal/snapshot"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func planYAML(t *testing.T, src string) *plan.Plan {
	t.Helper()

	f, err := snapshot.Parse([]byte(src), snapshot.FormatYAML)
	require.NoError(t, err)

	graph, diags := analyze.Bind(&snapshot.Program{Files: []*snapshot.File{f}})
	require.False(t, diags.HasErrors())

	p, err := plan.NewResolver(graph, plan.DefaultConfig()).Resolve()
	require.NoError(t, err)

	return p
}

const geoSnapshot = `
usings: [System]
types:
  - name: Outer
    kind: class
    namespace: Geo
    types:
      - name: Point
        kind: struct
        accessibility: public
        markers: [{name: ParametersOptional}]
        members:
          - {name: x, kind: field, type: Int32, readonly: true}
          - {name: y, kind: field, type: int, readonly: true}
          - {name: Label, kind: property, type: "string?", readonly: true, auto: true}
          - {name: cache, kind: field, type: "Dictionary<string, int[]>"}
  - name: Settings
    kind: class
    namespace: Geo
    members:
      - {name: Timeout, kind: field, type: int, accessibility: public, readonly: true}
      - {name: Count, kind: field, type: long, accessibility: public, static: true}
      - {name: scale, kind: field, type: "double[,]", accessibility: private protected}
      - {name: Origin, kind: field, type: Outer.Point, accessibility: protected internal}
  - name: Config
    kind: class
    markers: [{name: PickFields, args: "typeof(Geo.Settings)"}]
`

func TestGenerate_OptionalConstructor(t *testing.T) {
	p := planYAML(t, geoSnapshot)

	files, err := NewGenerator(DefaultGeneratorConfig()).Generate(t.Context(), p)
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "Point_Partial.cs", files[0].Filename)
	assert.Equal(t, `// <auto-generated/>
using System;

namespace Geo
{
    partial class Outer
    {
        partial struct Point
        {
            public Point(int x = default(int), int y = default(int), string? Label = default(string?))
            {
                this.x = x;
                this.y = y;
                this.Label = Label;
            }
        }
    }
}
`, string(files[0].Content))
}

func TestGenerate_PickFields(t *testing.T) {
	p := planYAML(t, geoSnapshot)

	files, err := NewGenerator(DefaultGeneratorConfig()).Generate(t.Context(), p)
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "Config_PickFields.cs", files[1].Filename)
	assert.Equal(t, `// <auto-generated/>
using System;

partial class Config
{
    public readonly int Timeout;
    private protected double[,] scale;
    protected internal Geo.Outer.Point Origin;
}
`, string(files[1].Content))
}

func TestGenerate_EmptySelection(t *testing.T) {
	p := planYAML(t, `
types:
  - {name: Empty, kind: class, namespace: A.B, markers: [{name: ParametersOptional}]}
  - {name: Bare, kind: struct, markers: [{name: PickFields, args: A.B.Empty}], members: [{name: n, kind: field, type: int}]}
`)

	g := NewGenerator(GeneratorConfig{Jobs: 1})

	files, err := g.Generate(t.Context(), p)
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, `namespace A.B
{
    partial class Empty
    {
        public Empty()
        {
        }
    }
}
`, string(files[0].Content))

	assert.Equal(t, `partial struct Bare
{
}
`, string(files[1].Content))
}

func TestGenerate_WrapsWithEnclosingKinds(t *testing.T) {
	p := planYAML(t, `
types:
  - name: Shape
    kind: record
    types:
      - name: Api
        kind: interface
        types:
          - name: Dto
            kind: class
            markers: [{name: ParametersOptional}]
            members: [{name: Id, kind: property, type: Guid, readonly: true, auto: true}]
`)

	files, err := NewGenerator(GeneratorConfig{Header: []string{"// one", "// two"}}).Generate(t.Context(), p)
	require.NoError(t, err)
	require.Len(t, files, 1)

	assert.Equal(t, `// one
// two
partial record Shape
{
    partial interface Api
    {
        partial class Dto
        {
            public Dto(Guid Id = default(Guid))
            {
                this.Id = Id;
            }
        }
    }
}
`, string(files[0].Content))
}

func TestGenerate_ImportsUsingsOfExternalTypes(t *testing.T) {
	p := planYAML(t, `
usings: [System, System.Text, System.Collections.Generic]
types:
  - name: Bag
    kind: class
    namespace: Demo
    markers: [{name: ParametersOptional}]
    members:
      - {name: Items, kind: field, type: "List<int>", readonly: true}
      - {name: Count, kind: field, type: Int32, readonly: true}
`)

	files, err := NewGenerator(DefaultGeneratorConfig()).Generate(t.Context(), p)
	require.NoError(t, err)
	require.Len(t, files, 1)

	assert.Equal(t, `// <auto-generated/>
using System;
using System.Collections.Generic;
using System.Text;

namespace Demo
{
    partial class Bag
    {
        public Bag(List<int> Items = default(List<int>), int Count = default(int))
        {
            this.Items = Items;
            this.Count = Count;
        }
    }
}
`, string(files[0].Content))
}

func TestGenerate_PointerMembersAreUnsafe(t *testing.T) {
	p := planYAML(t, `
types:
  - name: Buffer
    kind: struct
    markers: [{name: ParametersOptional}]
    members:
      - {name: data, kind: field, type: "byte*", readonly: true}
      - {name: length, kind: field, type: int, readonly: true}
  - name: View
    kind: struct
    markers: [{name: PickFields, args: Buffer}]
`)

	files, err := NewGenerator(GeneratorConfig{}).Generate(t.Context(), p)
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, `partial struct Buffer
{
    public unsafe Buffer(byte* data = default(byte*), int length = default(int))
    {
        this.data = data;
        this.length = length;
    }
}
`, string(files[0].Content))

	assert.Equal(t, `partial struct View
{
    private readonly unsafe byte* data;
    private readonly int length;
}
`, string(files[1].Content))
}

func TestUnitUsings(t *testing.T) {
	external, err := analyze.ParseTypeExpr("List<Order>")
	require.NoError(t, err)

	keyword, err := analyze.ParseTypeExpr("int")
	require.NoError(t, err)
	keyword.Keyword = "int"

	tests := []struct {
		name       string
		configured []string
		members    []analyze.Member
		want       []string
	}{
		{"none", nil, nil, nil},
		{"configured only", []string{"System"}, nil, []string{"System"}},
		{
			"keyword types add nothing",
			[]string{"System"},
			[]analyze.Member{{Type: keyword, Usings: []string{"System.Linq"}}},
			[]string{"System"},
		},
		{
			"external types add sorted file usings",
			[]string{"System"},
			[]analyze.Member{
				{Type: external, Usings: []string{"System", "Shop.Orders", "System.Collections.Generic"}},
				{Type: external, Usings: []string{"Shop.Orders", "Acme"}},
			},
			[]string{"System", "Acme", "Shop.Orders", "System.Collections.Generic"},
		},
		{
			"nothing configured",
			nil,
			[]analyze.Member{{Type: external, Usings: []string{"System"}}},
			[]string{"System"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UnitUsings(tt.configured, tt.members))
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	p := planYAML(t, geoSnapshot)

	first, err := NewGenerator(GeneratorConfig{Jobs: 4}).Generate(t.Context(), p)
	require.NoError(t, err)

	for range 5 {
		again, err := NewGenerator(GeneratorConfig{Jobs: 4}).Generate(t.Context(), p)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestGenerate_Cancelled(t *testing.T) {
	p := planYAML(t, geoSnapshot)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	files, err := NewGenerator(DefaultGeneratorConfig()).Generate(ctx, p)
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, files)
}

func TestModifiers(t *testing.T) {
	tests := []struct {
		name   string
		member analyze.Member
		want   []string
	}{
		{"public readonly", analyze.Member{Accessibility: analyze.AccessibilityPublic, IsReadOnly: true}, []string{"public", "readonly"}},
		{"private", analyze.Member{Accessibility: analyze.AccessibilityPrivate}, []string{"private"}},
		{
			"private protected static readonly",
			analyze.Member{Accessibility: analyze.AccessibilityProtectedAndInternal, IsStatic: true, IsReadOnly: true},
			[]string{"private", "protected", "static", "readonly"},
		},
		{"protected internal", analyze.Member{Accessibility: analyze.AccessibilityProtectedOrInternal}, []string{"protected", "internal"}},
		{"no accessibility", analyze.Member{IsStatic: true}, []string{"static"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Modifiers(tt.member))
		})
	}
}

func TestEmit_NoRoot(t *testing.T) {
	_, err := Emit(&Unit{})
	require.Error(t, err)
}

func TestEmit_SeparatesNonFieldMembers(t *testing.T) {
	out, err := Emit(&Unit{Root: &PartialType{
		Kind: analyze.TypeKindClass,
		Name: "C",
		Members: []Decl{
			&Field{Modifiers: []string{"public"}, Type: "int", Name: "a"},
			&Field{Type: "int", Name: "b"},
			&Constructor{Name: "C"},
		},
	}})
	require.NoError(t, err)

	assert.Equal(t, `partial class C
{
    public int a;
    int b;

    public C()
    {
    }
}
`, string(out))
}
