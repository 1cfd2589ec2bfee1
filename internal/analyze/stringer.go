package analyze

import (
	"strings"
)

// specialTypes maps the framework names of special types to their keywords.
var specialTypes = map[string]string{
	"System.Object":  "object",
	"System.String":  "string",
	"System.Boolean": "bool",
	"System.Char":    "char",
	"System.SByte":   "sbyte",
	"System.Byte":    "byte",
	"System.Int16":   "short",
	"System.UInt16":  "ushort",
	"System.Int32":   "int",
	"System.UInt32":  "uint",
	"System.Int64":   "long",
	"System.UInt64":  "ulong",
	"System.IntPtr":  "nint",
	"System.UIntPtr": "nuint",
	"System.Single":  "float",
	"System.Double":  "double",
	"System.Decimal": "decimal",
}

// keywords are the special-type keywords themselves.
var keywords = func() map[string]bool {
	m := make(map[string]bool, len(specialTypes)+1)
	for _, kw := range specialTypes {
		m[kw] = true
	}

	m["dynamic"] = true

	return m
}()

// String returns the canonical display form of the expression: special types
// as keywords, declared types fully qualified, external types as written.
func (t *TypeExpr) String() string {
	if t == nil {
		return "<nil>"
	}

	var sb strings.Builder
	t.write(&sb)

	return sb.String()
}

func (t *TypeExpr) write(sb *strings.Builder) {
	switch t.Kind {
	case ExprNamed:
		switch {
		case t.Keyword != "":
			sb.WriteString(t.Keyword)
		case t.Decl != nil:
			sb.WriteString(t.Decl.ID.String())
		default:
			sb.WriteString(t.Name)
		}

		if len(t.Args) > 0 {
			sb.WriteByte('<')

			for i, a := range t.Args {
				if i > 0 {
					sb.WriteString(", ")
				}

				a.write(sb)
			}

			sb.WriteByte('>')
		}

	case ExprArray:
		t.Elem.write(sb)
		sb.WriteByte('[')
		sb.WriteString(strings.Repeat(",", t.Rank-1))
		sb.WriteByte(']')

	case ExprNullable:
		t.Elem.write(sb)
		sb.WriteByte('?')

	case ExprPointer:
		t.Elem.write(sb)
		sb.WriteByte('*')

	case ExprTuple:
		sb.WriteByte('(')

		for i, a := range t.Args {
			if i > 0 {
				sb.WriteString(", ")
			}

			a.write(sb)

			if t.ElemNames[i] != "" {
				sb.WriteByte(' ')
				sb.WriteString(t.ElemNames[i])
			}
		}

		sb.WriteByte(')')
	}
}

// DisplayName returns the nesting path of a declaration, e.g. "Outer.Inner".
func (d *TypeDecl) DisplayName() string {
	return d.ID.Path
}

// String returns the fully qualified name of a declaration.
func (d *TypeDecl) String() string {
	return d.ID.String()
}
