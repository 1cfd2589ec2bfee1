package gen

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"text/template"
)

const indentUnit = "    "

var unitTemplate = template.Must(template.New("unit").Parse(
	`{{range .Header}}{{.}}
{{end}}{{range .Usings}}using {{.}};
{{end}}{{if .Usings}}
{{end}}{{.Body}}`))

type unitData struct {
	Header []string
	Usings []string
	Body   string
}

// Emit prints u. Declarations use four-space indentation with braces on their
// own lines; the output always ends with a newline.
func Emit(u *Unit) ([]byte, error) {
	if u.Root == nil {
		return nil, errors.New("compilation unit has no declaration")
	}

	p := &printer{}
	if err := p.decl(u.Root); err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	err := unitTemplate.Execute(&buf, unitData{
		Header: u.Header,
		Usings: u.Usings,
		Body:   p.sb.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return buf.Bytes(), nil
}

type printer struct {
	sb    strings.Builder
	depth int
}

func (p *printer) line(s string) {
	for range p.depth {
		p.sb.WriteString(indentUnit)
	}

	p.sb.WriteString(s)
	p.sb.WriteByte('\n')
}

func (p *printer) block(head string, body func() error) error {
	p.line(head)
	p.line("{")
	p.depth++

	if err := body(); err != nil {
		return err
	}

	p.depth--
	p.line("}")

	return nil
}

// members prints ds, separating them with a blank line unless both
// neighbours are fields.
func (p *printer) members(ds []Decl) error {
	for i, d := range ds {
		if i > 0 && !(isField(ds[i-1]) && isField(d)) {
			p.sb.WriteByte('\n')
		}

		if err := p.decl(d); err != nil {
			return err
		}
	}

	return nil
}

func (p *printer) decl(d Decl) error {
	switch n := d.(type) {
	case *Namespace:
		return p.block("namespace "+n.Name, func() error { return p.members(n.Members) })

	case *PartialType:
		return p.block("partial "+n.Kind.String()+" "+n.Name, func() error { return p.members(n.Members) })

	case *Constructor:
		params := make([]string, 0, len(n.Params))
		for _, param := range n.Params {
			params = append(params, fmt.Sprintf("%s %s = default(%s)", param.Type, param.Name, param.Type))
		}

		head := "public "
		if n.Unsafe {
			head += "unsafe "
		}

		head += n.Name + "(" + strings.Join(params, ", ") + ")"

		return p.block(head, func() error {
			for _, param := range n.Params {
				p.line("this." + param.Name + " = " + param.Name + ";")
			}

			return nil
		})

	case *Field:
		parts := append(append([]string(nil), n.Modifiers...), n.Type, n.Name)
		p.line(strings.Join(parts, " ") + ";")

		return nil

	default:
		return fmt.Errorf("unexpected declaration node %T", d)
	}
}

func isField(d Decl) bool {
	_, ok := d.(*Field)
	return ok
}
