package analyze

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TypeExprKind is the shape of a type expression node.
type TypeExprKind int

const (
	ExprNamed    TypeExprKind = iota // List<int>, App.Order, int
	ExprArray                        // T[], T[,]
	ExprNullable                     // T?
	ExprTuple                        // (int, string name)
	ExprPointer                      // T*
)

// TypeExpr is a parsed member type. Named nodes are bound by the binder:
// Decl points at a declared type, Keyword holds a special-type keyword, and
// neither is set for external types, which keep their written name.
type TypeExpr struct {
	Kind TypeExprKind
	// Name is the dotted name as written (named nodes).
	Name string
	// Args are generic arguments (named) or elements (tuple).
	Args []*TypeExpr
	// ElemNames are tuple element names; empty strings for unnamed elements.
	ElemNames []string
	// Elem is the element of an array, nullable or pointer node.
	Elem *TypeExpr
	// Rank is the array rank (1 for T[]).
	Rank int

	Decl    *TypeDecl
	Keyword string
}

// ParseTypeExpr parses a type expression such as
// "System.Collections.Generic.Dictionary<string, int[]>?".
func ParseTypeExpr(src string) (*TypeExpr, error) {
	p := &typeParser{src: src}
	p.next()

	t, err := p.parseType()
	if err != nil {
		return nil, fmt.Errorf("parse type %q: %w", src, err)
	}

	if p.tok != tokEOF {
		return nil, fmt.Errorf("parse type %q: unexpected %q at offset %d", src, p.text, p.start)
	}

	return t, nil
}

// HasExternal reports whether any named node is bound to neither a declared
// type nor a keyword. Such names only resolve through the usings of the
// file they were written in.
func (t *TypeExpr) HasExternal() bool {
	external := false

	t.Walk(func(n *TypeExpr) {
		if n.Decl == nil && n.Keyword == "" {
			external = true
		}
	})

	return external
}

// HasPointer reports whether the expression contains a pointer type, which
// is only legal in an unsafe context.
func (t *TypeExpr) HasPointer() bool {
	if t == nil {
		return false
	}

	if t.Kind == ExprPointer || t.Elem.HasPointer() {
		return true
	}

	for _, a := range t.Args {
		if a.HasPointer() {
			return true
		}
	}

	return false
}

// Walk calls fn for every named node in pre-order.
func (t *TypeExpr) Walk(fn func(*TypeExpr)) {
	if t == nil {
		return
	}

	if t.Kind == ExprNamed {
		fn(t)
	}

	t.Elem.Walk(fn)

	for _, a := range t.Args {
		a.Walk(fn)
	}
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokPunct
	tokInvalid
)

type typeParser struct {
	src   string
	pos   int
	start int
	tok   tokenKind
	text  string
}

func (p *typeParser) next() {
	for p.pos < len(p.src) {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if !unicode.IsSpace(r) {
			break
		}
		p.pos += size
	}

	p.start = p.pos
	if p.pos >= len(p.src) {
		p.tok, p.text = tokEOF, ""
		return
	}

	c, size := utf8.DecodeRuneInString(p.src[p.pos:])

	switch {
	case c == '@' || c == '_' || unicode.IsLetter(c):
		p.pos += size
		for p.pos < len(p.src) {
			r, n := utf8.DecodeRuneInString(p.src[p.pos:])
			if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				break
			}
			p.pos += n
		}

		p.tok, p.text = tokIdent, p.src[p.start:p.pos]

	case strings.HasPrefix(p.src[p.pos:], "::"):
		p.pos += 2
		p.tok, p.text = tokPunct, "::"

	case strings.ContainsRune(".<>,?[]()*", c):
		p.pos += size
		p.tok, p.text = tokPunct, string(c)

	default:
		p.pos += size
		p.tok, p.text = tokInvalid, string(c)
	}
}

func (p *typeParser) is(punct string) bool {
	return p.tok == tokPunct && p.text == punct
}

func (p *typeParser) expect(punct string) error {
	if !p.is(punct) {
		return p.unexpected(punct)
	}

	p.next()

	return nil
}

func (p *typeParser) unexpected(want string) error {
	if p.tok == tokEOF {
		return fmt.Errorf("expected %s, got end of input", want)
	}

	return fmt.Errorf("expected %s, got %q at offset %d", want, p.text, p.start)
}

func (p *typeParser) parseType() (*TypeExpr, error) {
	var (
		t   *TypeExpr
		err error
	)

	if p.is("(") {
		t, err = p.parseTuple()
	} else {
		t, err = p.parseNamed()
	}

	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.is("?"):
			switch t.Kind {
			case ExprNullable:
				return nil, errors.New("repeated nullable annotation")
			case ExprPointer:
				return nil, errors.New("nullable pointer type")
			case ExprNamed, ExprArray, ExprTuple:
			}

			p.next()

			t = &TypeExpr{Kind: ExprNullable, Elem: t}

		case p.is("["):
			p.next()

			rank := 1
			for p.is(",") {
				rank++
				p.next()
			}

			if err := p.expect("]"); err != nil {
				return nil, err
			}

			t = &TypeExpr{Kind: ExprArray, Elem: t, Rank: rank}

		case p.is("*"):
			p.next()

			t = &TypeExpr{Kind: ExprPointer, Elem: t}

		default:
			return t, nil
		}
	}
}

func (p *typeParser) parseNamed() (*TypeExpr, error) {
	if p.tok != tokIdent {
		return nil, p.unexpected("type name")
	}

	parts := []string{p.text}
	p.next()

	// global::X is the same as X.
	if p.is("::") {
		if parts[0] != "global" {
			return nil, fmt.Errorf("unsupported alias qualifier %q", parts[0])
		}

		p.next()

		if p.tok != tokIdent {
			return nil, p.unexpected("type name")
		}

		parts = []string{p.text}
		p.next()
	}

	for p.is(".") {
		p.next()

		if p.tok != tokIdent {
			return nil, p.unexpected("identifier")
		}

		parts = append(parts, p.text)
		p.next()
	}

	t := &TypeExpr{Kind: ExprNamed, Name: strings.Join(parts, ".")}

	if p.is("<") {
		p.next()

		for {
			arg, err := p.parseType()
			if err != nil {
				return nil, err
			}

			t.Args = append(t.Args, arg)

			if !p.is(",") {
				break
			}

			p.next()
		}

		if err := p.expect(">"); err != nil {
			return nil, err
		}
	}

	return t, nil
}

func (p *typeParser) parseTuple() (*TypeExpr, error) {
	p.next()

	t := &TypeExpr{Kind: ExprTuple}

	for {
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}

		name := ""
		if p.tok == tokIdent {
			name = p.text
			p.next()
		}

		t.Args = append(t.Args, elem)
		t.ElemNames = append(t.ElemNames, name)

		if !p.is(",") {
			break
		}

		p.next()
	}

	if err := p.expect(")"); err != nil {
		return nil, err
	}

	if len(t.Args) < 2 {
		return nil, errors.New("tuple needs at least two elements")
	}

	return t, nil
}
