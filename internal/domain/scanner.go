// Package domain contains the editor core: catalog scanning, tree mutation,
// and the workflows that drive them.
package domain

import (
	"github.com/mouse-blink/crowbar/internal/domain/syntax"
	"github.com/mouse-blink/crowbar/internal/domain/values"
	"github.com/mouse-blink/crowbar/internal/log"
	m "github.com/mouse-blink/crowbar/internal/model"
)

// initializer is the classification of a declaration's initializer.
type initializer struct {
	span m.Span // editable span
	ref  string // set when the initializer is a bare identifier
}

// constant is a named const/static with a literal initializer.
type constant struct {
	value m.Value
}

// Scan walks tree in document order and returns the catalog of editable
// declarations. Literals that look eligible but fail to decode are returned
// as errors and left out of the catalog.
func Scan(tree *syntax.Tree) ([]m.CatalogEntry, []error) {
	decls := tree.Declarations()
	consts := constants(tree, decls)
	logger := log.Default()

	var (
		entries []m.CatalogEntry
		errs    []error
	)

	for ordinal, n := range decls {
		d := n.Decl
		if d.Init == nil {
			continue
		}

		init, ok := classify(tree, d.Init)
		if !ok {
			continue
		}

		entry := m.CatalogEntry{
			ID:      m.EntryID{Ordinal: ordinal, Name: tree.Text(d.Name)},
			Decl:    d.Kind,
			Mutable: d.Mutable,
			Span:    init.span,
			Line:    tree.Position(init.span.Start).Line,
		}

		if d.Type != nil {
			entry.TypeHint = tree.Text(d.Type)
		}

		if init.ref != "" {
			c, found := consts[init.ref]
			if !found {
				continue
			}

			entry.Value = c.value
			entry.Via = init.ref
		} else {
			text := string(tree.Source[init.span.Start:init.span.End])

			v, err := values.Decode(text)
			if err != nil {
				logger.Warn("skipping undecodable literal", "entry", entry.ID.String(), "line", entry.Line, "error", err)
				errs = append(errs, err)

				continue
			}

			entry.Value = v
		}

		entry.Kind = entry.Value.Kind
		entries = append(entries, entry)
	}

	return entries, errs
}

// constants maps each const and immutable static with a literal initializer
// to its value. The first declaration of a name wins.
func constants(tree *syntax.Tree, decls []*syntax.Node) map[string]constant {
	out := make(map[string]constant)

	for _, n := range decls {
		d := n.Decl
		if d.Init == nil || d.Kind == m.DeclLet || d.Mutable {
			continue
		}

		name := tree.Text(d.Name)
		if _, seen := out[name]; seen {
			continue
		}

		init, ok := classify(tree, d.Init)
		if !ok || init.ref != "" {
			continue
		}

		v, err := values.Decode(string(tree.Source[init.span.Start:init.span.End]))
		if err != nil {
			continue
		}

		out[name] = constant{value: v}
	}

	return out
}

// classify reports whether an initializer is a literal, a negated number,
// a wrapped string literal, or a bare identifier.
func classify(tree *syntax.Tree, init *syntax.Node) (initializer, bool) {
	sig := init.Significant()

	switch len(sig) {
	case 1:
		n := sig[0]
		if !n.IsLeaf() {
			return initializer{}, false
		}

		if n.Token.IsLiteral() {
			return initializer{span: n.Span}, true
		}

		if n.Token == syntax.TokenIdent {
			switch text := tree.Text(n); text {
			case "true", "false":
				return initializer{span: n.Span}, true
			default:
				return initializer{span: n.Span, ref: text}, true
			}
		}
	case 2:
		minus, lit := sig[0], sig[1]
		if isPunct(tree, minus, "-") && lit.IsLeaf() &&
			(lit.Token == syntax.TokenInt || lit.Token == syntax.TokenFloat) &&
			minus.Span.End == lit.Span.Start {
			return initializer{span: m.Span{Start: minus.Span.Start, End: lit.Span.End}}, true
		}
	case 4:
		if span, ok := wrappedString(tree, sig); ok {
			return initializer{span: span}, true
		}
	}

	return initializer{}, false
}

// wrappedString matches String::from("..") and "..".to_string() or
// "..".to_owned(), returning the span of the inner literal.
func wrappedString(tree *syntax.Tree, sig []*syntax.Node) (m.Span, bool) {
	isString := func(n *syntax.Node) bool {
		return n.IsLeaf() && (n.Token == syntax.TokenString || n.Token == syntax.TokenRawString)
	}

	if isWord(tree, sig[0], "String") && isPunct(tree, sig[1], "::") && isWord(tree, sig[2], "from") &&
		isParens(tree, sig[3]) {
		inner := sig[3].Significant()
		if len(inner) == 3 && isString(inner[1]) {
			return inner[1].Span, true
		}
	}

	if isString(sig[0]) && isPunct(tree, sig[1], ".") &&
		(isWord(tree, sig[2], "to_string") || isWord(tree, sig[2], "to_owned")) &&
		isParens(tree, sig[3]) && len(sig[3].Significant()) == 2 {
		return sig[0].Span, true
	}

	return m.Span{}, false
}

func isPunct(tree *syntax.Tree, n *syntax.Node, s string) bool {
	return n.IsLeaf() && n.Token == syntax.TokenPunct && tree.Text(n) == s
}

func isWord(tree *syntax.Tree, n *syntax.Node, s string) bool {
	return n.IsLeaf() && n.Token == syntax.TokenIdent && tree.Text(n) == s
}

func isParens(tree *syntax.Tree, n *syntax.Node) bool {
	return n.Kind == syntax.NodeGroup && tree.Source[n.Span.Start] == '('
}
