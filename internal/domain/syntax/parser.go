package syntax

import (
	m "github.com/mouse-blink/crowbar/internal/model"
)

// reserved words that can never be a binding name in a declaration.
var reserved = map[string]bool{
	"_": true, "as": true, "async": true, "box": true, "const": true, "crate": true,
	"dyn": true, "enum": true, "extern": true, "false": true, "fn": true, "for": true,
	"impl": true, "let": true, "move": true, "mut": true, "ref": true, "self": true,
	"Self": true, "static": true, "struct": true, "super": true, "trait": true,
	"true": true, "type": true, "unsafe": true, "use": true, "where": true,
}

var closers = map[byte]byte{'(': ')', '[': ']', '{': '}'}

// parser groups tokens by delimiter and recognizes binding statements
// inside every group.
type parser struct {
	src    []byte
	tokens []Token
	pos    int
}

// Parse builds a lossless syntax tree for src. Parsing is pure: src is not
// modified and may be reused by the caller, but the returned tree aliases it.
func Parse(src []byte) (*Tree, error) {
	tokens, err := Lex(src)
	if err != nil {
		return nil, err
	}

	p := &parser{src: src, tokens: tokens}

	items, _, err := p.items(nil)
	if err != nil {
		return nil, err
	}

	items, err = p.declarations(items)
	if err != nil {
		return nil, err
	}

	root := &Node{
		Kind:     NodeFile,
		Span:     m.Span{Start: 0, End: len(src)},
		Children: items,
	}

	return &Tree{Source: src, Root: root}, nil
}

func (p *parser) text(n *Node) string {
	return string(p.src[n.Span.Start:n.Span.End])
}

func leaf(tok Token) *Node {
	return &Node{Kind: NodeToken, Span: tok.Span, Token: tok.Kind}
}

// items collects leaves and nested groups until the closer matching open,
// or until the end of input when open is nil.
func (p *parser) items(open *Token) ([]*Node, *Node, error) {
	var items []*Node

	for p.pos < len(p.tokens) {
		tok := p.tokens[p.pos]

		switch tok.Kind {
		case TokenOpen:
			p.pos++

			g, err := p.group(tok)
			if err != nil {
				return nil, nil, err
			}

			items = append(items, g)
		case TokenClose:
			c := p.src[tok.Span.Start]
			if open == nil {
				return nil, nil, newParseError(p.src, tok.Span.Start, CategoryUnbalanced, "unexpected %q", c)
			}

			o := p.src[open.Span.Start]
			if closers[o] != c {
				return nil, nil, newParseError(p.src, tok.Span.Start, CategoryUnbalanced,
					"mismatched %q, expected %q to close %q at offset %d", c, closers[o], o, open.Span.Start)
			}

			p.pos++

			return items, leaf(tok), nil
		default:
			items = append(items, leaf(tok))
			p.pos++
		}
	}

	if open != nil {
		return nil, nil, newParseError(p.src, open.Span.Start, CategoryUnbalanced,
			"unclosed %q", p.src[open.Span.Start])
	}

	return items, nil, nil
}

func (p *parser) group(open Token) (*Node, error) {
	items, closeLeaf, err := p.items(&open)
	if err != nil {
		return nil, err
	}

	items, err = p.declarations(items)
	if err != nil {
		return nil, err
	}

	children := make([]*Node, 0, len(items)+2)
	children = append(children, leaf(open))
	children = append(children, items...)
	children = append(children, closeLeaf)

	return &Node{
		Kind:     NodeGroup,
		Span:     m.Span{Start: open.Span.Start, End: closeLeaf.Span.End},
		Children: children,
	}, nil
}

// declarations folds binding statements in one group level into
// NodeDeclaration nodes.
func (p *parser) declarations(items []*Node) ([]*Node, error) {
	out := make([]*Node, 0, len(items))

	for i := 0; i < len(items); {
		it := items[i]

		if it.IsLeaf() && it.Token == TokenIdent && p.atStatementStart(out) {
			var (
				decl *Node
				rest []*Node
				end  int
				err  error
			)

			switch p.text(it) {
			case "let":
				decl, rest, end, err = p.let(items, i)
			case "const":
				decl, rest, end, err = p.item(items, i, m.DeclConst)
			case "static":
				decl, rest, end, err = p.item(items, i, m.DeclStatic)
			}

			if err != nil {
				return nil, err
			}

			if decl != nil {
				out = append(out, decl)
				items = rest
				i = end

				continue
			}
		}

		out = append(out, it)
		i++
	}

	return out, nil
}

// atStatementStart reports whether the next item begins a statement or item,
// judging by the last significant node already emitted.
func (p *parser) atStatementStart(out []*Node) bool {
	last, prev := lastSignificant(out)
	if last == nil {
		return true
	}

	switch last.Kind {
	case NodeDeclaration:
		return true
	case NodeGroup:
		switch p.src[last.Span.Start] {
		case '{', '[':
			return true
		case '(':
			// pub(crate)
			return prev != nil && prev.IsLeaf() && p.text(prev) == "pub"
		}

		return false
	case NodeToken:
		switch p.text(last) {
		case ";", "pub":
			return true
		}
	}

	return false
}

func lastSignificant(out []*Node) (*Node, *Node) {
	var found []*Node

	for i := len(out) - 1; i >= 0 && len(found) < 2; i-- {
		if !out[i].IsTrivia() {
			found = append(found, out[i])
		}
	}

	switch len(found) {
	case 0:
		return nil, nil
	case 1:
		return found[0], nil
	default:
		return found[0], found[1]
	}
}

// skip returns the index of the first non-trivia item at or after i.
func skip(items []*Node, i int) int {
	for i < len(items) && items[i].IsTrivia() {
		i++
	}

	return i
}

// trimEnd returns the index just past the last non-trivia item before end.
func trimEnd(items []*Node, start, end int) int {
	for end > start && items[end-1].IsTrivia() {
		end--
	}

	return end
}

func (p *parser) isPunct(n *Node, s string) bool {
	return n.IsLeaf() && n.Token == TokenPunct && p.text(n) == s
}

func (p *parser) isWord(n *Node, s string) bool {
	return n.IsLeaf() && n.Token == TokenIdent && p.text(n) == s
}

func (p *parser) isBindingName(n *Node) bool {
	return n.IsLeaf() && n.Token == TokenIdent && !reserved[p.text(n)]
}

// endOf returns the offset just past the last item, used to locate
// "expected ..." errors at the end of a group.
func endOf(items []*Node) int {
	if len(items) == 0 {
		return 0
	}

	return items[len(items)-1].Span.End
}

// let matches `let [mut] NAME [: TYPE] [= INIT];`. Patterns other than a
// plain name are left alone.
func (p *parser) let(items []*Node, start int) (*Node, []*Node, int, error) {
	d := &Decl{Kind: m.DeclLet}

	j := skip(items, start+1)
	if j < len(items) && p.isWord(items[j], "mut") {
		d.Mutable = true
		j = skip(items, j+1)
	}

	if j >= len(items) || !p.isBindingName(items[j]) {
		return nil, nil, 0, nil
	}

	d.Name = items[j]

	k := skip(items, j+1)
	if k >= len(items) {
		return nil, nil, 0, newParseError(p.src, endOf(items), CategoryUnexpected, "expected ';' after let binding")
	}

	switch {
	case p.isPunct(items[k], ":"), p.isPunct(items[k], "="), p.isPunct(items[k], ";"):
	default:
		return nil, nil, 0, nil
	}

	return p.finish(items, start, k, d)
}

// item matches `const NAME: TYPE = INIT;` and `static [mut] NAME: TYPE = INIT;`.
func (p *parser) item(items []*Node, start int, kind m.DeclKind) (*Node, []*Node, int, error) {
	d := &Decl{Kind: kind}

	j := skip(items, start+1)
	if kind == m.DeclStatic && j < len(items) && p.isWord(items[j], "mut") {
		d.Mutable = true
		j = skip(items, j+1)
	}

	if j >= len(items) || !p.isBindingName(items[j]) {
		return nil, nil, 0, nil
	}

	d.Name = items[j]

	k := skip(items, j+1)
	if k >= len(items) || !p.isPunct(items[k], ":") {
		return nil, nil, 0, nil
	}

	return p.finish(items, start, k, d)
}

// finish parses the optional type and initializer starting at items[k],
// which is one of ':', '=' or ';', and builds the declaration node. It
// returns the items slice, which may have been rewritten by typeEnd, and the
// index just past the terminating ';'.
func (p *parser) finish(items []*Node, start, k int, d *Decl) (*Node, []*Node, int, error) {
	var children []*Node

	from := start

	if p.isPunct(items[k], ":") {
		tStart := skip(items, k+1)

		var term int

		items, term = p.typeEnd(items, tStart)
		if term < 0 {
			if d.Kind == m.DeclLet {
				return nil, nil, 0, newParseError(p.src, endOf(items), CategoryUnexpected, "expected '=' or ';' after type")
			}

			return nil, nil, 0, nil
		}

		tEnd := trimEnd(items, tStart, term)
		if tEnd == tStart {
			return nil, nil, 0, newParseError(p.src, items[term].Span.Start, CategoryUnexpected, "expected type")
		}

		d.Type = wrap(NodeType, items[tStart:tEnd])
		children = append(children, items[from:tStart]...)
		children = append(children, d.Type)
		from = tEnd
		k = term
	}

	if p.isPunct(items[k], "=") {
		iStart := skip(items, k+1)

		semi := -1

		for i := iStart; i < len(items); i++ {
			if p.isPunct(items[i], ";") {
				semi = i

				break
			}
		}

		if semi < 0 {
			return nil, nil, 0, newParseError(p.src, endOf(items), CategoryUnexpected,
				"expected ';' after %s binding", d.Kind)
		}

		iEnd := trimEnd(items, iStart, semi)
		if iEnd == iStart {
			return nil, nil, 0, newParseError(p.src, items[semi].Span.Start, CategoryUnexpected, "expected expression after '='")
		}

		d.Init = wrap(NodeInitializer, items[iStart:iEnd])
		children = append(children, items[from:iStart]...)
		children = append(children, d.Init)
		from = iEnd
		k = semi
	}

	if !p.isPunct(items[k], ";") {
		return nil, nil, 0, newParseError(p.src, items[k].Span.Start, CategoryUnexpected,
			"unexpected %q in %s binding", p.text(items[k]), d.Kind)
	}

	children = append(children, items[from:k+1]...)

	node := &Node{
		Kind:     NodeDeclaration,
		Span:     m.Span{Start: items[start].Span.Start, End: items[k].Span.End},
		Children: children,
		Decl:     d,
	}

	return node, items, k + 1, nil
}

// typeEnd finds the '=' or ';' that ends a type starting at items[start],
// tracking angle brackets so that `Iterator<Item = u8>` stays whole. A `>=`
// or `>>=` that closes the type is split into separate leaves. It returns
// the possibly rewritten items and the terminator index, or -1.
func (p *parser) typeEnd(items []*Node, start int) ([]*Node, int) {
	depth := 0

	for i := start; i < len(items); i++ {
		it := items[i]
		if !it.IsLeaf() || it.Token != TokenPunct {
			continue
		}

		switch s := p.text(it); s {
		case "<":
			depth++
		case "<<":
			depth += 2
		case ">":
			depth--
		case ">>":
			depth -= 2
		case ";":
			return items, i
		case "=":
			if depth <= 0 {
				return items, i
			}
		case ">=", ">>=":
			closes := len(s) - 1
			if depth == closes {
				return splitLeaf(items, i, closes), i + 1
			}

			depth -= closes
		}

		if depth < 0 {
			return items, -1
		}
	}

	return items, -1
}

// splitLeaf replaces items[i] with two punctuation leaves split at offset at.
func splitLeaf(items []*Node, i, at int) []*Node {
	n := items[i]
	mid := n.Span.Start + at

	left := &Node{Kind: NodeToken, Token: TokenPunct, Span: m.Span{Start: n.Span.Start, End: mid}}
	right := &Node{Kind: NodeToken, Token: TokenPunct, Span: m.Span{Start: mid, End: n.Span.End}}

	out := make([]*Node, 0, len(items)+1)
	out = append(out, items[:i]...)
	out = append(out, left, right)
	out = append(out, items[i+1:]...)

	return out
}

func wrap(kind NodeKind, children []*Node) *Node {
	cs := make([]*Node, len(children))
	copy(cs, children)

	return &Node{
		Kind:     kind,
		Span:     m.Span{Start: cs[0].Span.Start, End: cs[len(cs)-1].Span.End},
		Children: cs,
	}
}
