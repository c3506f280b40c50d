package syntax

import (
	"bytes"
	"fmt"

	m "github.com/mouse-blink/crowbar/internal/model"
)

// NodeKind represents the syntactic category of a node.
type NodeKind int

const (
	NodeFile NodeKind = iota
	NodeGroup
	NodeDeclaration
	NodeType
	NodeInitializer
	NodeToken
)

func (k NodeKind) String() string {
	switch k {
	case NodeFile:
		return "file"
	case NodeGroup:
		return "group"
	case NodeDeclaration:
		return "declaration"
	case NodeType:
		return "type"
	case NodeInitializer:
		return "initializer"
	case NodeToken:
		return "token"
	default:
		return "unknown"
	}
}

// Node is a syntax tree node. Nodes never own text: every node is a span
// into the buffer held by its Tree. Leaves are NodeToken nodes.
type Node struct {
	Kind     NodeKind
	Span     m.Span
	Token    TokenKind // set on leaves
	Children []*Node
	Decl     *Decl // set on NodeDeclaration
}

// Decl holds the parts of a binding statement. Name, Type and Init point at
// descendants of the declaration node; Type and Init may be nil.
type Decl struct {
	Kind    m.DeclKind
	Mutable bool
	Name    *Node
	Type    *Node
	Init    *Node
}

// IsLeaf reports whether the node is a token.
func (n *Node) IsLeaf() bool {
	return n.Kind == NodeToken
}

// IsTrivia reports whether the node is a whitespace or comment leaf.
func (n *Node) IsTrivia() bool {
	return n.Kind == NodeToken && n.Token.IsTrivia()
}

// Significant returns the children that are not trivia.
func (n *Node) Significant() []*Node {
	out := make([]*Node, 0, len(n.Children))

	for _, c := range n.Children {
		if !c.IsTrivia() {
			out = append(out, c)
		}
	}

	return out
}

// Tree is a parsed source file. The tree owns its buffer; callers must not
// modify Source after parsing.
type Tree struct {
	Source []byte
	Root   *Node
}

// Text returns the source text covered by n.
func (t *Tree) Text(n *Node) string {
	return string(t.Source[n.Span.Start:n.Span.End])
}

// Position converts a byte offset into a line/column position.
func (t *Tree) Position(offset int) m.Position {
	return m.PositionOf(t.Source, offset)
}

// Walk visits nodes depth first in document order. Returning false from fn
// skips the node's children.
func (t *Tree) Walk(fn func(*Node) bool) {
	walk(t.Root, fn)
}

func walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}

	for _, c := range n.Children {
		walk(c, fn)
	}
}

// Declarations returns every declaration node in document order.
func (t *Tree) Declarations() []*Node {
	var decls []*Node

	t.Walk(func(n *Node) bool {
		if n.Kind == NodeDeclaration {
			decls = append(decls, n)
		}

		return true
	})

	return decls
}

// Bytes serializes the tree by concatenating its leaves.
func (t *Tree) Bytes() []byte {
	var buf bytes.Buffer

	buf.Grow(len(t.Source))

	t.Walk(func(n *Node) bool {
		if n.IsLeaf() {
			buf.Write(t.Source[n.Span.Start:n.Span.End])
		}

		return true
	})

	return buf.Bytes()
}

// Serialize renders tree back to source text.
func Serialize(tree *Tree) []byte {
	return tree.Bytes()
}

// Validate checks the structural invariants: every child lies within its
// parent, siblings are ordered and contiguous, and the root covers the
// whole buffer.
func (t *Tree) Validate() error {
	if t.Root.Span != (m.Span{Start: 0, End: len(t.Source)}) {
		return fmt.Errorf("root span %v does not cover %d bytes", t.Root.Span, len(t.Source))
	}

	return validate(t.Root)
}

func validate(n *Node) error {
	if n.IsLeaf() {
		if len(n.Children) != 0 {
			return fmt.Errorf("leaf at %d has children", n.Span.Start)
		}

		return nil
	}

	pos := n.Span.Start

	for _, c := range n.Children {
		if !n.Span.Contains(c.Span) {
			return fmt.Errorf("%s %v escapes parent %s %v", c.Kind, c.Span, n.Kind, n.Span)
		}

		if c.Span.Start != pos {
			return fmt.Errorf("%s at %d: expected start %d", c.Kind, c.Span.Start, pos)
		}

		if err := validate(c); err != nil {
			return err
		}

		pos = c.Span.End
	}

	if pos != n.Span.End {
		return fmt.Errorf("%s %v: children end at %d", n.Kind, n.Span, pos)
	}

	return nil
}
