// Package syntax provides an immutable, lossless concrete syntax tree shared
// by the LaTeX and BibTeX grammars.
//
// Nodes and tokens are created once by a Builder and never change afterwards.
// Every byte of the parsed text belongs to exactly one token, so the text of a
// node is the concatenation of its tokens.
package syntax

import (
	"iter"
	"strings"
)

// Kind tags a node or token. The meaning of a kind is defined by the grammar
// that produced the tree.
type Kind uint16

// TextRange is a half-open byte span [Start, End).
type TextRange struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the range.
func (r TextRange) Len() int {
	return r.End - r.Start
}

// ContainsInclusive reports whether offset lies inside the range or touches
// its end.
func (r TextRange) ContainsInclusive(offset int) bool {
	return offset >= r.Start && offset <= r.End
}

// Element is either a *Node or a *Token.
type Element interface {
	Kind() Kind
	Range() TextRange
	Parent() *Node
	element()
}

// Node is an interior element of the tree.
type Node struct {
	kind     Kind
	rng      TextRange
	parent   *Node
	children []Element
}

// Token is a leaf element carrying literal text.
type Token struct {
	kind   Kind
	rng    TextRange
	text   string
	parent *Node
}

func (*Node) element()  {}
func (*Token) element() {}

func (n *Node) Kind() Kind       { return n.kind }
func (n *Node) Range() TextRange { return n.rng }
func (n *Node) Parent() *Node    { return n.parent }

func (t *Token) Kind() Kind       { return t.kind }
func (t *Token) Range() TextRange { return t.rng }
func (t *Token) Parent() *Node    { return t.parent }
func (t *Token) Text() string     { return t.text }

// ChildrenWithTokens returns the direct children of the node in source order.
// The returned slice must not be modified.
func (n *Node) ChildrenWithTokens() []Element {
	return n.children
}

// Children yields the direct child nodes, skipping tokens.
func (n *Node) Children() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, child := range n.children {
			if node, ok := child.(*Node); ok {
				if !yield(node) {
					return
				}
			}
		}
	}
}

// Descendants yields the node itself followed by every node below it in
// depth-first pre-order. The sequence is lazy; ranging over it again starts
// a fresh walk from n.
func (n *Node) Descendants() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.walk(yield)
	}
}

func (n *Node) walk(yield func(*Node) bool) bool {
	if !yield(n) {
		return false
	}
	for _, child := range n.children {
		if node, ok := child.(*Node); ok {
			if !node.walk(yield) {
				return false
			}
		}
	}
	return true
}

// DescendantTokens yields every token below the node in source order.
func (n *Node) DescendantTokens() iter.Seq[*Token] {
	return func(yield func(*Token) bool) {
		n.walkTokens(yield)
	}
}

func (n *Node) walkTokens(yield func(*Token) bool) bool {
	for _, child := range n.children {
		switch c := child.(type) {
		case *Token:
			if !yield(c) {
				return false
			}
		case *Node:
			if !c.walkTokens(yield) {
				return false
			}
		}
	}
	return true
}

// Text returns the source text covered by the node.
func (n *Node) Text() string {
	var sb strings.Builder
	sb.Grow(n.rng.Len())
	for token := range n.DescendantTokens() {
		sb.WriteString(token.text)
	}
	return sb.String()
}

// FirstChild returns the first child node whose kind is one of kinds.
func (n *Node) FirstChild(kinds ...Kind) *Node {
	for child := range n.Children() {
		if hasKind(child.kind, kinds) {
			return child
		}
	}
	return nil
}

// ChildrenOf yields the child nodes whose kind is one of kinds.
func (n *Node) ChildrenOf(kinds ...Kind) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for child := range n.Children() {
			if hasKind(child.kind, kinds) && !yield(child) {
				return
			}
		}
	}
}

// FirstToken returns the first direct child token whose kind is one of kinds.
func (n *Node) FirstToken(kinds ...Kind) *Token {
	for _, child := range n.children {
		if token, ok := child.(*Token); ok && hasKind(token.kind, kinds) {
			return token
		}
	}
	return nil
}

func hasKind(kind Kind, kinds []Kind) bool {
	if len(kinds) == 0 {
		return true
	}
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}
