package bibtex

import "github.com/texlsp/texlsp/internal/syntax"

// Entry is a bibliography entry such as @article{key, ...}.
type Entry struct{ node *syntax.Node }

func CastEntry(n *syntax.Node) (Entry, bool) {
	if n == nil || n.Kind() != EntryNode {
		return Entry{}, false
	}
	return Entry{n}, true
}

func (e Entry) Syntax() *syntax.Node { return e.node }

// NameToken returns the citation key of the entry, or nil if it has none.
func (e Entry) NameToken() *syntax.Token { return e.node.FirstToken(Name) }

// StringDef is an abbreviation such as @string{jan = "January"}.
type StringDef struct{ node *syntax.Node }

func CastStringDef(n *syntax.Node) (StringDef, bool) {
	if n == nil || n.Kind() != StringDefNode {
		return StringDef{}, false
	}
	return StringDef{n}, true
}

func (s StringDef) Syntax() *syntax.Node     { return s.node }
func (s StringDef) NameToken() *syntax.Token { return s.node.FirstToken(Name) }
func (s StringDef) Value() (Value, bool)     { return firstValue(s.node) }

// Value is the right-hand side of a field or string definition: a literal,
// a braced or quoted group, or a concatenation of those.
type Value struct{ node *syntax.Node }

// IsValue reports whether kind is one of the value node kinds.
func IsValue(kind syntax.Kind) bool {
	switch kind {
	case Literal, CurlyGroup, QuoteGroup, Concat:
		return true
	}
	return false
}

func CastValue(n *syntax.Node) (Value, bool) {
	if n == nil || !IsValue(n.Kind()) {
		return Value{}, false
	}
	return Value{n}, true
}

func (v Value) Syntax() *syntax.Node { return v.node }
func (v Value) Kind() syntax.Kind    { return v.node.Kind() }

// Terms returns the operands of a concatenation, or the value itself.
func (v Value) Terms() []Value {
	if v.node.Kind() != Concat {
		return []Value{v}
	}
	var terms []Value
	for child := range v.node.Children() {
		if term, ok := CastValue(child); ok {
			terms = append(terms, term)
		}
	}
	return terms
}

// Literal returns the single NAME or INTEGER token of a literal value.
func (v Value) Literal() *syntax.Token {
	if v.node.Kind() != Literal {
		return nil
	}
	return v.node.FirstToken(Name, Integer)
}

func firstValue(n *syntax.Node) (Value, bool) {
	for child := range n.Children() {
		if value, ok := CastValue(child); ok {
			return value, true
		}
	}
	return Value{}, false
}
