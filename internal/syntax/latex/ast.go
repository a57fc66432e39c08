package latex

import (
	"strings"

	"github.com/texlsp/texlsp/internal/syntax"
)

// Key is a sequence of words, such as a label name or a citation key.
type Key struct{ node *syntax.Node }

// CastKey returns the typed view of n if it is a KEY node.
func CastKey(n *syntax.Node) (Key, bool) {
	if n == nil || n.Kind() != KeyNode {
		return Key{}, false
	}
	return Key{n}, true
}

func (k Key) Syntax() *syntax.Node { return k.node }

// Words returns the word tokens of the key.
func (k Key) Words() []*syntax.Token {
	var words []*syntax.Token
	for token := range k.node.DescendantTokens() {
		if token.Kind() == Word {
			words = append(words, token)
		}
	}
	return words
}

// Text returns the words of the key joined by single spaces.
func (k Key) Text() string {
	words := k.Words()
	parts := make([]string, len(words))
	for i, word := range words {
		parts[i] = word.Text()
	}
	return strings.Join(parts, " ")
}

// Range spans from the first to the last word of the key.
func (k Key) Range() syntax.TextRange {
	return k.node.Range()
}

// CurlyGroupWord is a brace group holding a single key.
type CurlyGroupWord struct{ node *syntax.Node }

func CastCurlyGroupWord(n *syntax.Node) (CurlyGroupWord, bool) {
	if n == nil || n.Kind() != CurlyGroupWordNode {
		return CurlyGroupWord{}, false
	}
	return CurlyGroupWord{n}, true
}

func (g CurlyGroupWord) Syntax() *syntax.Node { return g.node }

func (g CurlyGroupWord) Key() (Key, bool) {
	return CastKey(g.node.FirstChild(KeyNode))
}

// CurlyGroupWordList is a brace group holding comma separated keys.
type CurlyGroupWordList struct{ node *syntax.Node }

func CastCurlyGroupWordList(n *syntax.Node) (CurlyGroupWordList, bool) {
	if n == nil || n.Kind() != CurlyGroupWordListNode {
		return CurlyGroupWordList{}, false
	}
	return CurlyGroupWordList{n}, true
}

func (g CurlyGroupWordList) Syntax() *syntax.Node { return g.node }

func (g CurlyGroupWordList) Keys() []Key {
	var keys []Key
	for child := range g.node.ChildrenOf(KeyNode) {
		keys = append(keys, Key{child})
	}
	return keys
}

// LabelDefinition is \label{name}.
type LabelDefinition struct{ node *syntax.Node }

func CastLabelDefinition(n *syntax.Node) (LabelDefinition, bool) {
	if n == nil || n.Kind() != LabelDefinitionNode {
		return LabelDefinition{}, false
	}
	return LabelDefinition{n}, true
}

func (l LabelDefinition) Syntax() *syntax.Node { return l.node }
func (l LabelDefinition) Name() (CurlyGroupWord, bool) {
	return CastCurlyGroupWord(l.node.FirstChild(CurlyGroupWordNode))
}

// LabelReference is \ref{a,b} and friends.
type LabelReference struct{ node *syntax.Node }

func CastLabelReference(n *syntax.Node) (LabelReference, bool) {
	if n == nil || n.Kind() != LabelReferenceNode {
		return LabelReference{}, false
	}
	return LabelReference{n}, true
}

func (l LabelReference) Syntax() *syntax.Node { return l.node }
func (l LabelReference) NameList() (CurlyGroupWordList, bool) {
	return CastCurlyGroupWordList(l.node.FirstChild(CurlyGroupWordListNode))
}

// LabelReferenceRange is \crefrange{from}{to} and friends.
type LabelReferenceRange struct{ node *syntax.Node }

func CastLabelReferenceRange(n *syntax.Node) (LabelReferenceRange, bool) {
	if n == nil || n.Kind() != LabelReferenceRangeNode {
		return LabelReferenceRange{}, false
	}
	return LabelReferenceRange{n}, true
}

func (l LabelReferenceRange) Syntax() *syntax.Node { return l.node }

func (l LabelReferenceRange) From() (CurlyGroupWord, bool) {
	return l.group(0)
}

func (l LabelReferenceRange) To() (CurlyGroupWord, bool) {
	return l.group(1)
}

func (l LabelReferenceRange) group(index int) (CurlyGroupWord, bool) {
	i := 0
	for child := range l.node.ChildrenOf(CurlyGroupWordNode) {
		if i == index {
			return CurlyGroupWord{child}, true
		}
		i++
	}
	return CurlyGroupWord{}, false
}

// Citation is \cite[pre][post]{keys} and friends.
type Citation struct{ node *syntax.Node }

func CastCitation(n *syntax.Node) (Citation, bool) {
	if n == nil || n.Kind() != CitationNode {
		return Citation{}, false
	}
	return Citation{n}, true
}

func (c Citation) Syntax() *syntax.Node { return c.node }
func (c Citation) KeyList() (CurlyGroupWordList, bool) {
	return CastCurlyGroupWordList(c.node.FirstChild(CurlyGroupWordListNode))
}

// Include is any command that pulls another file into the document:
// \input, \include, \bibliography, \documentclass and friends.
type Include struct{ node *syntax.Node }

func CastInclude(n *syntax.Node) (Include, bool) {
	if n == nil {
		return Include{}, false
	}
	switch n.Kind() {
	case IncludeNode, BibliographyIncludeNode, ClassIncludeNode:
		return Include{n}, true
	}
	return Include{}, false
}

func (i Include) Syntax() *syntax.Node { return i.node }

// Paths returns the file names listed in the include's key list.
func (i Include) Paths() []Key {
	list, ok := CastCurlyGroupWordList(i.node.FirstChild(CurlyGroupWordListNode))
	if !ok {
		return nil
	}
	return list.Keys()
}

// IsLabelCommand reports whether n is a node whose command name token
// introduces a label: a definition, a reference or a range reference.
func IsLabelCommand(n *syntax.Node) bool {
	if n == nil {
		return false
	}
	switch n.Kind() {
	case LabelDefinitionNode, LabelReferenceNode, LabelReferenceRangeNode:
		return true
	}
	return false
}
