package cursor

import (
	"github.com/texlsp/texlsp/internal/syntax"
	"github.com/texlsp/texlsp/internal/syntax/bibtex"
	"github.com/texlsp/texlsp/internal/syntax/latex"
)

// FindLabelNameWord classifies a word of a label name inside \label, a
// \ref-like command or a range reference.
func (c *Context) FindLabelNameWord() (Key, bool) {
	key, group, ok := c.keyUnderCursor()
	if !ok || !latex.IsLabelCommand(group.Parent()) {
		return Key{}, false
	}
	return keyOf(key), true
}

// FindLabelNameCommand classifies the command name of a label command and
// yields its first label name.
func (c *Context) FindLabelNameCommand() (Key, bool) {
	node := c.commandUnderCursor()
	if def, ok := latex.CastLabelDefinition(node); ok {
		if name, ok := def.Name(); ok {
			return firstKey(name.Key())
		}
	}
	if ref, ok := latex.CastLabelReference(node); ok {
		if list, ok := ref.NameList(); ok {
			return firstKeyOf(list)
		}
	}
	if ref, ok := latex.CastLabelReferenceRange(node); ok {
		if from, ok := ref.From(); ok {
			return firstKey(from.Key())
		}
	}
	return Key{}, false
}

// FindCitationKeyWord classifies a key inside the key list of a citation.
func (c *Context) FindCitationKeyWord() (Key, bool) {
	key, group, ok := c.keyUnderCursor()
	if !ok {
		return Key{}, false
	}
	if _, ok := latex.CastCitation(group.Parent()); !ok {
		return Key{}, false
	}
	return keyOf(key), true
}

// FindCitationKeyCommand classifies the command name of a citation and
// yields its first key.
func (c *Context) FindCitationKeyCommand() (Key, bool) {
	citation, ok := latex.CastCitation(c.commandUnderCursor())
	if !ok {
		return Key{}, false
	}
	list, ok := citation.KeyList()
	if !ok {
		return Key{}, false
	}
	return firstKeyOf(list)
}

// FindEntryKey classifies the key of a bibliography entry.
func (c *Context) FindEntryKey() (Key, bool) {
	token := c.bibName()
	if token == nil {
		return Key{}, false
	}
	if _, ok := bibtex.CastEntry(token.Parent()); !ok {
		return Key{}, false
	}
	return Key{Text: token.Text(), Range: token.Range()}, true
}

// FindStringReference classifies a name that refers to or defines a
// @string abbreviation. The name must sit directly in a field value or be
// the name of the definition itself.
func (c *Context) FindStringReference() (Key, bool) {
	token := c.bibName()
	if token == nil {
		return Key{}, false
	}
	parent := token.Parent()
	if !bibtex.IsValue(parent.Kind()) && parent.Kind() != bibtex.StringDefNode {
		return Key{}, false
	}
	return Key{Text: token.Text(), Range: token.Range()}, true
}

// keyUnderCursor returns the key containing the word under the cursor
// together with the brace group holding the key.
func (c *Context) keyUnderCursor() (latex.Key, *syntax.Node, bool) {
	if c.Token == nil || !c.IsTex() || c.Token.Kind() != latex.Word {
		return latex.Key{}, nil, false
	}
	key, ok := latex.CastKey(c.Token.Parent())
	if !ok {
		return latex.Key{}, nil, false
	}
	group := key.Syntax().Parent()
	if group == nil || group.Parent() == nil {
		return latex.Key{}, nil, false
	}
	return key, group, true
}

func (c *Context) commandUnderCursor() *syntax.Node {
	if c.Token == nil || !c.IsTex() || c.Token.Kind() != latex.CommandName {
		return nil
	}
	return c.Token.Parent()
}

func (c *Context) bibName() *syntax.Token {
	if c.Token == nil || !c.IsBib() || c.Token.Kind() != bibtex.Name {
		return nil
	}
	return c.Token
}

func keyOf(key latex.Key) Key {
	return Key{Text: key.Text(), Range: key.Range()}
}

func firstKey(key latex.Key, ok bool) (Key, bool) {
	if !ok {
		return Key{}, false
	}
	return keyOf(key), true
}

func firstKeyOf(list latex.CurlyGroupWordList) (Key, bool) {
	keys := list.Keys()
	if len(keys) == 0 {
		return Key{}, false
	}
	return keyOf(keys[0]), true
}
