// Package bibtex is the typed view of BibTeX documents over the generic
// syntax tree.
package bibtex

import "github.com/texlsp/texlsp/internal/syntax"

// Token kinds.
const (
	Whitespace syntax.Kind = iota
	LineBreak
	JunkText
	Type
	LCurly
	RCurly
	LParen
	RParen
	Comma
	Pound
	Quote
	EqualitySign
	Name
	Integer
	Word
	CommandName

	// Node kinds.
	Root
	Junk
	PreambleNode
	StringDefNode
	EntryNode
	FieldNode
	Literal
	CurlyGroup
	QuoteGroup
	Concat
)

var kindNames = [...]string{
	Whitespace:    "WHITESPACE",
	LineBreak:     "LINE_BREAK",
	JunkText:      "JUNK_TEXT",
	Type:          "TYPE",
	LCurly:        "L_CURLY",
	RCurly:        "R_CURLY",
	LParen:        "L_PAREN",
	RParen:        "R_PAREN",
	Comma:         "COMMA",
	Pound:         "POUND",
	Quote:         "QUOTE",
	EqualitySign:  "EQUALITY_SIGN",
	Name:          "NAME",
	Integer:       "INTEGER",
	Word:          "WORD",
	CommandName:   "COMMAND_NAME",
	Root:          "ROOT",
	Junk:          "JUNK",
	PreambleNode:  "PREAMBLE",
	StringDefNode: "STRING",
	EntryNode:     "ENTRY",
	FieldNode:     "FIELD",
	Literal:       "LITERAL",
	CurlyGroup:    "CURLY_GROUP",
	QuoteGroup:    "QUOTE_GROUP",
	Concat:        "CONCAT",
}

// KindName returns the debug name of a BibTeX kind.
func KindName(kind syntax.Kind) string {
	if int(kind) < len(kindNames) {
		return kindNames[kind]
	}
	return "UNKNOWN"
}

// IsTrivia reports whether the kind carries no meaning for the analysis.
func IsTrivia(kind syntax.Kind) bool {
	return kind == Whitespace || kind == LineBreak
}
