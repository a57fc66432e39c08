// Package latex is the typed view of LaTeX documents over the generic syntax
// tree.
package latex

import "github.com/texlsp/texlsp/internal/syntax"

// Token kinds.
const (
	Whitespace syntax.Kind = iota
	LineBreak
	Comment
	CommandName
	Word
	LCurly
	RCurly
	LBrack
	RBrack
	LParen
	RParen
	Comma
	EqualitySign
	VerbatimText

	// Node kinds.
	Root
	Text
	CurlyGroup
	BrackGroup
	GenericCommandNode
	CurlyGroupWordNode
	CurlyGroupWordListNode
	KeyNode
	LabelDefinitionNode
	LabelReferenceNode
	LabelReferenceRangeNode
	CitationNode
	IncludeNode
	BibliographyIncludeNode
	ClassIncludeNode
	VerbatimEnvironmentNode
)

var kindNames = [...]string{
	Whitespace:              "WHITESPACE",
	LineBreak:               "LINE_BREAK",
	Comment:                 "COMMENT",
	CommandName:             "COMMAND_NAME",
	Word:                    "WORD",
	LCurly:                  "L_CURLY",
	RCurly:                  "R_CURLY",
	LBrack:                  "L_BRACK",
	RBrack:                  "R_BRACK",
	LParen:                  "L_PAREN",
	RParen:                  "R_PAREN",
	Comma:                   "COMMA",
	EqualitySign:            "EQUALITY_SIGN",
	VerbatimText:            "VERBATIM",
	Root:                    "ROOT",
	Text:                    "TEXT",
	CurlyGroup:              "CURLY_GROUP",
	BrackGroup:              "BRACK_GROUP",
	GenericCommandNode:      "GENERIC_COMMAND",
	CurlyGroupWordNode:      "CURLY_GROUP_WORD",
	CurlyGroupWordListNode:  "CURLY_GROUP_WORD_LIST",
	KeyNode:                 "KEY",
	LabelDefinitionNode:     "LABEL_DEFINITION",
	LabelReferenceNode:      "LABEL_REFERENCE",
	LabelReferenceRangeNode: "LABEL_REFERENCE_RANGE",
	CitationNode:            "CITATION",
	IncludeNode:             "INCLUDE",
	BibliographyIncludeNode: "BIBLIOGRAPHY_INCLUDE",
	ClassIncludeNode:        "CLASS_INCLUDE",
	VerbatimEnvironmentNode: "VERBATIM_ENVIRONMENT",
}

// KindName returns the debug name of a LaTeX kind.
func KindName(kind syntax.Kind) string {
	if int(kind) < len(kindNames) {
		return kindNames[kind]
	}
	return "UNKNOWN"
}

// IsTrivia reports whether the kind carries no meaning for the analysis.
func IsTrivia(kind syntax.Kind) bool {
	return kind == Whitespace || kind == LineBreak || kind == Comment
}
