// Package cursor classifies the symbol under a position in a document.
package cursor

import (
	"github.com/texlsp/texlsp/internal/lsp/protocol"
	"github.com/texlsp/texlsp/internal/syntax"
	"github.com/texlsp/texlsp/internal/syntax/bibtex"
	"github.com/texlsp/texlsp/internal/syntax/latex"
	"github.com/texlsp/texlsp/internal/workspace"
)

// Key is the text of a classified symbol and the span it occupies.
type Key struct {
	Text  string
	Range syntax.TextRange
}

// Context is built once per request. Token is nil when the position does not
// touch any token of a LaTeX or BibTeX document.
type Context struct {
	Document *workspace.Document
	Project  *workspace.Project
	Offset   int
	Token    *syntax.Token
}

// New locates the token at pos. An invalid position yields a context
// without token.
func New(doc *workspace.Document, project *workspace.Project, pos protocol.Position) *Context {
	offset, ok := doc.LineIndex.Offset(pos)
	if !ok {
		return &Context{Document: doc, Project: project}
	}
	return NewAtOffset(doc, project, offset)
}

// NewAtOffset locates the token at a byte offset.
func NewAtOffset(doc *workspace.Document, project *workspace.Project, offset int) *Context {
	c := &Context{Document: doc, Project: project, Offset: offset}
	switch data := doc.Data.(type) {
	case *workspace.TexData:
		c.Token = pick(data.Root.TokensAtOffset(offset), latexPriority)
	case *workspace.BibData:
		c.Token = pick(data.Root.TokensAtOffset(offset), bibtexPriority)
	}
	return c
}

// IsTex reports whether the cursor is inside a LaTeX document.
func (c *Context) IsTex() bool {
	_, ok := c.Document.Data.(*workspace.TexData)
	return ok
}

// IsBib reports whether the cursor is inside a BibTeX document.
func (c *Context) IsBib() bool {
	_, ok := c.Document.Data.(*workspace.BibData)
	return ok
}

// pick chooses between the tokens left and right of the offset. The token
// with the higher priority wins; on a tie the right one does.
func pick(tokens []*syntax.Token, priority func(syntax.Kind) int) *syntax.Token {
	var best *syntax.Token
	for _, token := range tokens {
		if best == nil || priority(token.Kind()) >= priority(best.Kind()) {
			best = token
		}
	}
	return best
}

func latexPriority(kind syntax.Kind) int {
	switch {
	case kind == latex.Word || kind == latex.CommandName:
		return 2
	case latex.IsTrivia(kind):
		return 0
	}
	return 1
}

func bibtexPriority(kind syntax.Kind) int {
	switch kind {
	case bibtex.Name, bibtex.Integer, bibtex.Word, bibtex.CommandName, bibtex.Type:
		return 2
	case bibtex.Whitespace, bibtex.LineBreak:
		return 0
	}
	return 1
}
