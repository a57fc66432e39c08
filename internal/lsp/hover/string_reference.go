package hover

import (
	"context"

	"github.com/texlsp/texlsp/internal/citeproc"
	"github.com/texlsp/texlsp/internal/cursor"
	"github.com/texlsp/texlsp/internal/lsp/protocol"
	"github.com/texlsp/texlsp/internal/syntax"
	"github.com/texlsp/texlsp/internal/syntax/bibtex"
	"github.com/texlsp/texlsp/internal/workspace"
)

// Result is a plain text hover anchored at the symbol under the cursor.
type Result struct {
	Range syntax.TextRange
	Value string
}

// FindStringReference resolves a @string abbreviation used in a BibTeX
// document. Abbreviations are local to their document, so only the
// definitions of the cursor's document are searched. The result is anchored
// at the name under the cursor, not at the definition.
func FindStringReference(c *cursor.Context) (Result, bool) {
	data, ok := c.Document.Data.(*workspace.BibData)
	if !ok {
		return Result{}, false
	}
	name, ok := c.FindStringReference()
	if !ok {
		return Result{}, false
	}

	for child := range data.Root.Children() {
		def, ok := bibtex.CastStringDef(child)
		if !ok {
			continue
		}
		token := def.NameToken()
		if token == nil || token.Text() != name.Text {
			continue
		}

		value, ok := def.Value()
		if !ok {
			return Result{}, false
		}
		text, ok := citeproc.ParseText(value)
		if !ok {
			return Result{}, false
		}
		return Result{Range: name.Range, Value: text}, true
	}
	return Result{}, false
}

// StringReferenceHoverProvider shows the expanded text of @string
// abbreviations.
type StringReferenceHoverProvider struct{}

func NewStringReferenceHoverProvider() *StringReferenceHoverProvider {
	return &StringReferenceHoverProvider{}
}

func (p *StringReferenceHoverProvider) GetHover(_ context.Context, c *cursor.Context) (*protocol.Hover, error) {
	result, ok := FindStringReference(c)
	if !ok {
		return nil, nil
	}

	rng := c.Document.LineIndex.Range(result.Range)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.PlainText,
			Value: result.Value,
		},
		Range: &rng,
	}, nil
}
