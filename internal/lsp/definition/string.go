package definition

import (
	"context"

	"github.com/texlsp/texlsp/internal/cursor"
	"github.com/texlsp/texlsp/internal/lsp/protocol"
	"github.com/texlsp/texlsp/internal/syntax/bibtex"
	"github.com/texlsp/texlsp/internal/workspace"
)

// FindString lists the @string definitions of the abbreviation under the
// cursor. Only the cursor's document is searched.
func FindString(c *cursor.Context) []protocol.Location {
	data, ok := c.Document.Data.(*workspace.BibData)
	if !ok {
		return nil
	}
	name, ok := c.FindStringReference()
	if !ok {
		return nil
	}

	var locations []protocol.Location
	for child := range data.Root.Children() {
		def, ok := bibtex.CastStringDef(child)
		if !ok {
			continue
		}
		if token := def.NameToken(); token != nil && token.Text() == name.Text {
			locations = append(locations, c.Document.Location(token.Range()))
		}
	}
	return locations
}

// StringDefinitionProvider jumps from abbreviations to their @string.
type StringDefinitionProvider struct{}

func NewStringDefinitionProvider() *StringDefinitionProvider {
	return &StringDefinitionProvider{}
}

func (p *StringDefinitionProvider) GetDefinition(_ context.Context, c *cursor.Context) ([]protocol.Location, error) {
	return FindString(c), nil
}
