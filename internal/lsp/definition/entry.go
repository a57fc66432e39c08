package definition

import (
	"context"

	"github.com/texlsp/texlsp/internal/cursor"
	"github.com/texlsp/texlsp/internal/lsp/protocol"
	"github.com/texlsp/texlsp/internal/syntax/bibtex"
	"github.com/texlsp/texlsp/internal/workspace"
)

// FindEntry lists the bibliography entries a citation key refers to.
func FindEntry(ctx context.Context, c *cursor.Context) ([]protocol.Location, error) {
	key, ok := c.FindCitationKeyWord()
	if !ok {
		key, ok = c.FindCitationKeyCommand()
	}
	if !ok {
		return nil, nil
	}

	var locations []protocol.Location
	for _, doc := range c.Project.Documents {
		data, ok := doc.Data.(*workspace.BibData)
		if !ok {
			continue
		}
		for child := range data.Root.Children() {
			if err := ctx.Err(); err != nil {
				return locations, err
			}
			entry, ok := bibtex.CastEntry(child)
			if !ok {
				continue
			}
			if name := entry.NameToken(); name != nil && name.Text() == key.Text {
				locations = append(locations, doc.Location(name.Range()))
			}
		}
	}
	return locations, nil
}

// EntryDefinitionProvider jumps from citations to bibliography entries.
type EntryDefinitionProvider struct{}

func NewEntryDefinitionProvider() *EntryDefinitionProvider {
	return &EntryDefinitionProvider{}
}

func (p *EntryDefinitionProvider) GetDefinition(ctx context.Context, c *cursor.Context) ([]protocol.Location, error) {
	return FindEntry(ctx, c)
}
