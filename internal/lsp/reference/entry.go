package reference

import (
	"context"

	"github.com/texlsp/texlsp/internal/cursor"
	"github.com/texlsp/texlsp/internal/lsp/protocol"
	"github.com/texlsp/texlsp/internal/syntax/bibtex"
	"github.com/texlsp/texlsp/internal/syntax/latex"
	"github.com/texlsp/texlsp/internal/workspace"
)

// FindEntryReferences lists the citations of the bibliography key under the
// cursor across the project. Entry keys in BibTeX documents count as
// declarations and are included only when includeDeclaration is set.
// Cancellation behaves as in FindLabelReferences.
func FindEntryReferences(ctx context.Context, c *cursor.Context, includeDeclaration bool) ([]protocol.Location, error) {
	key, ok := c.FindCitationKeyWord()
	if !ok {
		key, ok = c.FindCitationKeyCommand()
	}
	if !ok {
		key, ok = c.FindEntryKey()
	}
	if !ok {
		return nil, nil
	}

	var locations []protocol.Location
	for _, doc := range c.Project.Documents {
		switch data := doc.Data.(type) {
		case *workspace.TexData:
			for node := range data.Root.Descendants() {
				if err := ctx.Err(); err != nil {
					return locations, err
				}
				for _, citation := range latex.CitationKeys(node) {
					if citation.Text() == key.Text {
						locations = append(locations, doc.Location(citation.Range()))
					}
				}
			}
		case *workspace.BibData:
			for node := range data.Root.Descendants() {
				if err := ctx.Err(); err != nil {
					return locations, err
				}
				if !includeDeclaration {
					continue
				}
				entry, ok := bibtex.CastEntry(node)
				if !ok {
					continue
				}
				if name := entry.NameToken(); name != nil && name.Text() == key.Text {
					locations = append(locations, doc.Location(name.Range()))
				}
			}
		}
	}
	return locations, nil
}

// EntryReferenceProvider answers reference requests on citation and entry
// keys.
type EntryReferenceProvider struct{}

func NewEntryReferenceProvider() *EntryReferenceProvider {
	return &EntryReferenceProvider{}
}

func (p *EntryReferenceProvider) GetReferences(ctx context.Context, c *cursor.Context, params *protocol.ReferenceParams) ([]protocol.Location, error) {
	return FindEntryReferences(ctx, c, params.Context.IncludeDeclaration)
}
