package rename

import (
	"context"

	"github.com/texlsp/texlsp/internal/cursor"
	"github.com/texlsp/texlsp/internal/syntax"
	"github.com/texlsp/texlsp/internal/syntax/bibtex"
	"github.com/texlsp/texlsp/internal/syntax/latex"
	"github.com/texlsp/texlsp/internal/workspace"
)

// PrepareEntry returns the span of the citation key or entry key under the
// cursor. It does not look at other documents.
func PrepareEntry(c *cursor.Context) (syntax.TextRange, bool) {
	key, ok := entryKey(c)
	return key.Range, ok
}

// Entry renames a bibliography key: the keys of citations in LaTeX
// documents and entry keys in BibTeX documents. Every LaTeX and BibTeX
// document of the project appears in the result.
func Entry(ctx context.Context, c *cursor.Context, newName string) (*Result, error) {
	key, ok := entryKey(c)
	if !ok {
		return nil, ErrNotRenameable
	}

	return collect(ctx, c.Project.Documents, func(ctx context.Context, doc *workspace.Document) ([]Indel, bool, error) {
		indels := []Indel{}
		switch data := doc.Data.(type) {
		case *workspace.TexData:
			for node := range data.Root.Descendants() {
				if err := ctx.Err(); err != nil {
					return nil, false, err
				}
				for _, citation := range latex.CitationKeys(node) {
					if citation.Text() == key.Text {
						indels = append(indels, Indel{Delete: citation.Range(), Insert: newName})
					}
				}
			}
		case *workspace.BibData:
			for node := range data.Root.Descendants() {
				if err := ctx.Err(); err != nil {
					return nil, false, err
				}
				entry, ok := bibtex.CastEntry(node)
				if !ok {
					continue
				}
				if name := entry.NameToken(); name != nil && name.Text() == key.Text {
					indels = append(indels, Indel{Delete: name.Range(), Insert: newName})
				}
			}
		default:
			return nil, false, nil
		}
		return indels, true, nil
	})
}

// entryKey classifies the cursor as a citation key first and as an entry
// key otherwise.
func entryKey(c *cursor.Context) (cursor.Key, bool) {
	if key, ok := c.FindCitationKeyWord(); ok {
		return key, true
	}
	return c.FindEntryKey()
}
