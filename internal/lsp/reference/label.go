package reference

import (
	"context"

	"github.com/texlsp/texlsp/internal/cursor"
	"github.com/texlsp/texlsp/internal/lsp/protocol"
	"github.com/texlsp/texlsp/internal/syntax/latex"
	"github.com/texlsp/texlsp/internal/workspace"
)

// FindLabelReferences lists every use of the label under the cursor across
// the project: references always, definitions only when includeDeclaration
// is set. Locations follow project order and, within a document, source
// order.
//
// The context is polled once per visited node. When it is done the
// locations collected so far are returned together with ctx.Err().
func FindLabelReferences(ctx context.Context, c *cursor.Context, includeDeclaration bool) ([]protocol.Location, error) {
	name, ok := c.FindLabelNameWord()
	if !ok {
		name, ok = c.FindLabelNameCommand()
	}
	if !ok {
		return nil, nil
	}

	var locations []protocol.Location
	for _, doc := range c.Project.Documents {
		data, ok := doc.Data.(*workspace.TexData)
		if !ok {
			continue
		}
		for node := range data.Root.Descendants() {
			if err := ctx.Err(); err != nil {
				return locations, err
			}
			for _, label := range latex.LabelNames(node) {
				if label.Definition && !includeDeclaration {
					continue
				}
				if label.Key.Text() == name.Text {
					locations = append(locations, doc.Location(label.Key.Range()))
				}
			}
		}
	}
	return locations, nil
}

// LabelReferenceProvider answers reference requests on labels.
type LabelReferenceProvider struct{}

func NewLabelReferenceProvider() *LabelReferenceProvider {
	return &LabelReferenceProvider{}
}

func (p *LabelReferenceProvider) GetReferences(ctx context.Context, c *cursor.Context, params *protocol.ReferenceParams) ([]protocol.Location, error) {
	return FindLabelReferences(ctx, c, params.Context.IncludeDeclaration)
}
