// Package definition resolves the definition of the symbol under the cursor.
package definition

import (
	"context"

	"github.com/texlsp/texlsp/internal/cursor"
	"github.com/texlsp/texlsp/internal/lsp/protocol"
	"github.com/texlsp/texlsp/internal/syntax/latex"
	"github.com/texlsp/texlsp/internal/workspace"
)

// FindLabel lists the \label definitions of the label under the cursor
// across the project. The context is polled once per visited node.
func FindLabel(ctx context.Context, c *cursor.Context) ([]protocol.Location, error) {
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
				if label.Definition && label.Key.Text() == name.Text {
					locations = append(locations, doc.Location(label.Key.Range()))
				}
			}
		}
	}
	return locations, nil
}

// LabelDefinitionProvider jumps from label references to \label.
type LabelDefinitionProvider struct{}

func NewLabelDefinitionProvider() *LabelDefinitionProvider {
	return &LabelDefinitionProvider{}
}

func (p *LabelDefinitionProvider) GetDefinition(ctx context.Context, c *cursor.Context) ([]protocol.Location, error) {
	return FindLabel(ctx, c)
}
