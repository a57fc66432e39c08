package rename

import (
	"context"

	"github.com/texlsp/texlsp/internal/cursor"
	"github.com/texlsp/texlsp/internal/syntax"
	"github.com/texlsp/texlsp/internal/syntax/latex"
	"github.com/texlsp/texlsp/internal/workspace"
)

// PrepareLabel returns the span of the label name under the cursor.
func PrepareLabel(c *cursor.Context) (syntax.TextRange, bool) {
	key, ok := c.FindLabelNameWord()
	return key.Range, ok
}

// Label renames a label in its definitions, references and range
// references. Every LaTeX document of the project appears in the result.
func Label(ctx context.Context, c *cursor.Context, newName string) (*Result, error) {
	key, ok := c.FindLabelNameWord()
	if !ok {
		return nil, ErrNotRenameable
	}

	return collect(ctx, c.Project.Documents, func(ctx context.Context, doc *workspace.Document) ([]Indel, bool, error) {
		data, ok := doc.Data.(*workspace.TexData)
		if !ok {
			return nil, false, nil
		}

		indels := []Indel{}
		for node := range data.Root.Descendants() {
			if err := ctx.Err(); err != nil {
				return nil, false, err
			}
			for _, label := range latex.LabelNames(node) {
				if label.Key.Text() == key.Text {
					indels = append(indels, Indel{Delete: label.Key.Range(), Insert: newName})
				}
			}
		}
		return indels, true, nil
	})
}
