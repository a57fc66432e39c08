// Package rename computes the edits that rename a symbol in every document
// of a project.
package rename

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/texlsp/texlsp/internal/cursor"
	"github.com/texlsp/texlsp/internal/lsp/protocol"
	"github.com/texlsp/texlsp/internal/syntax"
	"github.com/texlsp/texlsp/internal/workspace"
)

// ErrNotRenameable is returned when the cursor is not on a symbol the
// operation can rename.
var ErrNotRenameable = errors.New("rename: no renameable symbol at position")

// Indel replaces the text in Delete with Insert.
type Indel struct {
	Delete syntax.TextRange
	Insert string
}

// Result maps every document the rename applies to onto its edits.
// Documents without occurrences are present with an empty list.
type Result struct {
	Changes map[*workspace.Document][]Indel
}

// WorkspaceEdit converts the result into protocol coordinates.
func (r *Result) WorkspaceEdit() *protocol.WorkspaceEdit {
	edit := &protocol.WorkspaceEdit{Changes: make(map[string][]protocol.TextEdit, len(r.Changes))}
	for doc, indels := range r.Changes {
		edits := make([]protocol.TextEdit, 0, len(indels))
		for _, indel := range indels {
			edits = append(edits, protocol.TextEdit{
				Range:   doc.LineIndex.Range(indel.Delete),
				NewText: indel.Insert,
			})
		}
		edit.Changes[doc.URI] = edits
	}
	return edit
}

// documentEdits computes the edits of one document. ok is false for
// documents the rename does not apply to.
type documentEdits func(ctx context.Context, doc *workspace.Document) (indels []Indel, ok bool, err error)

// collect runs compute for every document concurrently and gathers the
// results keyed by document.
func collect(ctx context.Context, documents []*workspace.Document, compute documentEdits) (*Result, error) {
	type outcome struct {
		indels []Indel
		ok     bool
	}
	outcomes := make([]outcome, len(documents))

	g, ctx := errgroup.WithContext(ctx)
	for i, doc := range documents {
		g.Go(func() error {
			indels, ok, err := compute(ctx, doc)
			if err != nil {
				return err
			}
			outcomes[i] = outcome{indels: indels, ok: ok}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{Changes: make(map[*workspace.Document][]Indel)}
	for i, doc := range documents {
		if outcomes[i].ok {
			result.Changes[doc] = outcomes[i].indels
		}
	}
	return result, nil
}

// Provider answers prepareRename and rename requests for one kind of
// symbol.
type Provider struct {
	prepare func(c *cursor.Context) (syntax.TextRange, bool)
	rename  func(ctx context.Context, c *cursor.Context, newName string) (*Result, error)
}

// NewEntryProvider renames citation and entry keys.
func NewEntryProvider() *Provider {
	return &Provider{prepare: PrepareEntry, rename: Entry}
}

// NewLabelProvider renames labels.
func NewLabelProvider() *Provider {
	return &Provider{prepare: PrepareLabel, rename: Label}
}

// PrepareRename returns the editable span, or nil when the cursor is not on
// a symbol of this provider.
func (p *Provider) PrepareRename(_ context.Context, c *cursor.Context) (*protocol.Range, error) {
	rng, ok := p.prepare(c)
	if !ok {
		return nil, nil
	}
	result := c.Document.LineIndex.Range(rng)
	return &result, nil
}

// Rename returns the edits, or nil when the cursor is not on a symbol of
// this provider.
func (p *Provider) Rename(ctx context.Context, c *cursor.Context, newName string) (*protocol.WorkspaceEdit, error) {
	result, err := p.rename(ctx, c, newName)
	if errors.Is(err, ErrNotRenameable) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return result.WorkspaceEdit(), nil
}
