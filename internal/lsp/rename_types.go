package lsp

import (
	"context"

	"github.com/texlsp/texlsp/internal/cursor"
	"github.com/texlsp/texlsp/internal/lsp/protocol"
)

// RenameProvider is an interface for renaming one kind of symbol. Both
// methods return nil when the cursor is not on a symbol of the provider.
type RenameProvider interface {
	// PrepareRename returns the editable range of the symbol under the cursor
	PrepareRename(ctx context.Context, c *cursor.Context) (*protocol.Range, error)
	// Rename returns the edits that rename the symbol under the cursor
	Rename(ctx context.Context, c *cursor.Context, newName string) (*protocol.WorkspaceEdit, error)
}
