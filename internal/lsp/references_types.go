package lsp

import (
	"context"

	"github.com/texlsp/texlsp/internal/cursor"
	"github.com/texlsp/texlsp/internal/lsp/protocol"
)

// ReferencesProvider is an interface for providing reference locations
type ReferencesProvider interface {
	// GetReferences returns location(s) for all references to the symbol under the cursor
	GetReferences(ctx context.Context, c *cursor.Context, params *protocol.ReferenceParams) ([]protocol.Location, error)
}
