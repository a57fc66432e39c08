package lsp

import (
	"context"

	"github.com/texlsp/texlsp/internal/cursor"
	"github.com/texlsp/texlsp/internal/lsp/protocol"
)

// HoverProvider is an interface for providing hover information
type HoverProvider interface {
	// GetHover returns hover information for the symbol under the cursor, or
	// nil when the provider has nothing to show
	GetHover(ctx context.Context, c *cursor.Context) (*protocol.Hover, error)
}
