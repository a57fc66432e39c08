package lsp

import (
	"context"

	"github.com/texlsp/texlsp/internal/cursor"
	"github.com/texlsp/texlsp/internal/lsp/protocol"
)

// GotoDefinitionProvider is an interface for providing definition locations
type GotoDefinitionProvider interface {
	// GetDefinition returns location(s) for the definition of the symbol under the cursor
	GetDefinition(ctx context.Context, c *cursor.Context) ([]protocol.Location, error)
}
