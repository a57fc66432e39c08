package lsp

import (
	"context"

	"github.com/texlsp/texlsp/internal/lsp/protocol"
)

// definition handles textDocument/definition requests
func (s *Server) definition(ctx context.Context, params *protocol.DefinitionParams) ([]protocol.Location, error) {
	c, ok := s.cursorAt(params.TextDocument.URI, params.Position)
	if !ok {
		return nil, nil
	}

	// Collect definition locations from all providers
	var locations []protocol.Location
	for _, provider := range s.definitionProviders {
		providerLocations, err := provider.GetDefinition(ctx, c)
		if err != nil {
			return nil, err
		}
		locations = append(locations, providerLocations...)
	}

	return locations, nil
}
