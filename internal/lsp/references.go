package lsp

import (
	"context"

	"github.com/texlsp/texlsp/internal/lsp/protocol"
)

// references handles textDocument/references requests
func (s *Server) references(ctx context.Context, params *protocol.ReferenceParams) ([]protocol.Location, error) {
	c, ok := s.cursorAt(params.TextDocument.URI, params.Position)
	if !ok {
		return nil, nil
	}

	// Collect reference locations from all providers
	var locations []protocol.Location
	for _, provider := range s.referencesProviders {
		providerLocations, err := provider.GetReferences(ctx, c, params)
		if err != nil {
			return nil, err
		}
		locations = append(locations, providerLocations...)
	}

	return locations, nil
}
