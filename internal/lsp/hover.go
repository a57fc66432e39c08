package lsp

import (
	"context"

	"github.com/texlsp/texlsp/internal/lsp/protocol"
)

// hover handles textDocument/hover requests
func (s *Server) hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	c, ok := s.cursorAt(params.TextDocument.URI, params.Position)
	if !ok {
		return nil, nil
	}

	// Try each hover provider until one returns a result
	for _, provider := range s.hoverProviders {
		hover, err := provider.GetHover(ctx, c)
		if err != nil {
			return nil, err
		}
		if hover != nil {
			return hover, nil
		}
	}

	// No hover information available
	return nil, nil
}
