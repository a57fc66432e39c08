package lsp

import (
	"context"

	"github.com/texlsp/texlsp/internal/lsp/protocol"
)

// prepareRename handles textDocument/prepareRename requests. The first
// provider that recognizes the symbol wins.
func (s *Server) prepareRename(ctx context.Context, params *protocol.PrepareRenameParams) (*protocol.Range, error) {
	c, ok := s.cursorAt(params.TextDocument.URI, params.Position)
	if !ok {
		return nil, nil
	}

	for _, provider := range s.renameProviders {
		rng, err := provider.PrepareRename(ctx, c)
		if err != nil {
			return nil, err
		}
		if rng != nil {
			return rng, nil
		}
	}
	return nil, nil
}

// rename handles textDocument/rename requests
func (s *Server) rename(ctx context.Context, params *protocol.RenameParams) (*protocol.WorkspaceEdit, error) {
	c, ok := s.cursorAt(params.TextDocument.URI, params.Position)
	if !ok {
		return nil, nil
	}

	for _, provider := range s.renameProviders {
		edit, err := provider.Rename(ctx, c, params.NewName)
		if err != nil {
			return nil, err
		}
		if edit != nil {
			return edit, nil
		}
	}
	return nil, nil
}
