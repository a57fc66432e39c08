package lsp

import (
	"fmt"

	"github.com/texlsp/texlsp/internal/cursor"
	"github.com/texlsp/texlsp/internal/lsp/protocol"
	"github.com/texlsp/texlsp/internal/workspace"
)

// currentWorkspace returns the workspace created on initialize, or nil
// before that.
func (s *Server) currentWorkspace() *workspace.Workspace {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.workspace
}

func (s *Server) didOpen(params *protocol.DidOpenTextDocumentParams) error {
	ws := s.currentWorkspace()
	if ws == nil {
		return nil
	}

	item := params.TextDocument
	if _, ok := ws.Open(item.URI, item.LanguageID, item.Text, item.Version); !ok {
		return fmt.Errorf("unsupported document %s (language %q)", item.URI, item.LanguageID)
	}
	openDocuments.Set(float64(len(ws.Documents())))
	return nil
}

func (s *Server) didChange(params *protocol.DidChangeTextDocumentParams) error {
	ws := s.currentWorkspace()
	if ws == nil || len(params.ContentChanges) == 0 {
		return nil
	}

	// Only full sync is advertised, so the last change holds the whole text
	text := params.ContentChanges[len(params.ContentChanges)-1].Text
	if _, ok := ws.Update(params.TextDocument.URI, text, params.TextDocument.Version); !ok {
		return fmt.Errorf("unsupported document %s", params.TextDocument.URI)
	}
	openDocuments.Set(float64(len(ws.Documents())))
	return nil
}

func (s *Server) didClose(params *protocol.DidCloseTextDocumentParams) error {
	ws := s.currentWorkspace()
	if ws == nil {
		return nil
	}

	ws.Close(params.TextDocument.URI)
	openDocuments.Set(float64(len(ws.Documents())))
	return nil
}

// cursorAt builds the cursor context for a position. All lookups of one
// request use the same snapshot.
func (s *Server) cursorAt(uri string, pos protocol.Position) (*cursor.Context, bool) {
	ws := s.currentWorkspace()
	if ws == nil {
		return nil, false
	}

	snapshot := ws.Snapshot()
	doc, ok := snapshot.Get(uri)
	if !ok {
		return nil, false
	}
	return cursor.New(doc, snapshot.Project(uri), pos), true
}
