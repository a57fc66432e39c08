package lsp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sourcegraph/jsonrpc2"

	"github.com/texlsp/texlsp/internal/config"
	"github.com/texlsp/texlsp/internal/lsp/protocol"
	"github.com/texlsp/texlsp/internal/workspace"
)

// Options configures a Server.
type Options struct {
	// ConfigPath is an explicit configuration file. When empty the
	// configuration is discovered from the project root on initialize.
	ConfigPath string
	// Version is reported to the client in the initialize result.
	Version string
}

// Server represents the LSP server
type Server struct {
	options  Options
	rootPath string

	hoverProviders      []HoverProvider
	definitionProviders []GotoDefinitionProvider
	referencesProviders []ReferencesProvider
	renameProviders     []RenameProvider

	mu          sync.Mutex
	workspace   *workspace.Workspace
	initialized bool
	shutdown    bool
	pending     map[jsonrpc2.ID]context.CancelFunc
}

// NewServer creates a new LSP server
func NewServer(options Options) *Server {
	return &Server{
		options:             options,
		hoverProviders:      make([]HoverProvider, 0),
		definitionProviders: make([]GotoDefinitionProvider, 0),
		referencesProviders: make([]ReferencesProvider, 0),
		renameProviders:     make([]RenameProvider, 0),
		pending:             make(map[jsonrpc2.ID]context.CancelFunc),
	}
}

// RegisterHoverProvider registers a hover provider with the server
func (s *Server) RegisterHoverProvider(provider HoverProvider) {
	s.hoverProviders = append(s.hoverProviders, provider)
}

// RegisterDefinitionProvider registers a definition provider with the server
func (s *Server) RegisterDefinitionProvider(provider GotoDefinitionProvider) {
	s.definitionProviders = append(s.definitionProviders, provider)
}

// RegisterReferencesProvider registers a references provider with the server
func (s *Server) RegisterReferencesProvider(provider ReferencesProvider) {
	s.referencesProviders = append(s.referencesProviders, provider)
}

// RegisterRenameProvider registers a rename provider with the server
func (s *Server) RegisterRenameProvider(provider RenameProvider) {
	s.renameProviders = append(s.renameProviders, provider)
}

// Start serves the protocol on in and out until the connection closes.
func (s *Server) Start(in io.Reader, out io.Writer, opts ...jsonrpc2.ConnOpt) error {
	stream := jsonrpc2.NewBufferedStream(rwc{in, out}, jsonrpc2.VSCodeObjectCodec{})
	conn := s.Connect(context.Background(), stream, opts...)

	// Wait for the connection to close
	<-conn.DisconnectNotify()
	return nil
}

// Connect serves the protocol on stream and returns the connection.
func (s *Server) Connect(ctx context.Context, stream jsonrpc2.ObjectStream, opts ...jsonrpc2.ConnOpt) *jsonrpc2.Conn {
	return jsonrpc2.NewConn(ctx, stream, s, opts...)
}

// rwc combines a reader and writer into a single ReadWriteCloser
type rwc struct {
	io.Reader
	io.Writer
}

// Close implements io.Closer
func (rwc) Close() error {
	return nil
}

// Handle implements jsonrpc2.Handler. Notifications are handled in arrival
// order on the reading goroutine. Requests run on their own goroutine with a
// context that $/cancelRequest cancels.
func (s *Server) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	if req.Notif {
		if err := s.handleNotification(conn, req); err != nil {
			log.Printf("Error handling %s: %v", req.Method, err)
		}
		return
	}

	start := time.Now()
	switch req.Method {
	case "initialize", "shutdown":
		result, err := s.handleLifecycle(req)
		s.reply(ctx, conn, req, start, result, err)
		return
	}

	requestCtx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.pending[req.ID] = cancel
	s.mu.Unlock()

	go func() {
		result, err := s.handleRequest(requestCtx, req)

		s.mu.Lock()
		delete(s.pending, req.ID)
		s.mu.Unlock()
		cancel()

		s.reply(ctx, conn, req, start, result, err)
	}()
}

// reply sends the outcome of a request. Context errors become the
// RequestCancelled error so that partial results are never sent.
func (s *Server) reply(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request, start time.Time, result any, err error) {
	var sendErr error
	if err != nil {
		var rpcErr *jsonrpc2.Error
		switch {
		case errors.Is(err, context.Canceled):
			observeRequest(req.Method, outcomeCancelled, time.Since(start))
			rpcErr = protocol.NewRequestCancelledError()
		case errors.As(err, &rpcErr):
			observeRequest(req.Method, outcomeError, time.Since(start))
		default:
			observeRequest(req.Method, outcomeError, time.Since(start))
			rpcErr = &jsonrpc2.Error{Code: protocol.CodeRequestFailed, Message: err.Error()}
		}
		sendErr = conn.ReplyWithError(ctx, req.ID, rpcErr)
	} else {
		observeRequest(req.Method, outcomeOK, time.Since(start))
		sendErr = conn.Reply(ctx, req.ID, result)
	}

	if sendErr != nil && !errors.Is(sendErr, jsonrpc2.ErrClosed) {
		log.Printf("Error replying to %s: %v", req.Method, sendErr)
	}
}

func (s *Server) handleLifecycle(req *jsonrpc2.Request) (any, error) {
	switch req.Method {
	case "initialize":
		s.mu.Lock()
		initialized := s.initialized
		s.mu.Unlock()
		if initialized {
			return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidRequest, Message: "server already initialized"}
		}

		var params protocol.InitializeParams
		if err := decode(req, &params); err != nil {
			return nil, err
		}
		return s.initialize(&params), nil

	default:
		s.mu.Lock()
		s.shutdown = true
		s.mu.Unlock()

		log.Println("Received shutdown request, waiting for exit notification")
		return nil, nil
	}
}

func (s *Server) handleRequest(ctx context.Context, req *jsonrpc2.Request) (any, error) {
	s.mu.Lock()
	initialized, shutdown := s.initialized, s.shutdown
	s.mu.Unlock()
	if !initialized {
		return nil, &jsonrpc2.Error{Code: protocol.CodeServerNotInitialized, Message: "server not initialized"}
	}
	if shutdown {
		return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidRequest, Message: "server is shutting down"}
	}

	switch req.Method {
	case "textDocument/hover":
		var params protocol.HoverParams
		if err := decode(req, &params); err != nil {
			return nil, err
		}
		return s.hover(ctx, &params)

	case "textDocument/definition":
		var params protocol.DefinitionParams
		if err := decode(req, &params); err != nil {
			return nil, err
		}
		return s.definition(ctx, &params)

	case "textDocument/references":
		var params protocol.ReferenceParams
		if err := decode(req, &params); err != nil {
			return nil, err
		}
		return s.references(ctx, &params)

	case "textDocument/prepareRename":
		var params protocol.PrepareRenameParams
		if err := decode(req, &params); err != nil {
			return nil, err
		}
		return s.prepareRename(ctx, &params)

	case "textDocument/rename":
		var params protocol.RenameParams
		if err := decode(req, &params); err != nil {
			return nil, err
		}
		return s.rename(ctx, &params)

	default:
		return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeMethodNotFound, Message: "Method not implemented: " + req.Method}
	}
}

func (s *Server) handleNotification(conn *jsonrpc2.Conn, req *jsonrpc2.Request) error {
	switch req.Method {
	case "exit":
		log.Println("Received exit notification, exiting")
		return conn.Close()

	case "initialized":
		log.Printf("Client initialized, project root %q", s.rootPath)
		return nil

	case "$/cancelRequest":
		var params protocol.CancelParams
		if err := decode(req, &params); err != nil {
			return err
		}
		s.cancel(params.ID)
		return nil

	case "textDocument/didOpen":
		var params protocol.DidOpenTextDocumentParams
		if err := decode(req, &params); err != nil {
			return err
		}
		return s.didOpen(&params)

	case "textDocument/didChange":
		var params protocol.DidChangeTextDocumentParams
		if err := decode(req, &params); err != nil {
			return err
		}
		return s.didChange(&params)

	case "textDocument/didClose":
		var params protocol.DidCloseTextDocumentParams
		if err := decode(req, &params); err != nil {
			return err
		}
		return s.didClose(&params)

	default:
		// Unknown notifications are ignored
		return nil
	}
}

// cancel cancels the context of a running request. Requests that already
// finished are ignored.
func (s *Server) cancel(id jsonrpc2.ID) {
	s.mu.Lock()
	cancel, ok := s.pending[id]
	s.mu.Unlock()
	if ok {
		cancellationsTotal.Inc()
		cancel()
	}
}

func decode(req *jsonrpc2.Request, v any) error {
	if req.Params == nil {
		return &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: "missing params"}
	}
	if err := json.Unmarshal(*req.Params, v); err != nil {
		return &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: err.Error()}
	}
	return nil
}

// initialize handles the LSP initialize request
func (s *Server) initialize(params *protocol.InitializeParams) *protocol.InitializeResult {
	s.extractRootPath(params)

	cfg, err := config.Discover(s.options.ConfigPath, s.rootPath)
	if err != nil {
		log.Printf("Error loading config, using defaults: %v", err)
		cfg = config.Default()
	}

	ws := workspace.New(&cfg.Syntax)
	if cfg.RootDir != "" {
		dir := cfg.RootDir
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(s.rootPath, dir)
		}
		ws.SetRootDir(pathToURI(dir))
	}

	s.mu.Lock()
	s.workspace = ws
	s.initialized = true
	s.mu.Unlock()

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: protocol.TextDocumentSyncOptions{
				OpenClose: true,
				Change:    protocol.SyncFull,
			},
			HoverProvider:      true,
			DefinitionProvider: true,
			ReferencesProvider: true,
			RenameProvider:     &protocol.RenameOptions{PrepareProvider: true},
		},
		ServerInfo: &protocol.ServerInfo{Name: "texlsp", Version: s.options.Version},
	}
}

// extractRootPath extracts the root path from the initialize params
func (s *Server) extractRootPath(params *protocol.InitializeParams) {
	// Try to get from RootPath
	if params.RootPath != "" {
		s.rootPath = params.RootPath
		return
	}

	// Try to get from RootURI
	if params.RootURI != "" {
		s.rootPath = uriToPath(params.RootURI)
		return
	}

	// Try to get from WorkspaceFolders
	if len(params.WorkspaceFolders) > 0 {
		s.rootPath = uriToPath(params.WorkspaceFolders[0].URI)
		return
	}

	// Fall back to current directory
	s.rootPath, _ = os.Getwd()
}

func uriToPath(uri string) string {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme != "file" {
		return strings.TrimPrefix(uri, "file://")
	}
	return filepath.FromSlash(u.Path)
}

func pathToURI(path string) string {
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(path)}).String()
}
