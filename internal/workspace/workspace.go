// Package workspace keeps the parsed documents known to the server and
// derives the project a document belongs to.
package workspace

import (
	"maps"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/texlsp/texlsp/internal/config"
)

// Workspace manages the known documents. Writers replace an immutable
// snapshot under a mutex; readers load the current snapshot without
// locking and keep a consistent view for the whole request.
type Workspace struct {
	mu      sync.Mutex
	current atomic.Pointer[Snapshot]
	config  *config.SyntaxConfig
}

// Snapshot is an immutable view of the workspace at one point in time.
type Snapshot struct {
	documents map[string]*Document

	// rootDir is a directory URI ending in a slash. Links that do not
	// resolve next to the including document are tried against it.
	rootDir string

	// Resolved include edges, computed on first use.
	edgesOnce sync.Once
	edges     map[string][]string
}

// New creates an empty workspace. A nil cfg uses the default syntax
// configuration.
func New(cfg *config.SyntaxConfig) *Workspace {
	if cfg == nil {
		cfg = &config.Default().Syntax
	}
	w := &Workspace{config: cfg}
	w.current.Store(&Snapshot{documents: map[string]*Document{}})
	return w
}

// Open parses text and adds or replaces the document at uri. The language is
// taken from languageID when known and from the file name otherwise. It
// reports false when neither identifies a supported language.
func (w *Workspace) Open(uri, languageID, text string, version int) (*Document, bool) {
	language, ok := LanguageFromID(languageID)
	if !ok {
		language, ok = LanguageFromURI(uri)
	}
	if !ok {
		return nil, false
	}
	doc := NewDocument(uri, text, version, language, w.config)
	w.Insert(doc)
	return doc, true
}

// Update replaces the text of a known document. Unknown documents are opened
// with the language derived from their file name.
func (w *Workspace) Update(uri, text string, version int) (*Document, bool) {
	if doc, ok := w.Get(uri); ok {
		updated := NewDocument(uri, text, version, doc.Language, w.config)
		w.Insert(updated)
		return updated, true
	}
	return w.Open(uri, "", text, version)
}

// Insert adds or replaces an already parsed document.
func (w *Workspace) Insert(doc *Document) {
	w.mu.Lock()
	defer w.mu.Unlock()

	old := w.current.Load()
	documents := maps.Clone(old.documents)
	documents[doc.URI] = doc
	w.current.Store(&Snapshot{documents: documents, rootDir: old.rootDir})
}

// Close removes a document.
func (w *Workspace) Close(uri string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	old := w.current.Load()
	if _, ok := old.documents[uri]; !ok {
		return
	}
	documents := maps.Clone(old.documents)
	delete(documents, uri)
	w.current.Store(&Snapshot{documents: documents, rootDir: old.rootDir})
}

// SetRootDir sets the directory URI used as a fallback base for include
// links. An empty uri disables the fallback.
func (w *Workspace) SetRootDir(uri string) {
	if uri != "" && !strings.HasSuffix(uri, "/") {
		uri += "/"
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	old := w.current.Load()
	w.current.Store(&Snapshot{documents: old.documents, rootDir: uri})
}

// Snapshot returns the current immutable view.
func (w *Workspace) Snapshot() *Snapshot {
	return w.current.Load()
}

// Get returns a document by URI.
func (w *Workspace) Get(uri string) (*Document, bool) {
	return w.Snapshot().Get(uri)
}

// Documents returns all documents ordered by URI.
func (w *Workspace) Documents() []*Document {
	return w.Snapshot().Documents()
}

// Project returns the project containing uri in the current snapshot.
func (w *Workspace) Project(uri string) *Project {
	return w.Snapshot().Project(uri)
}

// Get returns a document by URI.
func (s *Snapshot) Get(uri string) (*Document, bool) {
	doc, ok := s.documents[uri]
	return doc, ok
}

// Documents returns all documents ordered by URI.
func (s *Snapshot) Documents() []*Document {
	uris := slices.Sorted(maps.Keys(s.documents))
	docs := make([]*Document, len(uris))
	for i, uri := range uris {
		docs[i] = s.documents[uri]
	}
	return docs
}
