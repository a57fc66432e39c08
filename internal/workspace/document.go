package workspace

import (
	"github.com/texlsp/texlsp/internal/config"
	"github.com/texlsp/texlsp/internal/lsp/protocol"
	"github.com/texlsp/texlsp/internal/syntax"
	"github.com/texlsp/texlsp/internal/syntax/bibtex"
	"github.com/texlsp/texlsp/internal/syntax/latex"
)

// Document is an immutable snapshot of a parsed source file. A change to the
// source produces a new Document.
type Document struct {
	URI       string
	Text      string
	Version   int
	Language  Language
	Data      Data
	LineIndex *LineIndex
}

// Data is the language specific content of a document. Exactly one of the
// *XxxData types implements it for a given document.
type Data interface {
	isData()
}

// TexData holds a parsed LaTeX document.
type TexData struct {
	Root *syntax.Node
	// Links are the include directives of the document in source order.
	Links []Link
	// CanBeRoot is set when the document declares a document class.
	CanBeRoot bool
}

// BibData holds a parsed BibTeX document.
type BibData struct {
	Root *syntax.Node
}

// AuxData holds a parsed auxiliary file.
type AuxData struct {
	Root *syntax.Node
}

// LogData marks a build log.
type LogData struct{}

// RootData marks a project root marker file.
type RootData struct{}

// TectonicData marks a Tectonic project manifest.
type TectonicData struct{}

func (*TexData) isData()      {}
func (*BibData) isData()      {}
func (*AuxData) isData()      {}
func (*LogData) isData()      {}
func (*RootData) isData()     {}
func (*TectonicData) isData() {}

// NewDocument parses text according to language. A nil cfg uses the default
// syntax configuration.
func NewDocument(uri, text string, version int, language Language, cfg *config.SyntaxConfig) *Document {
	doc := &Document{
		URI:       uri,
		Text:      text,
		Version:   version,
		Language:  language,
		LineIndex: NewLineIndex(text),
	}

	switch language {
	case LanguageTex:
		doc.Data = newTexData(latex.Parse(text, cfg))
	case LanguageBib:
		doc.Data = &BibData{Root: bibtex.Parse(text)}
	case LanguageAux:
		doc.Data = &AuxData{Root: latex.Parse(text, cfg)}
	case LanguageLog:
		doc.Data = &LogData{}
	case LanguageRoot:
		doc.Data = &RootData{}
	case LanguageTectonic:
		doc.Data = &TectonicData{}
	}
	return doc
}

func newTexData(root *syntax.Node) *TexData {
	data := &TexData{Root: root}
	for node := range root.Descendants() {
		include, ok := latex.CastInclude(node)
		if !ok {
			continue
		}

		kind := LinkInclude
		switch node.Kind() {
		case latex.BibliographyIncludeNode:
			kind = LinkBibliography
		case latex.ClassIncludeNode:
			kind = LinkClass
			data.CanBeRoot = true
		}

		for _, path := range include.Paths() {
			data.Links = append(data.Links, Link{Kind: kind, Path: path.Text(), Range: path.Range()})
		}
	}
	return data
}

// Location converts a byte range of the document into a protocol location.
func (d *Document) Location(r syntax.TextRange) protocol.Location {
	return protocol.Location{URI: d.URI, Range: d.LineIndex.Range(r)}
}
