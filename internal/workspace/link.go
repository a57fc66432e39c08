package workspace

import (
	"net/url"
	"path"

	"github.com/texlsp/texlsp/internal/syntax"
)

// LinkKind selects the default file extension of an include directive.
type LinkKind int

const (
	LinkInclude LinkKind = iota
	LinkBibliography
	LinkClass
)

// Extension is the extension tried first when a link path has none.
func (k LinkKind) Extension() string {
	switch k {
	case LinkBibliography:
		return ".bib"
	case LinkClass:
		return ".cls"
	}
	return ".tex"
}

// Link is an include directive pointing at another document.
type Link struct {
	Kind  LinkKind
	Path  string
	Range syntax.TextRange
}

// Candidates returns the URIs the link may refer to, most likely first.
// Paths are resolved against the directory of the including document.
func (l Link) Candidates(base string) []string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return nil
	}

	paths := []string{l.Path}
	if path.Ext(l.Path) == "" {
		paths = []string{l.Path + l.Kind.Extension(), l.Path}
	}

	candidates := make([]string, 0, len(paths))
	for _, p := range paths {
		ref, err := url.Parse(p)
		if err != nil {
			continue
		}
		candidates = append(candidates, baseURL.ResolveReference(ref).String())
	}
	return candidates
}
