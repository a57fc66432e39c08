package workspace

import (
	"net/url"
	"path"
	"strings"
)

// Language selects how a document is parsed.
type Language int

const (
	LanguageTex Language = iota
	LanguageBib
	LanguageAux
	LanguageLog
	LanguageRoot
	LanguageTectonic
)

func (l Language) String() string {
	switch l {
	case LanguageTex:
		return "tex"
	case LanguageBib:
		return "bib"
	case LanguageAux:
		return "aux"
	case LanguageLog:
		return "log"
	case LanguageRoot:
		return "root"
	case LanguageTectonic:
		return "tectonic"
	}
	return "unknown"
}

// LanguageFromURI guesses the language of a document from the file name in
// its URI.
func LanguageFromURI(uri string) (Language, bool) {
	name := path.Base(uriPath(uri))
	switch name {
	case ".texlsproot", "texlsproot":
		return LanguageRoot, true
	case "Tectonic.toml":
		return LanguageTectonic, true
	}

	switch strings.ToLower(path.Ext(name)) {
	case ".tex", ".sty", ".cls", ".def", ".lco", ".ltx", ".rnw":
		return LanguageTex, true
	case ".bib", ".bibtex":
		return LanguageBib, true
	case ".aux":
		return LanguageAux, true
	case ".log":
		return LanguageLog, true
	}
	return 0, false
}

// LanguageFromID maps an editor language identifier to a language.
func LanguageFromID(id string) (Language, bool) {
	switch strings.ToLower(id) {
	case "tex", "latex", "plaintex", "context":
		return LanguageTex, true
	case "bibtex", "bib", "biblatex":
		return LanguageBib, true
	}
	return 0, false
}

func uriPath(uri string) string {
	u, err := url.Parse(uri)
	if err != nil || u.Path == "" {
		return uri
	}
	return u.Path
}
