package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/texlsp/texlsp/internal/lsp/protocol"
	"github.com/texlsp/texlsp/internal/syntax"
)

const root = "file:///project/"

func newWorkspace(t *testing.T, files map[string]string) *Workspace {
	t.Helper()
	ws := New(nil)
	for name, text := range files {
		_, ok := ws.Open(root+name, "", text, 1)
		require.True(t, ok, name)
	}
	return ws
}

func uris(project *Project) []string {
	result := make([]string, len(project.Documents))
	for i, doc := range project.Documents {
		result[i] = doc.URI[len(root):]
	}
	return result
}

func TestLanguageFromURI(t *testing.T) {
	tests := []struct {
		uri      string
		expected Language
		ok       bool
	}{
		{"file:///a/main.tex", LanguageTex, true},
		{"file:///a/style.STY", LanguageTex, true},
		{"file:///a/refs.bib", LanguageBib, true},
		{"file:///a/main.aux", LanguageAux, true},
		{"file:///a/main.log", LanguageLog, true},
		{"file:///a/.texlsproot", LanguageRoot, true},
		{"file:///a/Tectonic.toml", LanguageTectonic, true},
		{"file:///a/readme.md", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			language, ok := LanguageFromURI(tt.uri)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, language)
			}
		})
	}
}

func TestOpenSelectsDataVariant(t *testing.T) {
	ws := New(nil)

	doc, ok := ws.Open(root+"main.tex", "latex", `\documentclass{article}`, 1)
	require.True(t, ok)
	tex, ok := doc.Data.(*TexData)
	require.True(t, ok)
	assert.True(t, tex.CanBeRoot)

	doc, ok = ws.Open(root+"refs.bib", "", "@article{foo,}", 1)
	require.True(t, ok)
	assert.IsType(t, &BibData{}, doc.Data)

	doc, ok = ws.Open(root+"main.log", "", "This is pdfTeX", 1)
	require.True(t, ok)
	assert.IsType(t, &LogData{}, doc.Data)

	_, ok = ws.Open(root+"notes.txt", "plaintext-unknown", "", 1)
	assert.False(t, ok)
}

func TestTexLinks(t *testing.T) {
	ws := newWorkspace(t, map[string]string{
		"main.tex": "\\documentclass{article}\n\\input{chapters/intro}\n\\bibliography{refs,extra}",
	})

	doc, _ := ws.Get(root + "main.tex")
	data := doc.Data.(*TexData)
	require.Len(t, data.Links, 4)
	assert.Equal(t, Link{Kind: LinkClass, Path: "article", Range: syntax.TextRange{Start: 15, End: 22}}, data.Links[0])
	assert.Equal(t, LinkInclude, data.Links[1].Kind)
	assert.Equal(t, "chapters/intro", data.Links[1].Path)
	assert.Equal(t, LinkBibliography, data.Links[2].Kind)
	assert.Equal(t, "extra", data.Links[3].Path)
}

func TestLinkCandidates(t *testing.T) {
	base := "file:///project/chapters/main.tex"

	assert.Equal(t,
		[]string{"file:///project/chapters/intro.tex", "file:///project/chapters/intro"},
		Link{Kind: LinkInclude, Path: "intro"}.Candidates(base))
	assert.Equal(t,
		[]string{"file:///project/chapters/refs.bib", "file:///project/chapters/refs"},
		Link{Kind: LinkBibliography, Path: "refs"}.Candidates(base))
	assert.Equal(t,
		[]string{"file:///project/refs.bib"},
		Link{Kind: LinkBibliography, Path: "../refs.bib"}.Candidates(base))
	assert.Equal(t,
		[]string{"file:///abs/file.tex"},
		Link{Kind: LinkInclude, Path: "/abs/file.tex"}.Candidates(base))
}

func TestProjectMembershipAndOrder(t *testing.T) {
	ws := newWorkspace(t, map[string]string{
		"main.tex":   "\\documentclass{article}\n\\input{b}\n\\input{a.tex}\n\\bibliography{refs}",
		"a.tex":      `\input{nested}`,
		"b.tex":      `\cite{foo}`,
		"nested.tex": "",
		"refs.bib":   "@article{foo,}",
		"other.tex":  "unrelated",
	})

	assert.Equal(t, []string{"main.tex", "b.tex", "a.tex", "refs.bib", "nested.tex"}, uris(ws.Project(root+"main.tex")))
	assert.Equal(t, []string{"refs.bib", "main.tex", "b.tex", "a.tex", "nested.tex"}, uris(ws.Project(root+"refs.bib")))
	assert.Equal(t, []string{"nested.tex", "main.tex", "b.tex", "a.tex", "refs.bib"}, uris(ws.Project(root+"nested.tex")))
	assert.Equal(t, []string{"other.tex"}, uris(ws.Project(root+"other.tex")))
}

func TestProjectWithoutRoot(t *testing.T) {
	// Both documents include each other, so neither is a root candidate.
	ws := newWorkspace(t, map[string]string{
		"a.tex": `\input{b}`,
		"b.tex": `\input{a}`,
	})

	assert.Equal(t, []string{"a.tex"}, uris(ws.Project(root+"a.tex")))
	assert.Empty(t, ws.Project(root+"missing.tex").Documents)
}

func TestProjectRootDirFallback(t *testing.T) {
	ws := newWorkspace(t, map[string]string{
		"sub/chapter.tex": `\input{figures}`,
		"figures.tex":     "",
	})
	assert.Equal(t, []string{"sub/chapter.tex"}, uris(ws.Project(root+"sub/chapter.tex")))

	ws.SetRootDir("file:///project")
	assert.Equal(t, []string{"sub/chapter.tex", "figures.tex"}, uris(ws.Project(root+"sub/chapter.tex")))

	ws.SetRootDir("")
	assert.Equal(t, []string{"sub/chapter.tex"}, uris(ws.Project(root+"sub/chapter.tex")))
}

func TestProjectUnionOfRoots(t *testing.T) {
	ws := newWorkspace(t, map[string]string{
		"one.tex":    `\input{shared}`,
		"two.tex":    `\input{shared}\input{extra}`,
		"shared.tex": "",
		"extra.tex":  "",
	})

	project := ws.Project(root + "shared.tex")
	assert.Equal(t, []string{"shared.tex", "one.tex", "two.tex", "extra.tex"}, uris(project))
	assert.Empty(t, uris(ws.Project(root+"missing.tex")))
}

func TestProjectIsDeterministic(t *testing.T) {
	files := map[string]string{
		"main.tex": `\documentclass{book}\include{c1}\include{c2}`,
		"c1.tex":   `\label{x}`,
		"c2.tex":   `\ref{x}`,
	}
	first := uris(newWorkspace(t, files).Project(root + "c2.tex"))
	for range 10 {
		assert.Equal(t, first, uris(newWorkspace(t, files).Project(root+"c2.tex")))
	}
}

func TestSnapshotsAreImmutable(t *testing.T) {
	ws := newWorkspace(t, map[string]string{"a.tex": "old"})
	before := ws.Snapshot()

	_, ok := ws.Update(root+"a.tex", "new", 2)
	require.True(t, ok)
	ws.Close(root + "a.tex")

	doc, ok := before.Get(root + "a.tex")
	require.True(t, ok)
	assert.Equal(t, "old", doc.Text)

	_, ok = ws.Get(root + "a.tex")
	assert.False(t, ok)
	assert.Empty(t, ws.Documents())
}

func TestUpdateKeepsLanguage(t *testing.T) {
	ws := New(nil)
	_, ok := ws.Open("untitled:Untitled-1", "bibtex", "", 1)
	require.True(t, ok)

	doc, ok := ws.Update("untitled:Untitled-1", "@string{a = b}", 2)
	require.True(t, ok)
	assert.Equal(t, LanguageBib, doc.Language)
	assert.Equal(t, 2, doc.Version)
}

func TestDocumentsOrderedByURI(t *testing.T) {
	ws := newWorkspace(t, map[string]string{"c.tex": "", "a.tex": "", "b.bib": ""})

	var names []string
	for _, doc := range ws.Documents() {
		names = append(names, doc.URI[len(root):])
	}
	assert.Equal(t, []string{"a.tex", "b.bib", "c.tex"}, names)
}

func TestLineIndex(t *testing.T) {
	index := NewLineIndex("ab\r\nçd\n𝄞x\n")

	tests := []struct {
		offset   int
		position protocol.Position
	}{
		{0, protocol.Position{Line: 0, Character: 0}},
		{2, protocol.Position{Line: 0, Character: 2}},
		{4, protocol.Position{Line: 1, Character: 0}},
		{6, protocol.Position{Line: 1, Character: 1}},
		{7, protocol.Position{Line: 1, Character: 2}},
		{12, protocol.Position{Line: 2, Character: 2}},
		{14, protocol.Position{Line: 3, Character: 0}},
		{99, protocol.Position{Line: 3, Character: 0}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.position, index.Position(tt.offset), "offset %d", tt.offset)
	}

	offset, ok := index.Offset(protocol.Position{Line: 2, Character: 2})
	require.True(t, ok)
	assert.Equal(t, 12, offset)

	offset, ok = index.Offset(protocol.Position{Line: 0, Character: 50})
	require.True(t, ok)
	assert.Equal(t, 2, offset)

	_, ok = index.Offset(protocol.Position{Line: 4, Character: 0})
	assert.False(t, ok)
}

func TestLineIndexEmpty(t *testing.T) {
	index := NewLineIndex("")

	assert.Equal(t, protocol.Position{}, index.Position(0))
	offset, ok := index.Offset(protocol.Position{})
	require.True(t, ok)
	assert.Equal(t, 0, offset)
}
