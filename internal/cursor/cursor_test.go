package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/texlsp/texlsp/internal/lsp/protocol"
	"github.com/texlsp/texlsp/internal/syntax"
	"github.com/texlsp/texlsp/internal/workspace/workspacetest"
)

func at(t *testing.T, name, text string, line, character int) *Context {
	t.Helper()
	fixture := workspacetest.New(t, workspacetest.File{Name: name, Text: text})
	return New(fixture.Document(name), fixture.Project(name), protocol.Position{Line: line, Character: character})
}

func TestTokenSelection(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		offset   int
		expected string
	}{
		{"inside word", `\ref{foo}`, 6, "foo"},
		{"word beats closing brace", `\ref{foo}`, 8, "foo"},
		{"word beats opening brace", `\ref{foo}`, 5, "foo"},
		{"command beats brace", `\label{foo}`, 6, `\label`},
		{"word beats whitespace", "a b", 1, "a"},
		{"tie goes right", "{}", 1, "}"},
		{"end of text", "abc", 3, "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixture := workspacetest.New(t, workspacetest.File{Name: "main.tex", Text: tt.text})
			c := NewAtOffset(fixture.Document("main.tex"), fixture.Project("main.tex"), tt.offset)
			require.NotNil(t, c.Token)
			assert.Equal(t, tt.expected, c.Token.Text())
		})
	}
}

func TestEmptyDocument(t *testing.T) {
	for _, name := range []string{"main.tex", "refs.bib"} {
		c := at(t, name, "", 0, 0)
		assert.Nil(t, c.Token)

		_, ok := c.FindLabelNameWord()
		assert.False(t, ok)
		_, ok = c.FindLabelNameCommand()
		assert.False(t, ok)
		_, ok = c.FindCitationKeyWord()
		assert.False(t, ok)
		_, ok = c.FindCitationKeyCommand()
		assert.False(t, ok)
		_, ok = c.FindEntryKey()
		assert.False(t, ok)
		_, ok = c.FindStringReference()
		assert.False(t, ok)
	}
}

func TestInvalidPosition(t *testing.T) {
	c := at(t, "main.tex", `\label{foo}`, 3, 0)
	assert.Nil(t, c.Token)
}

func TestFindLabelNameWord(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		character int
		expected  Key
		ok        bool
	}{
		{"definition", `\label{foo}`, 8, Key{"foo", syntax.TextRange{Start: 7, End: 10}}, true},
		{"reference", `\ref{foo}`, 5, Key{"foo", syntax.TextRange{Start: 5, End: 8}}, true},
		{"second key in list", `\cref{foo,bar}`, 11, Key{"bar", syntax.TextRange{Start: 10, End: 13}}, true},
		{"key with spaces", `\ref{my label}`, 6, Key{"my label", syntax.TextRange{Start: 5, End: 13}}, true},
		{"range end", `\crefrange{a}{b}`, 14, Key{"b", syntax.TextRange{Start: 14, End: 15}}, true},
		{"citation is not a label", `\cite{foo}`, 7, Key{}, false},
		{"plain text", `foo`, 1, Key{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := at(t, "main.tex", tt.text, 0, tt.character).FindLabelNameWord()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, key)
		})
	}
}

func TestFindLabelNameCommand(t *testing.T) {
	key, ok := at(t, "main.tex", `\label{foo}`, 0, 2).FindLabelNameCommand()
	require.True(t, ok)
	assert.Equal(t, Key{"foo", syntax.TextRange{Start: 7, End: 10}}, key)

	key, ok = at(t, "main.tex", `\ref{foo,bar}`, 0, 2).FindLabelNameCommand()
	require.True(t, ok)
	assert.Equal(t, "foo", key.Text)

	key, ok = at(t, "main.tex", `\crefrange{a}{b}`, 0, 2).FindLabelNameCommand()
	require.True(t, ok)
	assert.Equal(t, "a", key.Text)

	_, ok = at(t, "main.tex", `\label`, 0, 2).FindLabelNameCommand()
	assert.False(t, ok)
	_, ok = at(t, "main.tex", `\textbf{foo}`, 0, 2).FindLabelNameCommand()
	assert.False(t, ok)
}

func TestFindCitationKey(t *testing.T) {
	c := at(t, "main.tex", `\cite[p. 1]{foo, bar}`, 0, 18)
	key, ok := c.FindCitationKeyWord()
	require.True(t, ok)
	assert.Equal(t, Key{"bar", syntax.TextRange{Start: 17, End: 20}}, key)
	_, ok = c.FindLabelNameWord()
	assert.False(t, ok)

	key, ok = at(t, "main.tex", `\cite{foo, bar}`, 0, 3).FindCitationKeyCommand()
	require.True(t, ok)
	assert.Equal(t, "foo", key.Text)

	_, ok = at(t, "main.tex", `\ref{foo}`, 0, 6).FindCitationKeyWord()
	assert.False(t, ok)
}

func TestFindEntryKeyAndStringReference(t *testing.T) {
	text := "@string{jan = \"January\"}\n@article{foo, month = jan}"

	c := at(t, "refs.bib", text, 1, 10)
	key, ok := c.FindEntryKey()
	require.True(t, ok)
	assert.Equal(t, "foo", key.Text)
	_, ok = c.FindStringReference()
	assert.False(t, ok)

	c = at(t, "refs.bib", text, 1, 23)
	key, ok = c.FindStringReference()
	require.True(t, ok)
	assert.Equal(t, "jan", key.Text)
	_, ok = c.FindEntryKey()
	assert.False(t, ok)

	c = at(t, "refs.bib", text, 0, 9)
	key, ok = c.FindStringReference()
	require.True(t, ok)
	assert.Equal(t, Key{"jan", syntax.TextRange{Start: 8, End: 11}}, key)

	// Field names share the NAME kind but are neither.
	c = at(t, "refs.bib", text, 1, 16)
	_, ok = c.FindStringReference()
	assert.False(t, ok)
	_, ok = c.FindEntryKey()
	assert.False(t, ok)
}

func TestPredicatesRespectDocumentLanguage(t *testing.T) {
	// LaTeX and BibTeX kind values overlap; a LaTeX word
	// must never be taken for a BibTeX name and vice versa.
	_, ok := at(t, "main.tex", `\ref{foo}`, 0, 6).FindEntryKey()
	assert.False(t, ok)

	_, ok = at(t, "refs.bib", "@article{foo,}", 0, 10).FindLabelNameWord()
	assert.False(t, ok)
}
