package latex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/texlsp/texlsp/internal/config"
	"github.com/texlsp/texlsp/internal/syntax"
)

func parse(text string) *syntax.Node {
	return Parse(text, &config.Default().Syntax)
}

func dump(t *testing.T, root *syntax.Node) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, syntax.Dump(&sb, root, KindName))
	return sb.String()
}

func TestParseIsLossless(t *testing.T) {
	inputs := []string{
		"",
		`\label{foo}`,
		`\ref{foo}\input{foo.tex}`,
		"\\documentclass[a4paper]{article}\n\\begin{document}\n% comment\nHello {world} [x] (y), a=b\n\\end{document}\n",
		`\cite[p.~1][see]{a, b ,c}`,
		`\crefrange{a}{b}`,
		`}}} ]] \label{unterminated`,
		`\\ \% \`,
		"\\label\n{spaced}\r\n",
		"ünïcödé \\ref{ключ}",
		"\\begin{verbatim}%\\end{verbatim}\\end{verbatim}",
		"\\begin {lstlisting}\n\\cite{a",
	}

	for _, input := range inputs {
		root := parse(input)
		assert.Equal(t, input, root.Text(), "input %q", input)
		assert.Equal(t, syntax.TextRange{Start: 0, End: len(input)}, root.Range())
	}
}

func TestParseLabelDefinition(t *testing.T) {
	root := parse(`\label{foo}`)

	var def LabelDefinition
	found := false
	for node := range root.Descendants() {
		if d, ok := CastLabelDefinition(node); ok {
			def, found = d, true
		}
	}
	require.True(t, found, dump(t, root))

	assert.Equal(t, `\label`, def.Syntax().FirstToken(CommandName).Text())
	name, ok := def.Name()
	require.True(t, ok)
	key, ok := name.Key()
	require.True(t, ok)
	assert.Equal(t, "foo", key.Text())
	assert.Equal(t, syntax.TextRange{Start: 7, End: 10}, key.Range())
}

func TestParseLabelReferenceList(t *testing.T) {
	root := parse(`\cref{a, b c,d}`)

	var keys []string
	for node := range root.Descendants() {
		if ref, ok := CastLabelReference(node); ok {
			list, ok := ref.NameList()
			require.True(t, ok)
			for _, key := range list.Keys() {
				keys = append(keys, key.Text())
			}
		}
	}
	assert.Equal(t, []string{"a", "b c", "d"}, keys)
}

func TestParseLabelReferenceRange(t *testing.T) {
	root := parse(`\crefrange{first}{last}`)

	for node := range root.Descendants() {
		rng, ok := CastLabelReferenceRange(node)
		if !ok {
			continue
		}
		from, ok := rng.From()
		require.True(t, ok)
		to, ok := rng.To()
		require.True(t, ok)

		fromKey, _ := from.Key()
		toKey, _ := to.Key()
		assert.Equal(t, "first", fromKey.Text())
		assert.Equal(t, "last", toKey.Text())
		return
	}
	t.Fatalf("no range reference in\n%s", dump(t, root))
}

func TestParseCitationWithOptions(t *testing.T) {
	root := parse(`\cite[p.~1][see]{knuth, lamport}`)

	var keys []Key
	for node := range root.Descendants() {
		if citation, ok := CastCitation(node); ok {
			list, ok := citation.KeyList()
			require.True(t, ok)
			keys = list.Keys()
		}
	}
	require.Len(t, keys, 2)
	assert.Equal(t, "knuth", keys[0].Text())
	assert.Equal(t, "lamport", keys[1].Text())
	assert.Equal(t, syntax.TextRange{Start: 24, End: 31}, keys[1].Range())
}

func TestParseIncludes(t *testing.T) {
	root := parse("\\documentclass{article}\n\\input{chapters/intro}\n\\bibliography{refs,more}")

	var kinds []syntax.Kind
	var paths []string
	for node := range root.Descendants() {
		if include, ok := CastInclude(node); ok {
			kinds = append(kinds, node.Kind())
			for _, path := range include.Paths() {
				paths = append(paths, path.Text())
			}
		}
	}
	assert.Equal(t, []syntax.Kind{ClassIncludeNode, IncludeNode, BibliographyIncludeNode}, kinds)
	assert.Equal(t, []string{"article", "chapters/intro", "refs", "more"}, paths)
}

func TestParseMissingArgumentIsAbsent(t *testing.T) {
	root := parse(`\label \ref`)

	for node := range root.Descendants() {
		if def, ok := CastLabelDefinition(node); ok {
			_, ok := def.Name()
			assert.False(t, ok)
		}
		if ref, ok := CastLabelReference(node); ok {
			_, ok := ref.NameList()
			assert.False(t, ok)
		}
	}
}

func TestParseGenericCommandAndCustomConfig(t *testing.T) {
	custom, err := config.Parse([]byte("syntax:\n  labelReferenceCommands: [myref]\n"))
	require.NoError(t, err)

	defaultTree := Parse(`\myref{foo}`, &config.Default().Syntax)
	customTree := Parse(`\myref{foo}`, &custom.Syntax)

	assert.Contains(t, dump(t, defaultTree), "GENERIC_COMMAND")
	assert.Contains(t, dump(t, customTree), "LABEL_REFERENCE")
}

func nodeKinds(root *syntax.Node) []syntax.Kind {
	var kinds []syntax.Kind
	for node := range root.Descendants() {
		kinds = append(kinds, node.Kind())
	}
	return kinds
}

func keyTexts(keys []Key) []string {
	var texts []string
	for _, key := range keys {
		texts = append(texts, key.Text())
	}
	return texts
}

func TestParseVerbatimEnvironment(t *testing.T) {
	input := "\\begin{verbatim}\\label{foo} % \\end{verbatim}\n\\ref{foo}"
	root := parse(input)
	require.Equal(t, input, root.Text())

	kinds := nodeKinds(root)
	assert.Contains(t, kinds, VerbatimEnvironmentNode)
	assert.Contains(t, kinds, LabelReferenceNode)
	assert.NotContains(t, kinds, LabelDefinitionNode, dump(t, root))

	env := root.FirstChild(VerbatimEnvironmentNode)
	require.NotNil(t, env)
	assert.Equal(t, "\\begin{verbatim}\\label{foo} % \\end{verbatim}", env.Text())
	body := env.FirstToken(VerbatimText)
	require.NotNil(t, body)
	assert.Equal(t, `\label{foo} % `, body.Text())
	assert.Equal(t, syntax.TextRange{Start: 16, End: 30}, body.Range())
}

func TestParseVerbatimEnvironmentEdgeCases(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		citations []string
	}{
		{name: "unterminated", input: "\\begin {lstlisting}\n\\cite{a}\n", citations: nil},
		{name: "other end", input: `\begin{minted}{python}\end{verbatim}\cite{a}\end{minted}\cite{b}`, citations: []string{"b"}},
		{name: "regular environment", input: `\begin{document}\cite{a}\end{document}`, citations: []string{"a"}},
		{name: "empty body", input: `\begin{asy}\end{asy}\cite{a}`, citations: []string{"a"}},
		{name: "inside group", input: `{\begin{pycode}}\cite{a}\end{pycode}}\cite{b}`, citations: []string{"b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := parse(tt.input)
			assert.Equal(t, tt.input, root.Text())

			var citations []string
			for node := range root.Descendants() {
				citations = append(citations, keyTexts(CitationKeys(node))...)
			}
			assert.Equal(t, tt.citations, citations, dump(t, root))
		})
	}
}

func TestParseVerbatimEnvironmentFromConfig(t *testing.T) {
	custom, err := config.Parse([]byte("syntax:\n  verbatimEnvironments: [code]\n"))
	require.NoError(t, err)

	input := `\begin{code}\ref{x}\end{code}`
	assert.Contains(t, nodeKinds(Parse(input, &config.Default().Syntax)), LabelReferenceNode)
	assert.NotContains(t, nodeKinds(Parse(input, &custom.Syntax)), LabelReferenceNode)
}

func TestCastRejectsOtherKinds(t *testing.T) {
	root := parse(`\ref{foo}`)

	_, ok := CastLabelDefinition(root)
	assert.False(t, ok)
	_, ok = CastCitation(nil)
	assert.False(t, ok)
	_, ok = CastInclude(root)
	assert.False(t, ok)
}
