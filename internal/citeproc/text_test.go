package citeproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/texlsp/texlsp/internal/syntax/bibtex"
)

func firstStringValue(t *testing.T, text string) bibtex.Value {
	t.Helper()
	root := bibtex.Parse(text)
	for node := range root.Descendants() {
		if def, ok := bibtex.CastStringDef(node); ok {
			value, ok := def.Value()
			require.True(t, ok)
			return value
		}
	}
	t.Fatalf("no string definition in %q", text)
	return bibtex.Value{}
}

func TestParseText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"quoted", `@string{foo = "Bar"}`, "Bar"},
		{"curly", `@string{foo = {Bar Baz}}`, "Bar Baz"},
		{"literal", `@string{foo = 1984}`, "1984"},
		{"nested groups", `@string{foo = {The {TeX}book}}`, "The TeXbook"},
		{"whitespace collapses", "@string{foo = {  a \n\t b  }}", "a b"},
		{"concatenation", `@string{foo = "Jan" # {uary} # " 1st"}`, "January 1st"},
		{"accent", `@string{foo = {G\"odel}}`, "Gödel"},
		{"braced accent", `@string{foo = {Erd\H{o}s}}`, "Erdős"},
		{"letter accent swallows space", `@string{foo = {\v s}}`, "š"},
		{"symbol", `@string{foo = {Stra\ss e \& Co}}`, "Straße & Co"},
		{"dash ligature", `@string{foo = {1--10}}`, "1–10"},
		{"unknown command is dropped", `@string{foo = {\textbf{Bold}}}`, "Bold"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, ok := ParseText(firstStringValue(t, tt.input))
			require.True(t, ok)
			assert.Equal(t, tt.expected, text)
		})
	}
}

func TestParseTextEmpty(t *testing.T) {
	_, ok := ParseText(firstStringValue(t, `@string{foo = {  }}`))
	assert.False(t, ok)

	_, ok = ParseText(bibtex.Value{})
	assert.False(t, ok)
}
