package syntax

import (
	"bytes"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	kindRoot Kind = iota
	kindGroup
	kindWord
	kindSpace
)

func kindName(k Kind) string {
	return [...]string{"ROOT", "GROUP", "WORD", "SPACE"}[k]
}

// buildSample builds "ab {cd ef}" as ROOT(WORD SPACE GROUP(WORD SPACE WORD)).
func buildSample() *Node {
	b := NewBuilder()
	b.StartNode(kindRoot)
	b.Token(kindWord, "ab")
	b.Token(kindSpace, " ")
	b.StartNode(kindGroup)
	b.Token(kindWord, "{cd")
	b.Token(kindSpace, " ")
	b.Token(kindWord, "ef}")
	b.FinishNode()
	b.FinishNode()
	return b.Finish()
}

func TestBuilderRangesAndText(t *testing.T) {
	root := buildSample()

	assert.Equal(t, TextRange{Start: 0, End: 10}, root.Range())
	assert.Equal(t, "ab {cd ef}", root.Text())

	group := root.FirstChild(kindGroup)
	require.NotNil(t, group)
	assert.Equal(t, TextRange{Start: 3, End: 10}, group.Range())
	assert.Same(t, root, group.Parent())
}

func TestDescendantsPreOrder(t *testing.T) {
	root := buildSample()

	var kinds []Kind
	for node := range root.Descendants() {
		kinds = append(kinds, node.Kind())
	}
	assert.Equal(t, []Kind{kindRoot, kindGroup}, kinds)

	// A fresh range restarts from the root.
	first := slices.Collect(root.Descendants())
	second := slices.Collect(root.Descendants())
	assert.Equal(t, first, second)
}

func TestDescendantsStopEarly(t *testing.T) {
	root := buildSample()

	visited := 0
	for range root.Descendants() {
		visited++
		break
	}
	assert.Equal(t, 1, visited)
}

func TestTokensAtOffset(t *testing.T) {
	root := buildSample()

	tests := []struct {
		name     string
		offset   int
		expected []string
	}{
		{name: "start of tree", offset: 0, expected: []string{"ab"}},
		{name: "inside token", offset: 1, expected: []string{"ab"}},
		{name: "boundary", offset: 2, expected: []string{"ab", " "}},
		{name: "boundary into nested node", offset: 3, expected: []string{" ", "{cd"}},
		{name: "end of tree", offset: 10, expected: []string{"ef}"}},
		{name: "outside", offset: 11, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var texts []string
			for _, token := range root.TokensAtOffset(tt.offset) {
				texts = append(texts, token.Text())
			}
			assert.Equal(t, tt.expected, texts)
		})
	}
}

func TestEmptyTree(t *testing.T) {
	b := NewBuilder()
	b.StartNode(kindRoot)
	b.FinishNode()
	root := b.Finish()

	assert.Equal(t, 0, root.Range().Len())
	assert.Empty(t, root.TokensAtOffset(0))
	assert.Equal(t, "", root.Text())
}

func TestTokenParents(t *testing.T) {
	root := buildSample()

	tokens := slices.Collect(root.DescendantTokens())
	require.Len(t, tokens, 5)

	assert.Same(t, root, tokens[0].Parent())
	cd := tokens[2]
	assert.Equal(t, kindGroup, cd.Parent().Kind())
	assert.Same(t, root, cd.Parent().Parent())
	assert.Nil(t, root.Parent())
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, buildSample(), kindName))

	assert.Contains(t, buf.String(), "ROOT@0..10\n")
	assert.Contains(t, buf.String(), "    WORD@3..6 \"{cd\"\n")

	view := Debug(buildSample(), kindName)
	assert.Equal(t, "ROOT", view.Kind)
	require.Len(t, view.Children, 3)
	assert.Equal(t, "ab", view.Children[0].Text)
}

func TestTextRange(t *testing.T) {
	r := TextRange{Start: 2, End: 5}

	assert.True(t, r.ContainsInclusive(2))
	assert.True(t, r.ContainsInclusive(5))
	assert.False(t, r.ContainsInclusive(6))
	assert.Equal(t, 3, r.Len())
}
