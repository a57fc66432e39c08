package syntax

// TokensAtOffset returns the tokens touching offset in source order. The
// result has no element when the offset is outside the tree, one element when
// a token strictly contains it (or it sits at the tree's very start or end),
// and two elements when it sits on the boundary between two tokens.
func (n *Node) TokensAtOffset(offset int) []*Token {
	if !n.rng.ContainsInclusive(offset) {
		return nil
	}

	var tokens []*Token
	n.collectAtOffset(offset, &tokens)
	return tokens
}

func (n *Node) collectAtOffset(offset int, tokens *[]*Token) {
	for _, child := range n.children {
		rng := child.Range()
		if rng.Start > offset {
			return
		}
		if !rng.ContainsInclusive(offset) {
			continue
		}
		switch c := child.(type) {
		case *Token:
			*tokens = append(*tokens, c)
		case *Node:
			c.collectAtOffset(offset, tokens)
		}
	}
}
