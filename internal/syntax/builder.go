package syntax

// Builder assembles a tree bottom-up from a stream of tokens. It is used by
// the grammar parsers only; the tree it returns is immutable.
type Builder struct {
	offset   int
	parents  []frame
	children []Element
}

type frame struct {
	kind  Kind
	first int
}

// Checkpoint marks a position in the token stream so that a node can later
// be started retroactively with StartNodeAt.
type Checkpoint int

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// StartNode opens a node of the given kind. Every following token or node
// becomes its child until the matching FinishNode.
func (b *Builder) StartNode(kind Kind) {
	b.parents = append(b.parents, frame{kind: kind, first: len(b.children)})
}

// Checkpoint returns the current position in the children stack.
func (b *Builder) Checkpoint() Checkpoint {
	return Checkpoint(len(b.children))
}

// StartNodeAt opens a node that adopts every element emitted since cp.
func (b *Builder) StartNodeAt(cp Checkpoint, kind Kind) {
	b.parents = append(b.parents, frame{kind: kind, first: int(cp)})
}

// Token appends a leaf. Empty text is ignored.
func (b *Builder) Token(kind Kind, text string) {
	if text == "" {
		return
	}
	b.children = append(b.children, &Token{
		kind: kind,
		rng:  TextRange{Start: b.offset, End: b.offset + len(text)},
		text: text,
	})
	b.offset += len(text)
}

// FinishNode closes the innermost open node.
func (b *Builder) FinishNode() {
	top := b.parents[len(b.parents)-1]
	b.parents = b.parents[:len(b.parents)-1]

	children := make([]Element, len(b.children)-top.first)
	copy(children, b.children[top.first:])
	b.children = b.children[:top.first]

	node := &Node{kind: top.kind, children: children}
	if len(children) > 0 {
		node.rng = TextRange{Start: children[0].Range().Start, End: children[len(children)-1].Range().End}
	} else {
		node.rng = TextRange{Start: b.offset, End: b.offset}
	}

	for _, child := range children {
		switch c := child.(type) {
		case *Node:
			c.parent = node
		case *Token:
			c.parent = node
		}
	}

	b.children = append(b.children, node)
}

// Finish returns the root node. The caller must have wrapped the whole input
// in exactly one StartNode/FinishNode pair.
func (b *Builder) Finish() *Node {
	for len(b.parents) > 0 {
		b.FinishNode()
	}
	if len(b.children) != 1 {
		panic("syntax: builder must produce exactly one root node")
	}
	return b.children[0].(*Node)
}
