package syntax

import (
	"fmt"
	"io"
	"strconv"
)

// KindNamer maps a grammar kind to a human readable name.
type KindNamer func(Kind) string

// Dump writes an indented outline of the tree, one element per line.
func Dump(w io.Writer, root *Node, name KindNamer) error {
	return dump(w, root, name, "")
}

func dump(w io.Writer, element Element, name KindNamer, indent string) error {
	rng := element.Range()
	switch e := element.(type) {
	case *Token:
		_, err := fmt.Fprintf(w, "%s%s@%d..%d %s\n", indent, name(e.kind), rng.Start, rng.End, strconv.Quote(e.text))
		return err
	case *Node:
		if _, err := fmt.Fprintf(w, "%s%s@%d..%d\n", indent, name(e.kind), rng.Start, rng.End); err != nil {
			return err
		}
		for _, child := range e.children {
			if err := dump(w, child, name, indent+"  "); err != nil {
				return err
			}
		}
	}
	return nil
}

// DebugElement is a serializable view of a tree element.
type DebugElement struct {
	Kind     string         `json:"kind"`
	Start    int            `json:"start"`
	End      int            `json:"end"`
	Text     string         `json:"text,omitempty"`
	Children []DebugElement `json:"children,omitempty"`
}

// Debug converts the tree into its serializable view.
func Debug(element Element, name KindNamer) DebugElement {
	rng := element.Range()
	view := DebugElement{Kind: name(element.Kind()), Start: rng.Start, End: rng.End}
	switch e := element.(type) {
	case *Token:
		view.Text = e.text
	case *Node:
		for _, child := range e.children {
			view.Children = append(view.Children, Debug(child, name))
		}
	}
	return view
}
