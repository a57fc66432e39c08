package latex

import "github.com/texlsp/texlsp/internal/syntax"

// LabelName is a label key used by a label command.
type LabelName struct {
	Key Key
	// Definition is set for the name of a \label command.
	Definition bool
}

// LabelNames returns the label keys that node itself introduces: the name
// of a definition, every name of a reference list or both ends of a range
// reference, in source order. Other nodes yield nothing.
func LabelNames(node *syntax.Node) []LabelName {
	if def, ok := CastLabelDefinition(node); ok {
		if name, ok := def.Name(); ok {
			if key, ok := name.Key(); ok {
				return []LabelName{{Key: key, Definition: true}}
			}
		}
		return nil
	}

	if ref, ok := CastLabelReference(node); ok {
		list, ok := ref.NameList()
		if !ok {
			return nil
		}
		var names []LabelName
		for _, key := range list.Keys() {
			names = append(names, LabelName{Key: key})
		}
		return names
	}

	if ref, ok := CastLabelReferenceRange(node); ok {
		var names []LabelName
		for _, group := range []func() (CurlyGroupWord, bool){ref.From, ref.To} {
			if word, ok := group(); ok {
				if key, ok := word.Key(); ok {
					names = append(names, LabelName{Key: key})
				}
			}
		}
		return names
	}

	return nil
}

// CitationKeys returns the keys cited by node if it is a citation.
func CitationKeys(node *syntax.Node) []Key {
	citation, ok := CastCitation(node)
	if !ok {
		return nil
	}
	list, ok := citation.KeyList()
	if !ok {
		return nil
	}
	return list.Keys()
}
