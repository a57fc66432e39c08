package workspace

import "slices"

// Project is the set of documents connected to a document through include
// directives. It borrows the documents of the snapshot it was derived from.
type Project struct {
	// Documents lists the requested document first, followed by the other
	// members in breadth-first order from the project roots.
	Documents []*Document
}

// Project derives the project of the document at uri. Root candidates are
// LaTeX documents that declare a document class or that no other document
// includes. The project is the union of every candidate's include closure
// that reaches uri; without such a candidate it holds only the document
// itself. An unknown uri yields an empty project.
func (s *Snapshot) Project(uri string) *Project {
	doc, ok := s.documents[uri]
	if !ok {
		return &Project{}
	}

	edges := s.includeEdges()
	included := map[string]bool{}
	for _, targets := range edges {
		for _, target := range targets {
			included[target] = true
		}
	}

	documents := []*Document{doc}
	visited := map[string]bool{uri: true}
	for _, root := range s.Documents() {
		data, ok := root.Data.(*TexData)
		if !ok || (!data.CanBeRoot && included[root.URI]) {
			continue
		}

		closure := s.closure(root.URI, edges)
		if !slices.Contains(closure, uri) {
			continue
		}
		for _, member := range closure {
			if !visited[member] {
				visited[member] = true
				documents = append(documents, s.documents[member])
			}
		}
	}
	return &Project{Documents: documents}
}

// closure returns the documents reachable from start in breadth-first order,
// start included.
func (s *Snapshot) closure(start string, edges map[string][]string) []string {
	order := []string{start}
	seen := map[string]bool{start: true}
	for i := 0; i < len(order); i++ {
		for _, target := range edges[order[i]] {
			if !seen[target] {
				seen[target] = true
				order = append(order, target)
			}
		}
	}
	return order
}

// includeEdges resolves the links of every LaTeX document to documents of
// the snapshot, keeping source order.
func (s *Snapshot) includeEdges() map[string][]string {
	s.edgesOnce.Do(func() { s.edges = s.resolveEdges() })
	return s.edges
}

func (s *Snapshot) resolveEdges() map[string][]string {
	edges := map[string][]string{}
	for uri, doc := range s.documents {
		data, ok := doc.Data.(*TexData)
		if !ok {
			continue
		}
		for _, link := range data.Links {
			if target, ok := s.resolve(uri, link); ok && target != uri {
				edges[uri] = append(edges[uri], target)
			}
		}
	}
	return edges
}

func (s *Snapshot) resolve(base string, link Link) (string, bool) {
	candidates := link.Candidates(base)
	if s.rootDir != "" {
		candidates = append(candidates, link.Candidates(s.rootDir)...)
	}
	for _, candidate := range candidates {
		if _, ok := s.documents[candidate]; ok {
			return candidate, true
		}
	}
	return "", false
}
