// Package workspacetest builds in-memory workspaces for tests.
package workspacetest

import (
	"testing"

	"github.com/texlsp/texlsp/internal/workspace"
)

// Root is the directory URI every fixture document lives under.
const Root = "file:///texlsp/"

// File is a document of a fixture, named relative to Root.
type File struct {
	Name string
	Text string
}

// Fixture is a workspace populated from files.
type Fixture struct {
	t         testing.TB
	Workspace *workspace.Workspace
}

// URI returns the URI of a fixture file.
func URI(name string) string {
	return Root + name
}

// New opens every file in a fresh workspace with the default configuration.
func New(t testing.TB, files ...File) *Fixture {
	t.Helper()

	ws := workspace.New(nil)
	for _, file := range files {
		if _, ok := ws.Open(URI(file.Name), "", file.Text, 0); !ok {
			t.Fatalf("workspacetest: unsupported file %q", file.Name)
		}
	}
	return &Fixture{t: t, Workspace: ws}
}

// Document returns the parsed document of a fixture file.
func (f *Fixture) Document(name string) *workspace.Document {
	f.t.Helper()

	doc, ok := f.Workspace.Get(URI(name))
	if !ok {
		f.t.Fatalf("workspacetest: no document %q", name)
	}
	return doc
}

// Project returns the project of a fixture file.
func (f *Fixture) Project(name string) *workspace.Project {
	f.t.Helper()
	return f.Workspace.Project(URI(name))
}
