package notebook

import (
	"os"
	"slices"

	"github.com/aretw0/introspection"
)

// NotebookState exposes the notebook configuration for observability.
type NotebookState struct {
	NotebookPath string   `json:"notebook_path" yaml:"notebook_path"`
	NotesPath    string   `json:"notes_path" yaml:"notes_path"`
	NotesPresent bool     `json:"notes_present" yaml:"notes_present"`
	Ignore       []string `json:"ignore" yaml:"ignore"`
}

// State implements introspection.Introspectable.
func (n *Notebook) State() any {
	info, err := os.Stat(n.notesPath)

	return NotebookState{
		NotebookPath: n.notebookPath,
		NotesPath:    n.notesPath,
		NotesPresent: err == nil && info.IsDir(),
		Ignore:       slices.Clone(n.ignore),
	}
}

// ComponentType implements introspection.Component.
func (n *Notebook) ComponentType() string {
	return "notebook"
}

var _ introspection.Introspectable = (*Notebook)(nil)
var _ introspection.Component = (*Notebook)(nil)
