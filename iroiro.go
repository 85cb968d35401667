package iroiro

import (
	"log/slog"

	"github.com/SilverEzhik/IroIro/internal/platform"
	"github.com/SilverEzhik/IroIro/pkg/notebook"
)

// --- Types ---

// Notebook is a public alias for the notebook type.
type Notebook = notebook.Notebook

// Item is a public alias for a resolved notebook entry.
type Item = notebook.Item

// --- Configuration ---

// Option defines a functional option for configuring IroIro.
type Option = platform.Option

// WithLogger sets the logger for the notebook.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithIgnore replaces the doublestar patterns of hidden entries.
func WithIgnore(patterns ...string) Option {
	return platform.WithIgnore(patterns...)
}

// WithDiscovery makes Open search upwards for the notebook root.
func WithDiscovery(enabled bool) Option {
	return platform.WithDiscovery(enabled)
}

// --- Factory ---

// Open opens the notebook rooted at path.
func Open(path string, opts ...Option) (*Notebook, error) {
	return platform.Open(path, opts...)
}

// --- Utils ---

// FindNotebookRoot recursively looks upwards for a directory containing Notes.
func FindNotebookRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}
