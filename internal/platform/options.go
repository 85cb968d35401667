package platform

import (
	"log/slog"

	"github.com/SilverEzhik/IroIro/pkg/notebook"
)

// options holds the internal configuration for opening a notebook.
type options struct {
	logger    *slog.Logger
	ignore    []string
	ignoreSet bool
	discover  bool
}

// Option defines a functional option for configuring IroIro.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger:   nil,
		discover: false,
	}
}

// WithLogger sets the logger for the notebook.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithIgnore replaces the patterns of entries hidden from the notebook.
// Patterns use doublestar syntax and match paths relative to the notes root.
// Passing no patterns makes dotfiles visible.
func WithIgnore(patterns ...string) Option {
	return func(o *options) {
		o.ignore = patterns
		o.ignoreSet = true
	}
}

// WithDiscovery makes Open look upwards from the given path for the nearest
// directory containing a Notes folder.
func WithDiscovery(enabled bool) Option {
	return func(o *options) {
		o.discover = enabled
	}
}

// notebookOptions translates the platform options for the notebook package.
func (o *options) notebookOptions() []notebook.Option {
	var opts []notebook.Option
	if o.logger != nil {
		opts = append(opts, notebook.WithLogger(o.logger))
	}
	if o.ignoreSet {
		opts = append(opts, notebook.WithIgnore(o.ignore...))
	}
	return opts
}
