package notebook

import "log/slog"

// DefaultIgnore hides dotfiles and everything below dot directories.
var DefaultIgnore = []string{"**/.*", "**/.*/**"}

// options holds the internal configuration for a Notebook.
type options struct {
	logger *slog.Logger
	ignore []string
}

// Option defines a functional option for configuring a Notebook.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		logger: slog.New(slog.DiscardHandler),
		ignore: DefaultIgnore,
	}
}

// WithLogger sets the logger used to report rejected paths at debug level.
// A nil logger keeps the default, which discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithIgnore replaces the ignore patterns.
// Patterns use doublestar syntax and are matched against the slash-separated
// path relative to the notes root (e.g. "drafts/**", "**/*.tmp.md").
// Calling it with no patterns makes dotfiles visible.
func WithIgnore(patterns ...string) Option {
	return func(o *options) {
		o.ignore = append([]string(nil), patterns...)
	}
}
