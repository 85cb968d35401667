package platform

import (
	"github.com/SilverEzhik/IroIro/pkg/notebook"
)

// Open opens the notebook at path.
//
//	nb, err := iroiro.Open("./my-notebook", iroiro.WithLogger(logger))
//
// With discovery enabled, path may be any directory inside the notebook.
func Open(path string, opts ...Option) (*notebook.Notebook, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.discover {
		root, err := FindRoot(path)
		if err != nil {
			return nil, err
		}
		path = root
	}

	nb, err := notebook.Open(path, o.notebookOptions()...)
	if err != nil {
		return nil, err
	}

	if o.logger != nil {
		o.logger.Debug("notebook opened", "path", nb.Path(), "notes", nb.NotesPath())
	}

	return nb, nil
}
