package notebook

import (
	"os"
	"path/filepath"
	"slices"
)

// Item is a folder or markdown note inside a notebook.
// It is a snapshot taken when it was resolved; the entry may be gone by the
// time it is used. Children and parents are looked up again on every call.
type Item struct {
	Name     string // Base name without extension
	Path     string // Relative to the notes root, "" for the root itself
	IsFolder bool

	notebook *Notebook
}

// Notebook returns the notebook the item was resolved from.
func (i Item) Notebook() *Notebook {
	return i.notebook
}

// FSPath re-resolves the item to its absolute path on disk.
func (i Item) FSPath() (string, bool) {
	if i.notebook == nil {
		return "", false
	}
	return i.notebook.ToFSPath(i.Path)
}

// Parent returns the folder containing the item.
func (i Item) Parent() (Item, bool) {
	if i.notebook == nil {
		return Item{}, false
	}
	return i.notebook.Parent(i)
}

// Children lists the visible entries of a folder in natural order.
// Files, stale folders and unreadable directories yield an empty list.
func (i Item) Children() []Item {
	if !i.IsFolder {
		return nil
	}

	dir, ok := i.FSPath()
	if !ok {
		return nil
	}

	f, err := os.Open(dir)
	if err != nil {
		i.notebook.logger.Debug("cannot open folder", "path", i.Path, "error", err)
		return nil
	}
	defer f.Close()

	// ReadDir returns whatever it managed to read alongside the error, and a
	// regular file fails here with ENOTDIR.
	entries, err := f.ReadDir(-1)
	if err != nil {
		i.notebook.logger.Debug("partial folder listing", "path", i.Path, "error", err)
	}

	var children []Item
	for _, entry := range entries {
		child, ok := i.notebook.GetItem(filepath.Join(dir, entry.Name()))
		if !ok {
			continue
		}
		children = append(children, child)
	}

	slices.SortFunc(children, func(a, b Item) int {
		return CompareNames(a.Name, b.Name)
	})

	return children
}
