package notebook

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// NotesDir is the name of the notes root inside a notebook.
const NotesDir = "Notes"

// Notebook is a read-only view over a notebook directory.
// It is safe for concurrent use; nothing in it changes after Open.
type Notebook struct {
	notebookPath string
	notesPath    string
	ignore       []string
	logger       *slog.Logger
}

// Open creates a Notebook rooted at the given directory.
// The root is canonicalized; the Notes subdirectory does not need to exist yet.
func Open(root string, opts ...Option) (*Notebook, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	for _, p := range o.ignore {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", p, doublestar.ErrBadPattern)
		}
	}

	path, err := canonicalize(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, root)
	}

	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, root)
	}

	return &Notebook{
		notebookPath: path,
		notesPath:    filepath.Join(path, NotesDir),
		ignore:       o.ignore,
		logger:       o.logger,
	}, nil
}

// Path returns the canonical notebook root.
func (n *Notebook) Path() string {
	return n.notebookPath
}

// NotesPath returns the notes root. No item ever resolves outside of it.
func (n *Notebook) NotesPath() string {
	return n.notesPath
}

// Root returns the item for the notes root.
// It reports false when the Notes directory does not exist.
func (n *Notebook) Root() (Item, bool) {
	return n.GetItem("")
}

// ToFSPath resolves a candidate path to a canonical absolute path inside the
// notes root. Relative candidates are taken relative to the notes root;
// absolute ones are used as given and checked the same way.
func (n *Notebook) ToFSPath(candidate string) (string, bool) {
	abs := candidate
	if !filepath.IsAbs(candidate) {
		// Not filepath.Join: "link/.." must climb out of the link target,
		// not out of the link itself.
		abs = n.notesPath + string(filepath.Separator) + candidate
	}

	// Symlinks are followed before the check, so a link pointing out of the
	// notes root is rejected like any other escape.
	resolved, err := canonicalize(abs)
	if err != nil {
		n.logger.Debug("path does not resolve", "path", candidate, "error", err)
		return "", false
	}

	if !n.contains(resolved) {
		n.logger.Debug("path escapes notes root", "path", candidate)
		return "", false
	}

	if _, ok := fileStem(resolved); !ok {
		return "", false
	}

	return resolved, true
}

// GetItem resolves a candidate path into an Item.
// Regular files are visible only with the "md" extension.
func (n *Notebook) GetItem(candidate string) (Item, bool) {
	fsPath, ok := n.ToFSPath(candidate)
	if !ok {
		return Item{}, false
	}

	name, _ := fileStem(fsPath)

	rel, err := filepath.Rel(n.notesPath, fsPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return Item{}, false
	}
	if rel == "." {
		rel = ""
	}

	if n.ignored(rel) {
		n.logger.Debug("path is ignored", "path", rel)
		return Item{}, false
	}

	info, err := os.Stat(fsPath)
	if err != nil {
		// Removed between resolution and stat.
		n.logger.Debug("entry vanished", "path", rel, "error", err)
		return Item{}, false
	}

	// Only regular files are held to the extension; other entries that are
	// not folders (FIFOs, sockets, devices) show up as plain items.
	if info.Mode().IsRegular() && fileExt(fsPath) != "md" {
		n.logger.Debug("not a markdown file", "path", rel)
		return Item{}, false
	}

	return Item{
		Name:     name,
		Path:     rel,
		IsFolder: info.IsDir(),
		notebook: n,
	}, true
}

// Parent returns the folder containing item.
// It reports false for the notes root, for items resolved by another
// notebook and when the parent no longer resolves.
func (n *Notebook) Parent(item Item) (Item, bool) {
	if item.notebook != n || item.Path == "" {
		return Item{}, false
	}

	parent := filepath.Dir(item.Path)
	if parent == "." {
		parent = ""
	}

	return n.GetItem(parent)
}

// contains reports whether path is the notes root or lies below it.
// The comparison is per path component, so "NotesArchive" is not inside "Notes".
func (n *Notebook) contains(path string) bool {
	if path == n.notesPath {
		return true
	}
	prefix := n.notesPath
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(path, prefix)
}

func (n *Notebook) ignored(rel string) bool {
	if rel == "" {
		return false
	}
	slashed := filepath.ToSlash(rel)
	for _, pattern := range n.ignore {
		// Patterns are validated in Open, so the error is always nil.
		if ok, _ := doublestar.Match(pattern, slashed); ok {
			return true
		}
	}
	return false
}

// canonicalize resolves path the way the OS would open it. The path is not
// cleaned beforehand; EvalSymlinks applies each ".." to the already resolved
// prefix.
func canonicalize(path string) (string, error) {
	if !filepath.IsAbs(path) {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		path = wd + string(filepath.Separator) + path
	}
	return filepath.EvalSymlinks(path)
}

// fileStem returns the base name without its extension.
// A leading dot does not start an extension: ".hidden" is its own stem.
func fileStem(path string) (string, bool) {
	base := filepath.Base(path)
	if base == string(filepath.Separator) || base == "." || base == ".." {
		return "", false
	}
	ext := filepath.Ext(base)
	if ext == base {
		return base, true
	}
	return strings.TrimSuffix(base, ext), true
}

// fileExt returns the extension without the dot, or "" when there is none.
func fileExt(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == base {
		return ""
	}
	return strings.TrimPrefix(ext, ".")
}
