package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SilverEzhik/IroIro/pkg/notebook"
)

// ErrRootNotFound is returned when no notebook encloses the start directory.
var ErrRootNotFound = errors.New("notebook root not found")

// FindRoot recursively looks upwards for a notebook root.
// A notebook root is a directory containing a Notes directory. Starting
// inside a Notes tree finds the notebook that owns it, even when a folder
// inside that tree has its own Notes subfolder: the outermost Notes ancestor
// wins. Outside any Notes tree the nearest enclosing notebook is returned.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	var nearest, owner string
	dir := abs
	for {
		if nearest == "" && isDir(filepath.Join(dir, notebook.NotesDir)) {
			nearest = dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		if filepath.Base(dir) == notebook.NotesDir && isDir(dir) {
			owner = parent
		}
		dir = parent
	}

	switch {
	case owner != "":
		return owner, nil
	case nearest != "":
		return nearest, nil
	}
	return "", fmt.Errorf("%w: %s", ErrRootNotFound, startDir)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
