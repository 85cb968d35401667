package notebook

import "errors"

// Common errors.
var (
	ErrNotADirectory = errors.New("notebook path is not a directory")
)
