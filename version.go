package iroiro

import (
	_ "embed"
)

// Version is the current release of IroIro.
//
//go:embed VERSION
var Version string
