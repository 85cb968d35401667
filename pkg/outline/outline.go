// Package outline renders a notebook folder as an indented tree or as
// structured JSON/YAML.
package outline

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/SilverEzhik/IroIro/pkg/notebook"
)

// Format selects how Write renders a Node.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for formats other than text, json and yaml.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Node is a snapshot of an item and, for folders, its descendants.
type Node struct {
	Name     string `json:"name" yaml:"name"`
	Path     string `json:"path" yaml:"path"`
	IsFolder bool   `json:"is_folder" yaml:"is_folder"`
	Children []Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// Build snapshots item and its descendants down to maxDepth levels.
// A maxDepth of 0 or less means no limit.
func Build(item notebook.Item, maxDepth int) Node {
	return build(item, maxDepth, 0)
}

func build(item notebook.Item, maxDepth, depth int) Node {
	node := Node{
		Name:     item.Name,
		Path:     item.Path,
		IsFolder: item.IsFolder,
	}
	if maxDepth > 0 && depth >= maxDepth {
		return node
	}
	for _, child := range item.Children() {
		node.Children = append(node.Children, build(child, maxDepth, depth+1))
	}
	return node
}

// Write renders node to w.
// The text form lists the descendants of node, two spaces of indent per
// level, folders marked with a trailing colon.
func Write(w io.Writer, node Node, format Format) error {
	switch format {
	case FormatText:
		return writeText(w, node.Children, 0)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(node)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(node); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func writeText(w io.Writer, nodes []Node, level int) error {
	indent := strings.Repeat("  ", level)
	for _, n := range nodes {
		suffix := ""
		if n.IsFolder {
			suffix = ":"
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", indent, n.Name, suffix); err != nil {
			return err
		}
		if err := writeText(w, n.Children, level+1); err != nil {
			return err
		}
	}
	return nil
}
