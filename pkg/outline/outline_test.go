package outline_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/SilverEzhik/IroIro/pkg/notebook"
	"github.com/SilverEzhik/IroIro/pkg/outline"
)

func setupRoot(t *testing.T) notebook.Item {
	t.Helper()

	root := t.TempDir()
	for _, f := range []string{
		"Notes/journal/day10.md",
		"Notes/journal/day2.md",
		"Notes/journal/2024/jan.md",
		"Notes/readme.md",
		"Notes/image.png",
	} {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, nil, 0644))
	}

	nb, err := notebook.Open(root)
	require.NoError(t, err)

	item, ok := nb.Root()
	require.True(t, ok)
	return item
}

func TestBuild(t *testing.T) {
	root := setupRoot(t)

	t.Run("Unlimited Depth", func(t *testing.T) {
		node := outline.Build(root, 0)

		assert.Equal(t, "Notes", node.Name)
		require.Len(t, node.Children, 2)

		journal := node.Children[0]
		assert.Equal(t, "journal", journal.Name)
		assert.True(t, journal.IsFolder)
		require.Len(t, journal.Children, 3)
		assert.Equal(t, "2024", journal.Children[0].Name)
		assert.Equal(t, "day2", journal.Children[1].Name)
		assert.Equal(t, "day10", journal.Children[2].Name)
		require.Len(t, journal.Children[0].Children, 1)
		assert.Equal(t, filepath.Join("journal", "2024", "jan.md"), journal.Children[0].Children[0].Path)

		assert.Equal(t, "readme", node.Children[1].Name)
	})

	t.Run("Depth Limit", func(t *testing.T) {
		node := outline.Build(root, 1)

		require.Len(t, node.Children, 2)
		assert.Empty(t, node.Children[0].Children)
	})
}

func TestWrite(t *testing.T) {
	node := outline.Build(setupRoot(t), 0)

	t.Run("Text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, outline.Write(&buf, node, outline.FormatText))

		want := "journal:\n" +
			"  2024:\n" +
			"    jan\n" +
			"  day2\n" +
			"  day10\n" +
			"readme\n"
		assert.Equal(t, want, buf.String())
	})

	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, outline.Write(&buf, node, outline.FormatJSON))

		var got outline.Node
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, node, got)
		assert.Contains(t, buf.String(), `"is_folder": true`)
	})

	t.Run("YAML", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, outline.Write(&buf, node, outline.FormatYAML))

		var got outline.Node
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, node, got)
		assert.Contains(t, buf.String(), "name: journal")
	})

	t.Run("Unknown Format", func(t *testing.T) {
		err := outline.Write(&bytes.Buffer{}, node, outline.Format("xml"))
		assert.True(t, errors.Is(err, outline.ErrUnknownFormat))
	})
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"text", "JSON", "yaml"} {
		_, err := outline.ParseFormat(s)
		assert.NoError(t, err, s)
	}

	_, err := outline.ParseFormat("toml")
	assert.True(t, errors.Is(err, outline.ErrUnknownFormat))
}
