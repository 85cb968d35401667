package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with args and returns what it printed on stdout.
// Flag variables are package globals, so they are reset before each run.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	verbose = false
	notebookPath = ""
	treeDepth = 0
	treeOutput = "text"
	lsOutput = "text"
	infoOutput = "text"

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), err
}

func setupNotebook(t *testing.T) string {
	t.Helper()

	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	for _, f := range []string{
		"Notes/subfolder/hello.md",
		"Notes/subfolder/subtest.md",
		"Notes/todo10.md",
		"Notes/todo9.md",
		"Notes/draft.txt",
		"private.md",
	} {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, nil, 0644))
	}
	return root
}

func TestTreeCommand(t *testing.T) {
	root := setupNotebook(t)

	t.Run("Text", func(t *testing.T) {
		out, err := run(t, "tree", "--notebook", root)
		require.NoError(t, err)
		assert.Equal(t, "subfolder:\n  hello\n  subtest\ntodo9\ntodo10\n", out)
	})

	t.Run("Depth", func(t *testing.T) {
		out, err := run(t, "tree", "-n", root, "--depth", "1")
		require.NoError(t, err)
		assert.Equal(t, "subfolder:\ntodo9\ntodo10\n", out)
	})

	t.Run("Subfolder JSON", func(t *testing.T) {
		out, err := run(t, "tree", "subfolder", "-n", root, "-o", "json")
		require.NoError(t, err)
		assert.Contains(t, out, `"path": "subfolder/hello.md"`)
	})

	t.Run("Unknown Format", func(t *testing.T) {
		_, err := run(t, "tree", "-n", root, "-o", "xml")
		assert.Error(t, err)
	})

	t.Run("Escape Is Not Found", func(t *testing.T) {
		_, err := run(t, "tree", "../", "-n", root)
		assert.True(t, errors.Is(err, errNotFound), "got: %v", err)
	})
}

func TestLsCommand(t *testing.T) {
	root := setupNotebook(t)

	out, err := run(t, "ls", "-n", root)
	require.NoError(t, err)
	assert.Equal(t, "subfolder/\ntodo9.md\ntodo10.md\n", out)

	out, err = run(t, "ls", "subfolder", "-n", root, "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: hello")
}

func TestResolveCommand(t *testing.T) {
	root := setupNotebook(t)

	out, err := run(t, "resolve", "subfolder/hello.md", "-n", root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "Notes", "subfolder", "hello.md")+"\n", out)

	for _, path := range []string{"../private.md", "draft.txt", "missing.md", filepath.Join(root, "private.md")} {
		_, err := run(t, "resolve", path, "-n", root)
		assert.True(t, errors.Is(err, errNotFound), "%s: got %v", path, err)
	}
}

func TestParentCommand(t *testing.T) {
	root := setupNotebook(t)

	out, err := run(t, "parent", "subfolder/hello.md", "-n", root)
	require.NoError(t, err)
	assert.Equal(t, "subfolder\n", out)

	out, err = run(t, "parent", "subfolder", "-n", root)
	require.NoError(t, err)
	assert.Equal(t, ".\n", out)

	_, err = run(t, "parent", ".", "-n", root)
	assert.Error(t, err)
}

func TestInfoCommand(t *testing.T) {
	root := setupNotebook(t)

	out, err := run(t, "info", "-n", root, "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"notes_present": true`)
	assert.Contains(t, out, filepath.Join(root, "Notes"))
}

func TestDiscovery(t *testing.T) {
	root := setupNotebook(t)
	t.Chdir(filepath.Join(root, "Notes", "subfolder"))

	out, err := run(t, "ls", "subfolder")
	require.NoError(t, err)
	assert.Equal(t, "subfolder/hello.md\nsubfolder/subtest.md\n", out)
}

func TestOpenFailure(t *testing.T) {
	_, err := run(t, "ls", "-n", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "iroiro version")
}
