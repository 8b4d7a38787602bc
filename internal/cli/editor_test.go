package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEditor(t *testing.T, visual, editor string) {
	t.Helper()
	t.Setenv("VISUAL", visual)
	t.Setenv("EDITOR", editor)
}

// writeScript creates an executable editor script in a temp dir.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "editor.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755))
	return path
}

func TestEditorCommand(t *testing.T) {
	setEditor(t, "code --wait", "vim")
	argv, err := editorCommand()
	require.NoError(t, err)
	assert.Equal(t, []string{"code", "--wait"}, argv)

	setEditor(t, "  ", "vim")
	argv, err = editorCommand()
	require.NoError(t, err)
	assert.Equal(t, []string{"vim"}, argv)

	setEditor(t, "", "")
	_, err = editorCommand()
	assert.ErrorIs(t, err, ErrNoEditor)
}

func TestEditTitle(t *testing.T) {
	t.Run("no editor", func(t *testing.T) {
		setEditor(t, "", "")
		_, err := EditTitle("Buy milk")
		require.ErrorIs(t, err, ErrNoEditor)
	})

	t.Run("unchanged", func(t *testing.T) {
		setEditor(t, "", "true")
		title, err := EditTitle("Buy milk")
		require.NoError(t, err)
		assert.Equal(t, "Buy milk", title)
	})

	t.Run("strips trailing newline", func(t *testing.T) {
		setEditor(t, "", writeScript(t, `printf 'Buy oat milk\n' > "$1"`))
		title, err := EditTitle("Buy milk")
		require.NoError(t, err)
		assert.Equal(t, "Buy oat milk", title)
	})

	t.Run("keeps surrounding spaces", func(t *testing.T) {
		setEditor(t, "", "true")
		title, err := EditTitle("  Buy milk ")
		require.NoError(t, err)
		assert.Equal(t, "  Buy milk ", title)
	})

	t.Run("keeps interior newlines", func(t *testing.T) {
		setEditor(t, "", writeScript(t, `printf 'Buy milk\nand eggs\n' > "$1"`))
		title, err := EditTitle("Buy milk")
		require.NoError(t, err)
		assert.Equal(t, "Buy milk\nand eggs", title)
	})

	t.Run("editor arguments come before the file", func(t *testing.T) {
		script := writeScript(t, `printf '%s' "$1" > "$2"`)
		setEditor(t, script+" --flag", "")
		title, err := EditTitle("Buy milk")
		require.NoError(t, err)
		assert.Equal(t, "--flag", title)
	})

	t.Run("non-zero exit", func(t *testing.T) {
		setEditor(t, "", "false")
		_, err := EditTitle("Buy milk")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exited with status 1")
	})

	t.Run("missing editor", func(t *testing.T) {
		setEditor(t, "", "nonexistent-editor-command-12345")
		_, err := EditTitle("Buy milk")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to run editor")
	})

	t.Run("removes the title file", func(t *testing.T) {
		tmp := t.TempDir()
		t.Setenv("TMPDIR", tmp)
		setEditor(t, "", "true")
		_, err := EditTitle("Buy milk")
		require.NoError(t, err)

		entries, err := os.ReadDir(tmp)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
