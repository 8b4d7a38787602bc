package cli

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrNoEditor is returned by EditTitle when neither $VISUAL nor $EDITOR
// names an editor.
var ErrNoEditor = errors.New("EDITOR not set; pass the new title as an argument")

// titleFilePattern names the scratch file a title is edited in.
const titleFilePattern = "td-title-*.txt"

// EditTitle opens title in the user's editor and returns what was saved,
// minus the trailing newline editors add. Interior newlines and spaces are
// kept as typed.
func EditTitle(title string) (string, error) {
	argv, err := editorCommand()
	if err != nil {
		return "", err
	}

	path, err := writeTitleFile(title)
	if err != nil {
		return "", err
	}
	defer os.Remove(path)

	if err := runEditor(argv, path); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read edited title: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// editorCommand splits $VISUAL, or else $EDITOR, into a command line.
// "code --wait" becomes ["code", "--wait"].
func editorCommand() ([]string, error) {
	editor := os.Getenv("VISUAL")
	if strings.TrimSpace(editor) == "" {
		editor = os.Getenv("EDITOR")
	}
	argv := strings.Fields(editor)
	if len(argv) == 0 {
		return nil, ErrNoEditor
	}
	return argv, nil
}

// writeTitleFile stores title, newline-terminated, in a new scratch file.
func writeTitleFile(title string) (string, error) {
	f, err := os.CreateTemp("", titleFilePattern)
	if err != nil {
		return "", fmt.Errorf("failed to create title file: %w", err)
	}
	if _, err := f.WriteString(title + "\n"); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write title file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write title file: %w", err)
	}
	return f.Name(), nil
}

// runEditor runs argv with path appended, attached to the terminal.
func runEditor(argv []string, path string) error {
	cmd := exec.Command(argv[0], append(argv[1:len(argv):len(argv)], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("editor %s exited with status %d; title unchanged", argv[0], exitErr.ExitCode())
		}
		return fmt.Errorf("failed to run editor %s: %w", argv[0], err)
	}
	return nil
}
