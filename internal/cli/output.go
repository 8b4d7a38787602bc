package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/jacksmith/td/internal/model"
)

// ANSI codes
const (
	ansiReset  = "\033[0m"
	ansiStrike = "\033[9m"
	ansiGreen  = "\033[32m"
	ansiGray   = "\033[90m"
)

// colorEnabled tracks whether ANSI styling is enabled.
// It is set based on terminal detection but can be overridden.
var colorEnabled = true

func init() {
	colorEnabled = IsTerminal(os.Stdout)
}

// SetColorEnabled allows overriding the color output setting.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled returns whether color output is currently enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// IsTerminal returns true if w is a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func wrap(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + ansiReset
}

// Green returns s in green if colors are enabled.
func Green(s string) string { return wrap(ansiGreen, s) }

// Gray returns s in gray if colors are enabled.
func Gray(s string) string { return wrap(ansiGray, s) }

// Strike returns s struck through if colors are enabled.
func Strike(s string) string { return wrap(ansiStrike, s) }

// DefaultMaxTitleWidth is the default maximum visible width for title columns.
const DefaultMaxTitleWidth = 60

// Table formats columnar output with automatic column width calculation.
type Table struct {
	rows      [][]string
	colWidths []int
	maxWidths map[int]int
}

// NewTable creates a new empty table.
func NewTable() *Table {
	return &Table{maxWidths: make(map[int]int)}
}

// SetMaxWidth caps the visible width of a column. Longer cells are
// truncated with "...".
func (t *Table) SetMaxWidth(col, maxWidth int) {
	t.maxWidths[col] = maxWidth
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	for len(t.colWidths) < len(cols) {
		t.colWidths = append(t.colWidths, 0)
	}
	for i, col := range cols {
		width := visibleWidth(col)
		if maxW, ok := t.maxWidths[i]; ok && width > maxW {
			width = maxW
		}
		if width > t.colWidths[i] {
			t.colWidths[i] = width
		}
	}
	t.rows = append(t.rows, cols)
}

// Render writes the table to w with columns separated by two spaces.
// The last column is not padded.
func (t *Table) Render(w io.Writer) {
	for _, row := range t.rows {
		parts := make([]string, len(row))
		for i, col := range row {
			if maxW, ok := t.maxWidths[i]; ok {
				col = Truncate(col, maxW)
			}
			if i < len(row)-1 {
				col += strings.Repeat(" ", t.colWidths[i]-visibleWidth(col))
			}
			parts[i] = col
		}
		fmt.Fprintln(w, strings.Join(parts, "  "))
	}
}

// Truncate returns s cut to maxWidth visible characters, ending in "..."
// when there is room for it. ANSI codes do not count towards the width and
// a reset is appended if any were cut through.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if visibleWidth(s) <= maxWidth {
		return s
	}

	ellipsis := "..."
	limit := maxWidth - len(ellipsis)
	if limit < 0 {
		limit, ellipsis = maxWidth, ""
	}

	var b strings.Builder
	visible := 0
	inEscape, hasAnsi := false, false
	for _, r := range s {
		if r == '\033' {
			inEscape, hasAnsi = true, true
			b.WriteRune(r)
			continue
		}
		if inEscape {
			b.WriteRune(r)
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		if visible >= limit {
			break
		}
		b.WriteRune(r)
		visible++
	}

	b.WriteString(ellipsis)
	if hasAnsi {
		b.WriteString(ansiReset)
	}
	return b.String()
}

// visibleWidth returns the number of runes in s, excluding ANSI escape codes.
func visibleWidth(s string) int {
	width := 0
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape = true
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		default:
			width++
		}
	}
	return width
}

// WriteTaskTable writes tasks as an ID/STATUS/TITLE table. Completed
// titles are struck through.
func WriteTaskTable(w io.Writer, tasks model.TaskList) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, Gray("No tasks."))
		return
	}

	tbl := NewTable()
	tbl.SetMaxWidth(2, DefaultMaxTitleWidth)
	tbl.AddRow("ID", "STATUS", "TITLE")
	for i := range tasks {
		task := &tasks[i]
		status := string(task.State())
		title := task.Title
		if task.Completed {
			status = Green(status)
			title = Strike(title)
		}
		tbl.AddRow(task.ID, status, title)
	}
	tbl.Render(w)

	pending, completed := tasks.Counts()
	fmt.Fprintf(w, "\n%d pending, %d completed\n", pending, completed)
}
