// Package ui renders the task list screen.
package ui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jacksmith/td/internal/cli"
	"github.com/jacksmith/td/internal/model"
	"github.com/jacksmith/td/internal/ops"
)

const (
	inputPlaceholder = "Enter a new task..."
	maxTitleWidth    = 48
	untitled         = "(untitled)"
	ellipsis         = "…"
)

// flatten puts a title on one line for display. The stored title is not
// changed.
var flatten = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

type focus int

const (
	focusInput focus = iota
	focusList
)

// Model is the Bubble Tea model for the screen. It holds only transient
// state: the new-task input, the edit target and buffer, focus and cursor.
// Task data comes from the session through a subscription.
type Model struct {
	session   *ops.Session
	tasks     model.TaskList
	input     textinput.Model
	editor    textinput.Model
	editingID string
	editSeed  string // editor contents when editing began
	focus     focus
	cursor    int
	width     int
	styles    Styles
}

// New returns a screen bound to session.
func New(session *ops.Session) *Model {
	input := textinput.New()
	input.Placeholder = inputPlaceholder
	input.Prompt = "+ "
	input.CharLimit = 0
	input.Width = 40

	editor := textinput.New()
	editor.Prompt = ""
	editor.CharLimit = 0
	editor.Width = maxTitleWidth

	m := &Model{
		session: session,
		tasks:   session.Tasks(),
		input:   input,
		editor:  editor,
		focus:   focusInput,
		styles:  DefaultStyles(),
	}
	m.input.Focus()
	session.Subscribe(func(l model.TaskList) {
		m.tasks = l
	})
	return m
}

// Run shows the screen until the user quits or ctx is cancelled.
func Run(ctx context.Context, session *ops.Session) error {
	if !cli.IsTerminal(os.Stdout) {
		return fmt.Errorf("interactive mode requires a TTY")
	}
	program := tea.NewProgram(New(session), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

// InputValue returns the new-task input text.
func (m *Model) InputValue() string { return m.input.Value() }

// EditingID returns the id of the task being edited, or "".
func (m *Model) EditingID() string { return m.editingID }

// EditValue returns the edit buffer.
func (m *Model) EditValue() string { return m.editor.Value() }

// Selected returns the task under the cursor, or nil when the list is empty.
func (m *Model) Selected() *model.Task {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return nil
	}
	t := m.tasks[m.cursor]
	return &t
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if w := msg.Width - 6; w > 10 {
			m.input.Width = w
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		switch {
		case m.editingID != "":
			cmd = m.updateEditing(msg)
		case m.focus == focusInput:
			cmd = m.updateInput(msg)
		default:
			cmd = m.updateList(msg)
		}
		m.clampCursor()
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		m.addTask()
		return nil
	case "tab", "esc", "down":
		return m.setFocus(focusList)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) updateList(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "esc":
		return tea.Quit
	case "tab", "a", "i":
		return m.setFocus(focusInput)
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		} else {
			return m.setFocus(focusInput)
		}
	case "down", "j":
		m.cursor++
	case "e", "enter":
		if t := m.Selected(); t != nil {
			return m.startEdit(t)
		}
	case "x":
		if t := m.Selected(); t != nil {
			m.session.ToggleComplete(t.ID)
		}
	case "d", "delete":
		if t := m.Selected(); t != nil {
			m.session.DeleteTask(t.ID)
		}
	}
	return nil
}

func (m *Model) updateEditing(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		m.saveEdit()
		return nil
	case "esc":
		m.stopEdit()
		return nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return cmd
}

// addTask submits the input. The input is cleared only when a task was
// created; blank input stays as typed.
func (m *Model) addTask() {
	if m.session.AddTask(m.input.Value()) == nil {
		return
	}
	m.input.SetValue("")
	m.cursor = len(m.tasks) - 1
}

func (m *Model) startEdit(t *model.Task) tea.Cmd {
	m.editingID = t.ID
	m.editor.SetValue(t.Title)
	m.editSeed = m.editor.Value()
	m.editor.CursorEnd()
	return m.editor.Focus()
}

// saveEdit stores the edit buffer as given and leaves edit mode. The
// single-line editor cannot hold newlines or tabs, so a buffer left as it
// was seeded keeps the stored title intact.
func (m *Model) saveEdit() {
	title := m.editor.Value()
	if t := m.tasks.Find(m.editingID); t != nil && title == m.editSeed {
		title = t.Title
	}
	m.session.SaveEdit(m.editingID, title)
	m.stopEdit()
}

func (m *Model) stopEdit() {
	m.editingID = ""
	m.editSeed = ""
	m.editor.Blur()
	m.editor.SetValue("")
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	if f == focusInput {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) View() string {
	var b strings.Builder

	pending, completed := m.tasks.Counts()
	b.WriteString(m.styles.Header.Render("td"))
	b.WriteString(m.styles.Summary.Render(fmt.Sprintf("  %d pending · %d completed", pending, completed)))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.tasks) == 0 {
		b.WriteString(m.styles.Empty.Render("No tasks yet."))
		b.WriteString("\n")
	} else {
		width := m.titleWidth()
		for i := range m.tasks {
			b.WriteString(m.renderTask(&m.tasks[i], i == m.cursor && m.focus == focusList, width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.helpText()))
	return b.String()
}

// titleWidth is the column width titles are padded to, so controls line up.
func (m *Model) titleWidth() int {
	width := len(untitled)
	for i := range m.tasks {
		if w := lipgloss.Width(flatten.Replace(m.tasks[i].Title)); w > width {
			width = w
		}
	}
	if width > maxTitleWidth {
		width = maxTitleWidth
	}
	return width
}

func (m *Model) renderTask(t *model.Task, selected bool, width int) string {
	cursor := "  "
	if selected {
		cursor = m.styles.Cursor.Render("> ")
	}

	if t.ID == m.editingID {
		return cursor + m.editor.View() + "  " + m.styles.Save.Render("[enter] Save")
	}

	check := "[ ]"
	if t.Completed {
		check = "[x]"
	}

	title := ansi.Truncate(flatten.Replace(t.Title), width, ellipsis)
	pad := strings.Repeat(" ", max(0, width-lipgloss.Width(title)))
	switch {
	case strings.TrimSpace(t.Title) == "":
		title = m.styles.Untitled.Render(untitled)
		pad = strings.Repeat(" ", max(0, width-len(untitled)))
	case t.Completed:
		title = m.styles.Completed.Render(title)
	default:
		title = m.styles.Title.Render(title)
	}

	controls := strings.Join([]string{
		m.styles.Edit.Render("[e] Edit"),
		m.styles.Toggle.Render("[x] " + t.ToggleLabel()),
		m.styles.Delete.Render("[d] Delete"),
	}, "  ")

	return cursor + check + " " + title + pad + "  " + controls
}

func (m *Model) helpText() string {
	switch {
	case m.editingID != "":
		return "enter save • esc cancel • ctrl+c quit"
	case m.focus == focusInput:
		return "enter add • tab list • ctrl+c quit"
	default:
		return "↑/k ↓/j move • e edit • x done/undo • d delete • tab new task • q quit"
	}
}
