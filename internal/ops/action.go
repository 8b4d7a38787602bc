package ops

import (
	"fmt"

	"github.com/jacksmith/td/internal/model"
)

// ActionKind identifies a task list mutation.
type ActionKind string

const (
	ActionAdd    ActionKind = "add"
	ActionDelete ActionKind = "delete"
	ActionToggle ActionKind = "toggle"
	ActionEdit   ActionKind = "edit"
)

// Action is a mutation request emitted by the presentation layer.
type Action struct {
	Kind  ActionKind
	ID    string // target task; unused by add
	Title string // add and edit only
}

// Add returns an action that creates a task.
func Add(title string) Action { return Action{Kind: ActionAdd, Title: title} }

// Delete returns an action that removes a task.
func Delete(id string) Action { return Action{Kind: ActionDelete, ID: id} }

// Toggle returns an action that flips a task's completion.
func Toggle(id string) Action { return Action{Kind: ActionToggle, ID: id} }

// Edit returns an action that replaces a task's title.
func Edit(id, title string) Action { return Action{Kind: ActionEdit, ID: id, Title: title} }

func (a Action) String() string {
	switch a.Kind {
	case ActionAdd:
		return fmt.Sprintf("add %q", a.Title)
	case ActionEdit:
		return fmt.Sprintf("edit %s %q", a.ID, a.Title)
	default:
		return fmt.Sprintf("%s %s", a.Kind, a.ID)
	}
}

// Reduce applies an action to list and returns the next list.
// Unknown action kinds return list unchanged.
func Reduce(list model.TaskList, a Action, ids model.IDGenerator) model.TaskList {
	switch a.Kind {
	case ActionAdd:
		return AddTask(list, a.Title, ids)
	case ActionDelete:
		return DeleteTask(list, a.ID)
	case ActionToggle:
		return ToggleComplete(list, a.ID)
	case ActionEdit:
		return SaveEdit(list, a.ID, a.Title)
	default:
		return list
	}
}
