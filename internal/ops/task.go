package ops

import (
	"errors"
	"strings"

	"github.com/jacksmith/td/internal/model"
)

// ErrEmptyTitle is returned by ValidateTitle for blank titles.
var ErrEmptyTitle = errors.New("task title must not be empty")

// ValidateTitle checks that a task title is not empty or whitespace-only.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// AddTask returns list with a new pending task appended. The title is kept
// as given. A blank title returns list unchanged.
func AddTask(list model.TaskList, title string, ids model.IDGenerator) model.TaskList {
	if ValidateTitle(title) != nil {
		return list
	}
	next := make(model.TaskList, 0, len(list)+1)
	next = append(next, list...)
	return append(next, model.Task{
		ID:        ids.NewID(list),
		Title:     title,
		Completed: false,
	})
}

// DeleteTask returns list without the task whose id matches.
// Relative order of the remaining tasks is preserved. An unknown id
// returns list unchanged.
func DeleteTask(list model.TaskList, id string) model.TaskList {
	if !list.Has(id) {
		return list
	}
	next := make(model.TaskList, 0, len(list)-1)
	for _, t := range list {
		if t.ID != id {
			next = append(next, t)
		}
	}
	return next
}

// ToggleComplete returns list with completion flipped on the matching task.
// An unknown id returns list unchanged.
func ToggleComplete(list model.TaskList, id string) model.TaskList {
	i := list.IndexOf(id)
	if i < 0 {
		return list
	}
	next := list.Clone()
	next[i].Completed = !next[i].Completed
	return next
}

// SaveEdit returns list with the matching task's title replaced by title
// exactly as given. Blank titles are not rejected here; callers that want
// creation's rule apply ValidateTitle first. An unknown id returns list
// unchanged.
func SaveEdit(list model.TaskList, id string, title string) model.TaskList {
	i := list.IndexOf(id)
	if i < 0 {
		return list
	}
	next := list.Clone()
	next[i].Title = title
	return next
}
