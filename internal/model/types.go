// Package model defines the core data structures for td.
package model

// Task is a single to-do item.
type Task struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// TaskList is the ordered collection of all tasks. Insertion order is
// creation order; ids are unique within a list.
type TaskList []Task

// Len returns the number of tasks in the list.
func (l TaskList) Len() int {
	return len(l)
}

// IndexOf returns the position of the task with the given id, or -1.
func (l TaskList) IndexOf(id string) int {
	for i := range l {
		if l[i].ID == id {
			return i
		}
	}
	return -1
}

// Find returns a pointer to the task with the given id, or nil.
// The pointer aliases the list's backing array.
func (l TaskList) Find(id string) *Task {
	if i := l.IndexOf(id); i >= 0 {
		return &l[i]
	}
	return nil
}

// Has reports whether a task with the given id is present.
func (l TaskList) Has(id string) bool {
	return l.IndexOf(id) >= 0
}

// IDs returns the task ids in list order.
func (l TaskList) IDs() []string {
	ids := make([]string, 0, len(l))
	for _, t := range l {
		ids = append(ids, t.ID)
	}
	return ids
}

// Clone returns a copy of the list that shares no backing storage.
// A nil list clones to an empty, non-nil list.
func (l TaskList) Clone() TaskList {
	out := make(TaskList, len(l))
	copy(out, l)
	return out
}

// Equal reports whether two lists hold the same tasks in the same order.
// Nil and empty lists are equal.
func (l TaskList) Equal(other TaskList) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if l[i] != other[i] {
			return false
		}
	}
	return true
}

// DuplicateID returns the first id that appears more than once, or "".
func (l TaskList) DuplicateID() string {
	seen := make(map[string]struct{}, len(l))
	for _, t := range l {
		if _, ok := seen[t.ID]; ok {
			return t.ID
		}
		seen[t.ID] = struct{}{}
	}
	return ""
}
