package model

// TaskState is the display state of a task.
type TaskState string

const (
	TaskStatePending   TaskState = "pending"
	TaskStateCompleted TaskState = "completed"
)

// State returns the task's state. Both states are valid at rest and a
// task moves freely between them.
func (t *Task) State() TaskState {
	if t.Completed {
		return TaskStateCompleted
	}
	return TaskStatePending
}

// ToggleLabel returns the label for the control that flips completion:
// "Undo" for a completed task, "Done" otherwise.
func (t *Task) ToggleLabel() string {
	if t.Completed {
		return "Undo"
	}
	return "Done"
}

// Counts returns the number of pending and completed tasks.
func (l TaskList) Counts() (pending, completed int) {
	for i := range l {
		if l[i].Completed {
			completed++
		} else {
			pending++
		}
	}
	return pending, completed
}
