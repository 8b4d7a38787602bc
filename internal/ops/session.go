package ops

import (
	"github.com/charmbracelet/log"

	"github.com/jacksmith/td/internal/logging"
	"github.com/jacksmith/td/internal/model"
)

// Listener is notified with the new task list after every change.
// Listeners must not modify the list they receive.
type Listener func(model.TaskList)

// SessionOptions configures a Session.
type SessionOptions struct {
	// IDs issues ids for new tasks. Defaults to the timestamp scheme.
	IDs model.IDGenerator
	// RejectBlankEdits applies the creation rule to edits: an edit whose
	// title is blank is ignored. Off by default, so edits store the title
	// exactly as typed.
	RejectBlankEdits bool
	// Logger receives debug output for dispatched actions.
	Logger *log.Logger
}

// Session is the task store: it holds the current list, applies actions
// and notifies listeners when the list changes. It has a single writer;
// the presentation layer or a one-shot command drives it.
type Session struct {
	tasks            model.TaskList
	ids              model.IDGenerator
	rejectBlankEdits bool
	logger           *log.Logger
	listeners        []*Listener
}

// NewSession returns a session starting from initial.
func NewSession(initial model.TaskList, opts SessionOptions) *Session {
	if initial == nil {
		initial = model.TaskList{}
	}
	ids := opts.IDs
	if ids == nil {
		ids, _ = model.NewIDGenerator(model.IDSchemeTimestamp)
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Session{
		tasks:            initial,
		ids:              ids,
		rejectBlankEdits: opts.RejectBlankEdits,
		logger:           logger,
	}
}

// Tasks returns the current list.
func (s *Session) Tasks() model.TaskList {
	return s.tasks
}

// Subscribe registers fn for change notifications and returns a function
// that removes it. Listeners run in subscription order.
func (s *Session) Subscribe(fn Listener) (unsubscribe func()) {
	l := &fn
	s.listeners = append(s.listeners, l)
	return func() {
		for i, existing := range s.listeners {
			if existing == l {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Dispatch applies a to the current list. It reports whether the list
// changed; listeners are notified only on change.
func (s *Session) Dispatch(a Action) bool {
	if a.Kind == ActionEdit && s.rejectBlankEdits && ValidateTitle(a.Title) != nil {
		s.logger.Debug("ignored blank edit", "id", a.ID)
		return false
	}

	next := Reduce(s.tasks, a, s.ids)
	if next.Equal(s.tasks) {
		s.logger.Debug("no change", "action", a.String())
		return false
	}

	s.tasks = next
	s.logger.Debug("applied", "action", a.String(), "tasks", len(next))
	for _, l := range s.listeners {
		(*l)(next)
	}
	return true
}

// AddTask dispatches an add and returns the created task, or nil when the
// title was blank.
func (s *Session) AddTask(title string) *model.Task {
	if !s.Dispatch(Add(title)) {
		return nil
	}
	t := s.tasks[len(s.tasks)-1]
	return &t
}

// DeleteTask dispatches a delete.
func (s *Session) DeleteTask(id string) bool { return s.Dispatch(Delete(id)) }

// ToggleComplete dispatches a toggle.
func (s *Session) ToggleComplete(id string) bool { return s.Dispatch(Toggle(id)) }

// SaveEdit dispatches an edit.
func (s *Session) SaveEdit(id, title string) bool { return s.Dispatch(Edit(id, title)) }
