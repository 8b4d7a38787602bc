package ops

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/jacksmith/td/internal/logging"
	"github.com/jacksmith/td/internal/model"
)

// Writer persists task lists in the background. Schedule never blocks on
// the store; while a write is outstanding, later lists replace the pending
// one so only the latest is written. Failed writes are logged and dropped.
type Writer struct {
	store  Store
	key    string
	logger *log.Logger

	mu         sync.Mutex
	pending    model.TaskList
	hasPending bool
	lastErr    error

	wake      chan struct{}
	flush     chan chan struct{}
	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewWriter starts a writer for key in store. Close must be called to
// stop it.
func NewWriter(store Store, key string, logger *log.Logger) *Writer {
	if logger == nil {
		logger = logging.Discard()
	}
	w := &Writer{
		store:  store,
		key:    key,
		logger: logger,
		wake:   make(chan struct{}, 1),
		flush:  make(chan chan struct{}),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go w.run()
	return w
}

// Schedule queues l for writing. It is a Listener, so a writer can be
// subscribed to a Session directly.
func (w *Writer) Schedule(l model.TaskList) {
	w.mu.Lock()
	w.pending = l
	w.hasPending = true
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// Flush waits until every list scheduled before the call is written or
// has failed.
func (w *Writer) Flush(ctx context.Context) error {
	reply := make(chan struct{})
	select {
	case w.flush <- reply:
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-reply:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close writes any pending list and stops the writer. Lists scheduled
// after Close are not written.
func (w *Writer) Close(ctx context.Context) error {
	w.closeOnce.Do(func() { close(w.stop) })
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Err returns the error from the most recent write, or nil if it
// succeeded.
func (w *Writer) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastErr
}

func (w *Writer) run() {
	defer close(w.done)
	for {
		select {
		case <-w.wake:
			w.writePending()
		case reply := <-w.flush:
			w.writePending()
			close(reply)
		case <-w.stop:
			w.writePending()
			return
		}
	}
}

func (w *Writer) writePending() {
	w.mu.Lock()
	l, ok := w.pending, w.hasPending
	w.pending, w.hasPending = nil, false
	w.mu.Unlock()
	if !ok {
		return
	}

	err := SaveTasks(w.store, w.key, l)

	w.mu.Lock()
	w.lastErr = err
	w.mu.Unlock()

	if err != nil {
		w.logger.Warn("persist failed", "key", w.key, "err", err)
		return
	}
	w.logger.Debug("persisted", "key", w.key, "tasks", len(l))
}
