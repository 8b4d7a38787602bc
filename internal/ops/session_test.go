package ops

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacksmith/td/internal/model"
)

func TestSession(t *testing.T) {
	t.Run("starts from initial list", func(t *testing.T) {
		s := NewSession(sampleList(), SessionOptions{IDs: testIDs()})
		assert.True(t, sampleList().Equal(s.Tasks()))
	})

	t.Run("nil initial list is empty", func(t *testing.T) {
		s := NewSession(nil, SessionOptions{})
		assert.NotNil(t, s.Tasks())
		assert.Empty(t, s.Tasks())
	})

	t.Run("listeners see every change in order", func(t *testing.T) {
		s := NewSession(nil, SessionOptions{IDs: testIDs()})

		var order []string
		var seen []model.TaskList
		s.Subscribe(func(l model.TaskList) {
			order = append(order, "view")
			seen = append(seen, l)
		})
		s.Subscribe(func(model.TaskList) { order = append(order, "persist") })

		task := s.AddTask("Buy milk")
		require.NotNil(t, task)
		assert.True(t, s.ToggleComplete(task.ID))
		assert.True(t, s.SaveEdit(task.ID, "Buy oat milk"))
		assert.True(t, s.DeleteTask(task.ID))

		assert.Equal(t, []string{
			"view", "persist", "view", "persist", "view", "persist", "view", "persist",
		}, order)
		require.Len(t, seen, 4)
		assert.Equal(t, "Buy milk", seen[0][0].Title)
		assert.True(t, seen[1][0].Completed)
		assert.Equal(t, "Buy oat milk", seen[2][0].Title)
		assert.Empty(t, seen[3])
	})

	t.Run("no-ops do not notify", func(t *testing.T) {
		s := NewSession(sampleList(), SessionOptions{IDs: testIDs()})
		calls := 0
		s.Subscribe(func(model.TaskList) { calls++ })

		assert.Nil(t, s.AddTask("   "))
		assert.False(t, s.DeleteTask("nope"))
		assert.False(t, s.ToggleComplete("nope"))
		assert.False(t, s.SaveEdit("nope", "x"))
		assert.False(t, s.SaveEdit("1", "Buy milk"))
		assert.Equal(t, 0, calls)
	})

	t.Run("unsubscribe stops notifications", func(t *testing.T) {
		s := NewSession(nil, SessionOptions{IDs: testIDs()})
		a, b := 0, 0
		unsubA := s.Subscribe(func(model.TaskList) { a++ })
		s.Subscribe(func(model.TaskList) { b++ })

		s.AddTask("one")
		unsubA()
		s.AddTask("two")

		assert.Equal(t, 1, a)
		assert.Equal(t, 2, b)
	})

	t.Run("blank edits are stored by default", func(t *testing.T) {
		s := NewSession(sampleList(), SessionOptions{IDs: testIDs()})
		assert.True(t, s.SaveEdit("1", ""))
		assert.Equal(t, "", s.Tasks()[0].Title)
	})

	t.Run("blank edits can be rejected", func(t *testing.T) {
		var buf bytes.Buffer
		logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
		s := NewSession(sampleList(), SessionOptions{IDs: testIDs(), RejectBlankEdits: true, Logger: logger})

		assert.False(t, s.SaveEdit("1", "  "))
		assert.Equal(t, "Buy milk", s.Tasks()[0].Title)
		assert.True(t, s.SaveEdit("1", "Buy bread"))
		assert.Contains(t, buf.String(), "ignored blank edit")
	})
}
