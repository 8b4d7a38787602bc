package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacksmith/td/internal/model"
)

func TestResolveTask(t *testing.T) {
	tasks := model.TaskList{
		{ID: "1700000000000", Title: "Buy milk"},
		{ID: "1700000000001", Title: "Walk dog"},
		{ID: "1700000000", Title: "Short id"},
		{ID: "a3f0-uuid", Title: "Uuid task"},
	}

	t.Run("exact id", func(t *testing.T) {
		task, err := ResolveTask("1700000000", tasks)
		require.NoError(t, err)
		assert.Equal(t, "Short id", task.Title)
	})

	t.Run("unique prefix", func(t *testing.T) {
		task, err := ResolveTask("A3F", tasks)
		require.NoError(t, err)
		assert.Equal(t, "a3f0-uuid", task.ID)
	})

	t.Run("ambiguous prefix", func(t *testing.T) {
		_, err := ResolveTask("170000000000", tasks)
		var ambiguous *AmbiguousError
		require.ErrorAs(t, err, &ambiguous)
		assert.Equal(t, []string{"1700000000000", "1700000000001"}, ambiguous.Matches)
	})

	t.Run("no match", func(t *testing.T) {
		_, err := ResolveTask("9", tasks)
		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "9", notFound.Ref)
	})

	t.Run("empty reference", func(t *testing.T) {
		_, err := ResolveTask("  ", tasks)
		var invalid *ValidationError
		require.ErrorAs(t, err, &invalid)
	})
}
