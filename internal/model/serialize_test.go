package model

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEncodeTasks(t *testing.T) {
	t.Run("stored form", func(t *testing.T) {
		got, err := EncodeTasks(TaskList{
			{ID: "1", Title: "Buy milk"},
			{ID: "2", Title: "Fish & chips <now>", Completed: true},
		})
		require.NoError(t, err)
		assert.Equal(t,
			`[{"id":"1","title":"Buy milk","completed":false},{"id":"2","title":"Fish & chips <now>","completed":true}]`,
			got)
	})

	t.Run("nil list encodes as empty array", func(t *testing.T) {
		got, err := EncodeTasks(nil)
		require.NoError(t, err)
		assert.Equal(t, "[]", got)
	})
}

func TestDecodeTasks(t *testing.T) {
	t.Run("decodes stored form", func(t *testing.T) {
		l, err := DecodeTasks(`[{"id":"1","title":"Buy milk","completed":false}]`)
		require.NoError(t, err)
		assert.Equal(t, TaskList{{ID: "1", Title: "Buy milk"}}, l)
	})

	t.Run("blank input is an empty list", func(t *testing.T) {
		l, err := DecodeTasks("  ")
		require.NoError(t, err)
		assert.NotNil(t, l)
		assert.Empty(t, l)
	})

	t.Run("empty title is accepted", func(t *testing.T) {
		l, err := DecodeTasks(`[{"id":"1","title":"","completed":true}]`)
		require.NoError(t, err)
		assert.Equal(t, "", l[0].Title)
	})

	t.Run("extra fields are ignored", func(t *testing.T) {
		l, err := DecodeTasks(`[{"id":"1","title":"a","completed":false,"color":"red"}]`)
		require.NoError(t, err)
		assert.Len(t, l, 1)
	})

	malformed := map[string]string{
		"syntax":          `[{"id":"1"`,
		"null":            `null`,
		"object":          `{"id":"1","title":"a","completed":false}`,
		"missing field":   `[{"id":"1","title":"a"}]`,
		"wrong type":      `[{"id":"1","title":"a","completed":"yes"}]`,
		"numeric id":      `[{"id":1,"title":"a","completed":false}]`,
		"empty id":        `[{"id":"","title":"a","completed":false}]`,
		"duplicate ids":   `[{"id":"1","title":"a","completed":false},{"id":"1","title":"b","completed":false}]`,
		"item not object": `["Buy milk"]`,
	}
	for name, data := range malformed {
		t.Run("malformed "+name, func(t *testing.T) {
			l, err := DecodeTasks(data)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformed)
			assert.Nil(t, l)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	original := TaskList{
		{ID: "1700000000000", Title: "Buy milk"},
		{ID: "1700000000001", Title: "  spaced  ", Completed: true},
		{ID: "b3c1", Title: "unicode ✓ \"quoted\"\nsecond line"},
	}

	data, err := EncodeTasks(original)
	require.NoError(t, err)

	decoded, err := DecodeTasks(data)
	require.NoError(t, err)
	assert.True(t, original.Equal(decoded))
}

func TestWriteYAML(t *testing.T) {
	l := TaskList{
		{ID: "1700000000000", Title: "Buy milk"},
		{ID: "2", Title: "line one\nline two", Completed: true},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, l))

	out := buf.String()
	assert.Contains(t, out, `id: "1700000000000"`)
	assert.Contains(t, out, "title: Buy milk")
	assert.Contains(t, out, "completed: true")
	assert.Contains(t, out, "title: |-")

	var back TaskList
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.True(t, l.Equal(back))
}
