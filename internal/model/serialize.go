package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// ErrMalformed is returned when stored task data cannot be decoded.
var ErrMalformed = errors.New("malformed task data")

const taskListSchemaURL = "tasks.schema.json"

// taskListSchemaJSON describes the persisted task list.
// Titles may be empty because edits do not enforce a non-blank title.
const taskListSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "title", "completed"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "title": {"type": "string"},
      "completed": {"type": "boolean"}
    }
  }
}`

var taskListSchema = compileTaskListSchema()

func compileTaskListSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(taskListSchemaURL, strings.NewReader(taskListSchemaJSON)); err != nil {
		panic(fmt.Sprintf("add task list schema: %v", err))
	}
	return compiler.MustCompile(taskListSchemaURL)
}

// EncodeTasks serializes a task list to the stored JSON form: an array of
// {"id","title","completed"} objects. A nil list encodes as [].
func EncodeTasks(l TaskList) (string, error) {
	if l == nil {
		l = TaskList{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(l); err != nil {
		return "", fmt.Errorf("failed to encode tasks: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// DecodeTasks parses the stored JSON form. Blank input decodes to an empty
// list. Input that is not valid JSON, does not match the task list schema,
// or repeats an id returns an error wrapping ErrMalformed.
func DecodeTasks(data string) (TaskList, error) {
	if strings.TrimSpace(data) == "" {
		return TaskList{}, nil
	}

	var doc interface{}
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := taskListSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var l TaskList
	if err := json.Unmarshal([]byte(data), &l); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if dup := l.DuplicateID(); dup != "" {
		return nil, fmt.Errorf("%w: duplicate id %q", ErrMalformed, dup)
	}
	if l == nil {
		l = TaskList{}
	}
	return l, nil
}

// WriteYAML writes the list as a YAML sequence of task mappings.
// Multi-line titles use block scalar style.
func WriteYAML(w io.Writer, l TaskList) error {
	node := buildTaskListNode(l)
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}
	return enc.Close()
}

// buildTaskListNode creates a yaml.Node tree for a task list.
func buildTaskListNode(l TaskList) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for i := range l {
		seq.Content = append(seq.Content, buildTaskNode(&l[i]))
	}
	return seq
}

// buildTaskNode creates a yaml.Node for a Task.
func buildTaskNode(t *Task) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	addStringField(node, "id", t.ID)
	addMultilineStringField(node, "title", t.Title)
	addBoolField(node, "completed", t.Completed)
	return node
}

// Helper functions for building yaml.Node

func addStringField(node *yaml.Node, key, value string) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: value, Tag: "!!str"},
	)
}

func addBoolField(node *yaml.Node, key string, value bool) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprintf("%t", value), Tag: "!!bool"},
	)
}

func addMultilineStringField(node *yaml.Node, key, value string) {
	var style yaml.Style
	if strings.Contains(value, "\n") {
		style = yaml.LiteralStyle
	}
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: value, Tag: "!!str", Style: style},
	)
}
